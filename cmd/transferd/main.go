package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/mongotxn/mongodb"
	"github.com/nikmy/mongotxn/pkg/errors"
	"github.com/nikmy/mongotxn/pkg/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	factory, err := mongodb.Connect(ctx, cfg.Mongo, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "connect to mongo db"))
	}

	svc := newService(factory, log)

	app := fiber.New()
	app.Post("/transfer", svc.transfer)
	app.Get("/accounts/:id", svc.account)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")
		_ = app.Shutdown()
		_ = factory.Close(context.Background())
		close(stopped)
	})

	err = app.Listen(cfg.Listen)
	if err != nil {
		log.Panic(errors.WrapFail(err, "serve http"))
	}

	<-stopped
	stdlog.Println("Shutdown complete")
}
