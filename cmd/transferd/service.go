package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nikmy/mongotxn/mongodb"
	"github.com/nikmy/mongotxn/pkg/errors"
	"github.com/nikmy/mongotxn/pkg/logger"
	"github.com/nikmy/mongotxn/sessions"
	"github.com/nikmy/mongotxn/txn"
)

const accountsCollection = "accounts"

func newService(factory *mongodb.Factory, log logger.Logger) *service {
	return &service{
		manager:  txn.NewManager(log),
		resolver: sessions.NewResolver(log),
		factory:  factory,
		log:      log.With("transferd"),
	}
}

type service struct {
	manager  txn.Manager
	resolver sessions.Resolver
	factory  *mongodb.Factory
	log      logger.Logger
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// transfer moves funds between two account documents atomically.
// Both updates run on the one session bound to the transaction scope,
// so a failed credit rolls the debit back.
func (s *service) transfer(c *fiber.Ctx) error {
	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.Amount <= 0 || req.From == req.To {
		return fiber.NewError(fiber.StatusBadRequest, "malformed transfer")
	}

	err := s.manager.WithinTxn(c.UserContext(), func(ctx context.Context) error {
		db, err := mongodb.Resolve(ctx, s.resolver, s.factory)
		if err != nil {
			return err
		}

		opCtx := db.Context(ctx)
		accounts := db.Collection(accountsCollection)

		res, err := accounts.UpdateOne(opCtx,
			bson.M{"_id": req.From, "balance": bson.M{"$gte": req.Amount}},
			bson.M{"$inc": bson.M{"balance": -req.Amount}},
		)
		if err != nil {
			return errors.WrapFail(err, "debit account")
		}
		if res.ModifiedCount == 0 {
			return errors.Fail("debit account")
		}

		res, err = accounts.UpdateOne(opCtx,
			bson.M{"_id": req.To},
			bson.M{"$inc": bson.M{"balance": req.Amount}},
		)
		if err != nil {
			return errors.WrapFail(err, "credit account")
		}
		if res.ModifiedCount == 0 {
			return errors.Fail("credit account")
		}

		return nil
	})
	if err != nil {
		s.log.Error(errors.WrapFail(err, "transfer"))
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *service) account(c *fiber.Ctx) error {
	db, err := mongodb.Resolve(c.UserContext(), s.resolver, s.factory)
	if err != nil {
		return err
	}

	var doc struct {
		ID      string `bson:"_id" json:"id"`
		Balance int64  `bson:"balance" json:"balance"`
	}

	err = db.Collection(accountsCollection).
		FindOne(c.UserContext(), bson.M{"_id": c.Params("id")}).
		Decode(&doc)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "account not found")
	}

	return c.JSON(doc)
}
