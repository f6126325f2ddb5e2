// Package mongodb adapts the official driver to the narrow session
// and factory contracts of the sessions package.
package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/mongotxn/pkg/errors"
	"github.com/nikmy/mongotxn/pkg/logger"
	"github.com/nikmy/mongotxn/sessions"
)

// Connect dials the server and returns a factory producing database
// handles and sessions from one shared client.
func Connect(ctx context.Context, cfg Config, log logger.Logger) (*Factory, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MinSize > 0 {
		opts = opts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize > 0 {
		opts = opts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	return &Factory{
		client:    client,
		defaultDB: cfg.Database,
		log:       log.With("mongodb"),
	}, nil
}

type Factory struct {
	client    *mongo.Client
	defaultDB string
	session   sessions.Session
	log       logger.Logger
}

func (f *Factory) Database(name string) sessions.Database {
	if name == "" {
		name = f.defaultDB
	}

	return &Database{db: f.client.Database(name), session: f.session}
}

// WithSession returns a view of the factory whose database handles
// are bound to s. The underlying client is shared; the view is not a
// registry key, the original factory is.
func (f *Factory) WithSession(s sessions.Session) sessions.DatabaseFactory {
	view := *f
	view.session = s
	return &view
}

func (f *Factory) StartSession(ctx context.Context, opts sessions.SessionOptions) (sessions.Session, error) {
	s, err := f.client.StartSession(
		options.Session().SetCausalConsistency(opts.CausalConsistency),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "start mongo session")
	}

	return &session{s: s}, nil
}

func (f *Factory) Close(ctx context.Context) error {
	if err := f.client.Disconnect(ctx); err != nil {
		return errors.WrapFail(err, "disconnect mongo client")
	}

	f.log.Debugf("mongo client disconnected")
	return nil
}

// Resolve obtains a database handle through r and narrows it to the
// adapter's concrete type, so call sites get the data API back.
func Resolve(ctx context.Context, r sessions.Resolver, f *Factory) (*Database, error) {
	db, err := r.GetDatabase(ctx, f)
	if err != nil {
		return nil, err
	}

	return db.(*Database), nil
}
