package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/mongotxn/sessions"
)

// Database wraps a driver database handle together with the session
// it was resolved under, if any.
type Database struct {
	db      *mongo.Database
	session sessions.Session
}

func (d *Database) Name() string {
	return d.db.Name()
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Context binds the handle's session, if any, to ctx so that driver
// calls made with the result run on the session's transaction.
func (d *Database) Context(ctx context.Context) context.Context {
	s, ok := d.session.(*session)
	if !ok {
		return ctx
	}

	return mongo.NewSessionContext(ctx, s.s)
}
