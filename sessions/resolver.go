// Package sessions binds one database session to the ambient
// transaction scope carried in a context. Data operations obtain
// their database handle through a Resolver; inside a transaction all
// handles transparently share the same causally consistent session,
// which is committed or aborted and closed when the scope completes.
package sessions

import (
	"context"

	"github.com/nikmy/mongotxn/pkg/errors"
	"github.com/nikmy/mongotxn/pkg/logger"
	"github.com/nikmy/mongotxn/txn"
)

func NewResolver(log logger.Logger) Resolver {
	return Resolver{log: log.With("sessions")}
}

// Resolver is the single entry point data operations use to obtain a
// database handle. The call looks the same with or without an ambient
// transaction; the session plumbing stays invisible to call sites.
type Resolver struct {
	log logger.Logger
}

// GetDatabase returns a handle to the factory's default database.
func (r Resolver) GetDatabase(ctx context.Context, factory DatabaseFactory) (Database, error) {
	return r.GetDatabaseNamed(ctx, factory, "")
}

// GetDatabaseNamed returns a handle to the named database. Without a
// live transaction scope the handle is plain and no session is ever
// created; inside one it is bound to the scope's session.
func (r Resolver) GetDatabaseNamed(ctx context.Context, factory DatabaseFactory, name string) (Database, error) {
	if factory == nil {
		return nil, errors.Error("factory must not be nil")
	}

	scope, ok := txn.ScopeFrom(ctx)
	if !ok || !scope.SynchronizationActive() {
		return factory.Database(name), nil
	}

	session, err := r.acquireSession(ctx, scope, factory)
	if err != nil {
		return nil, err
	}

	return factory.WithSession(session).Database(name), nil
}

// acquireSession returns the session bound to the scope for factory,
// creating and registering it on first use.
func (r Resolver) acquireSession(ctx context.Context, scope *txn.Scope, factory DatabaseFactory) (Session, error) {
	newSession := newSessionFactory(factory)

	if res, ok := scope.Resource(factory); ok {
		holder, ok := res.(*Holder)
		if !ok {
			return nil, errors.Errorf("foreign resource of type %T bound for database factory", res)
		}

		if holder.HasSession() || holder.SynchronizedWithTransaction() {
			holder.Requested()

			if !holder.HasSession() {
				// A pre-registered synchronized holder acquires its
				// session lazily on first real use.
				session, err := newSession(ctx)
				if err != nil {
					return nil, err
				}
				if err = holder.SetSession(session); err != nil {
					return nil, err
				}
			}

			return holder.Session(), nil
		}
	}

	session, err := newSession(ctx)
	if err != nil {
		return nil, err
	}

	holder := NewHolder(session)
	holder.Requested()

	// The transaction starts before the hook is registered, and the
	// hook is registered before the holder becomes visible in the
	// registry: a re-entrant lookup sees either no holder at all or a
	// fully initialized one.
	if err = session.StartTransaction(); err != nil {
		session.Close(ctx)
		return nil, errors.WrapFail(err, "start session transaction")
	}

	if err = scope.RegisterSynchronization(newSessionSynchronization(scope, holder, factory, r.log)); err != nil {
		session.Close(ctx)
		return nil, errors.WrapFail(err, "register session synchronization")
	}
	holder.SetSynchronizedWithTransaction(true)

	if err = scope.BindResource(factory, holder); err != nil {
		return nil, errors.WrapFail(err, "bind session holder")
	}

	return holder.Session(), nil
}
