package sessions

import "context"

// Session is one causally consistent unit of work against the
// database. It moves through idle, transaction-active and closed
// states; exactly one Holder owns it while it is bound to a scope.
type Session interface {
	StartTransaction() error
	CommitTransaction(ctx context.Context) error
	AbortTransaction(ctx context.Context) error
	Close(ctx context.Context)

	HasActiveTransaction() bool
	Closed() bool
}

// Database is an opaque handle returned to callers; driver adapters
// expose the actual data API on their concrete type.
type Database interface {
	Name() string
}

type SessionOptions struct {
	CausalConsistency bool
}

// DatabaseFactory produces database handles and sessions. The factory
// value itself keys the per-transaction registry, so implementations
// must be comparable — in practice a pointer.
type DatabaseFactory interface {
	// Database returns a handle to the named database,
	// or to the default one when name is empty.
	Database(name string) Database

	// WithSession returns a view of this factory whose
	// database handles are bound to s.
	WithSession(s Session) DatabaseFactory

	// StartSession opens a fresh session on the server.
	StartSession(ctx context.Context, opts SessionOptions) (Session, error)
}
