package txn

import (
	"context"

	"github.com/nikmy/mongotxn/pkg/errors"
)

// Status is the outcome of a completed transaction,
// passed to synchronizations on completion.
type Status int

const (
	StatusUnknown Status = iota

	// StatusCommitted means the transaction
	// completed through the commit path
	StatusCommitted

	// StatusRolledBack means the transaction
	// was rolled back, either explicitly or
	// because it was marked rollback-only
	StatusRolledBack
)

// Synchronization is a completion listener registered within a scope.
// The manager drives it through BeforeCommit and AfterCommit on the
// commit path, and AfterCompletion exactly once on every path.
type Synchronization interface {
	BeforeCommit(ctx context.Context) error
	AfterCommit(ctx context.Context) error
	AfterCompletion(ctx context.Context, status Status) error
}

var (
	ErrAlreadyBound  = errors.Error("resource is already bound")
	ErrNotBound      = errors.Error("resource is not bound")
	ErrAlreadyActive = errors.Error("transaction is already active")
	ErrNoTransaction = errors.Error("no active transaction")
)
