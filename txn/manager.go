// Package txn implements a context-carried ambient transaction scope:
// a per-transaction resource map plus completion synchronizations
// driven deterministically at commit and rollback boundaries.
package txn

import (
	"context"

	"github.com/nikmy/mongotxn/pkg/errors"
	"github.com/nikmy/mongotxn/pkg/logger"
)

func NewManager(log logger.Logger) Manager {
	return Manager{log: log.With("txn")}
}

type Manager struct {
	log logger.Logger
}

// Begin opens a new transaction scope and returns a context carrying
// it. Nested scopes are not supported: beginning inside a live scope
// fails with ErrAlreadyActive.
func (m Manager) Begin(ctx context.Context) (context.Context, error) {
	if Active(ctx) {
		return ctx, ErrAlreadyActive
	}

	return context.WithValue(ctx, scopeKey{}, newScope()), nil
}

// Commit completes the scope through the commit path, unless it was
// marked rollback-only. Synchronizations run in registration order:
// all BeforeCommit hooks, then all AfterCommit hooks, then all
// AfterCompletion hooks. A BeforeCommit failure flips the outcome to
// rollback. AfterCompletion runs for every synchronization no matter
// what failed before; collected errors are joined into the result.
func (m Manager) Commit(ctx context.Context) error {
	scope, ok := ScopeFrom(ctx)
	if !ok || !scope.SynchronizationActive() {
		return ErrNoTransaction
	}

	if scope.RollbackOnly() {
		return m.complete(ctx, scope, StatusRolledBack)
	}

	var errs []error
	for _, s := range scope.syncs {
		errs = append(errs, errors.WrapFail(s.BeforeCommit(ctx), "run before-commit hook"))
	}
	if err := errors.Collapse(errs); err != nil {
		errs = append(errs, m.complete(ctx, scope, StatusRolledBack))
		return errors.Collapse(errs)
	}

	for _, s := range scope.syncs {
		errs = append(errs, errors.WrapFail(s.AfterCommit(ctx), "run after-commit hook"))
	}

	errs = append(errs, m.complete(ctx, scope, StatusCommitted))
	return errors.Collapse(errs)
}

// Rollback completes the scope through the rollback path.
func (m Manager) Rollback(ctx context.Context) error {
	scope, ok := ScopeFrom(ctx)
	if !ok || !scope.SynchronizationActive() {
		return ErrNoTransaction
	}

	return m.complete(ctx, scope, StatusRolledBack)
}

// WithinTxn runs do inside a fresh transaction scope and commits on
// success or rolls back when do returns an error. The error of do
// wins over a rollback failure, which is only logged.
func (m Manager) WithinTxn(ctx context.Context, do func(ctx context.Context) error) error {
	txnCtx, err := m.Begin(ctx)
	if err != nil {
		return errors.WrapFail(err, "begin transaction")
	}

	err = do(txnCtx)
	if err != nil {
		m.log.Error(errors.WrapFail(m.Rollback(txnCtx), "roll back transaction"))
		return err
	}

	return errors.WrapFail(m.Commit(txnCtx), "commit transaction")
}

func (m Manager) complete(ctx context.Context, scope *Scope, status Status) error {
	var errs []error
	for _, s := range scope.syncs {
		errs = append(errs, errors.WrapFail(s.AfterCompletion(ctx, status), "run after-completion hook"))
	}

	scope.completed = true
	scope.syncs = nil

	// Every synchronization must have unbound its resources by now.
	if n := scope.ResourceCount(); n != 0 {
		m.log.Errorf("transaction completed with %d leaked resources", n)
		scope.resources = make(map[any]any)
		errs = append(errs, errors.Fail("release all bound resources"))
	}

	return errors.Collapse(errs)
}
