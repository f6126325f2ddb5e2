package txn

import "context"

type scopeKey struct{}

// ScopeFrom extracts the transaction scope carried by ctx, if any.
// The scope is returned even after completion; use Active to test
// whether it is still usable.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(*Scope)
	return scope, ok
}

// Active reports whether ctx runs inside a live transaction scope.
func Active(ctx context.Context) bool {
	scope, ok := ScopeFrom(ctx)
	return ok && scope.SynchronizationActive()
}

// SetRollbackOnly marks the ambient transaction for rollback.
// Returns ErrNoTransaction when ctx has no live scope.
func SetRollbackOnly(ctx context.Context) error {
	scope, ok := ScopeFrom(ctx)
	if !ok || !scope.SynchronizationActive() {
		return ErrNoTransaction
	}

	scope.SetRollbackOnly()
	return nil
}
