package sessions

import (
	"context"

	"github.com/nikmy/mongotxn/pkg/errors"
	"github.com/nikmy/mongotxn/pkg/logger"
	"github.com/nikmy/mongotxn/txn"
)

type syncState int

const (
	stateRegistered syncState = iota
	stateCompleting
	stateReleased
)

func newSessionSynchronization(scope *txn.Scope, holder *Holder, key DatabaseFactory, log logger.Logger) *sessionSynchronization {
	return &sessionSynchronization{
		scope:  scope,
		holder: holder,
		key:    key,
		log:    log,
	}
}

// sessionSynchronization finalizes the session bound to a transaction
// scope: commit or abort depending on the outcome, then a terminal
// release step that runs exactly once no matter what — close the
// session and unbind the holder. The holder stays bound and usable
// throughout the completion callbacks; it is never released early.
type sessionSynchronization struct {
	scope  *txn.Scope
	holder *Holder
	key    DatabaseFactory
	log    logger.Logger
	state  syncState
}

func (s *sessionSynchronization) BeforeCommit(ctx context.Context) error {
	return nil
}

func (s *sessionSynchronization) AfterCommit(ctx context.Context) error {
	if !s.holder.HasActiveTransaction() {
		return nil
	}

	return errors.WrapFail(s.holder.Session().CommitTransaction(ctx), "commit session transaction")
}

func (s *sessionSynchronization) AfterCompletion(ctx context.Context, status txn.Status) error {
	if s.state == stateReleased {
		return nil
	}
	s.state = stateCompleting

	// Release must happen whatever the abort outcome is.
	defer s.release(ctx)

	if status == txn.StatusRolledBack && s.holder.HasActiveTransaction() {
		return errors.WrapFail(s.holder.Session().AbortTransaction(ctx), "abort session transaction")
	}

	return nil
}

// release closes the session and removes the holder from the
// registry. Cancellation is stripped so that an aborted context
// cannot leak the session.
func (s *sessionSynchronization) release(ctx context.Context) {
	s.state = stateReleased
	ctx = context.WithoutCancel(ctx)

	if s.holder.HasActiveSession() {
		s.holder.Session().Close(ctx)
	}

	if _, err := s.scope.UnbindResource(s.key); err != nil {
		s.log.Warn(errors.WrapFail(err, "unbind session holder"))
	}

	s.holder.SetSynchronizedWithTransaction(false)
}
