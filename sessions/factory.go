package sessions

import (
	"context"

	"github.com/nikmy/mongotxn/pkg/errors"
)

// SessionFactory creates sessions suitable for transactional use:
// always causally consistent. Driver failures are wrapped and
// propagated to the caller, never retried here.
type SessionFactory func(ctx context.Context) (Session, error)

func newSessionFactory(factory DatabaseFactory) SessionFactory {
	return func(ctx context.Context) (Session, error) {
		s, err := factory.StartSession(ctx, SessionOptions{CausalConsistency: true})
		if err != nil {
			return nil, errors.WrapFail(err, "start causally consistent session")
		}

		return s, nil
	}
}
