package mongodb

import (
	"context"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/nikmy/mongotxn/pkg/errors"
)

// session adapts mongo.Session. The driver does not expose whether a
// transaction is running or the session has ended, so both are
// tracked here.
type session struct {
	s        mongo.Session
	txActive atomic.Bool
	closed   atomic.Bool
}

func (s *session) StartTransaction() error {
	err := s.s.StartTransaction(
		options.Transaction().
			SetReadConcern(readconcern.Majority()).
			SetWriteConcern(writeconcern.Majority()),
	)
	if err != nil {
		return errors.WrapFail(err, "start transaction")
	}

	s.txActive.Store(true)
	return nil
}

func (s *session) CommitTransaction(ctx context.Context) error {
	err := s.s.CommitTransaction(ctx)
	s.txActive.Store(false)
	return errors.WrapFail(err, "commit transaction")
}

func (s *session) AbortTransaction(ctx context.Context) error {
	err := s.s.AbortTransaction(ctx)
	s.txActive.Store(false)
	return errors.WrapFail(err, "abort transaction")
}

func (s *session) Close(ctx context.Context) {
	if s.closed.Swap(true) {
		return
	}

	s.s.EndSession(ctx)
}

func (s *session) HasActiveTransaction() bool {
	return s.txActive.Load()
}

func (s *session) Closed() bool {
	return s.closed.Load()
}
