package sessions

import "github.com/nikmy/mongotxn/pkg/errors"

var (
	ErrSessionAssigned = errors.Error("session is already assigned")
	ErrNotRequested    = errors.Error("holder released more times than requested")
)

// NewHolder wraps s; s may be nil for a holder that acquires its
// session lazily on first real use.
func NewHolder(s Session) *Holder {
	return &Holder{session: s}
}

// Holder owns at most one session for the duration of a transaction
// scope and counts re-entrant lookups. It is confined to the scope's
// execution flow and does no locking of its own.
type Holder struct {
	session Session
	refs    int
	synced  bool
}

func (h *Holder) Session() Session {
	return h.session
}

// SetSession assigns the session. Sessions are assign-once per holder.
func (h *Holder) SetSession(s Session) error {
	if h.session != nil {
		return ErrSessionAssigned
	}

	h.session = s
	return nil
}

func (h *Holder) HasSession() bool {
	return h.session != nil
}

// HasActiveSession reports whether a session is assigned and not yet
// closed.
func (h *Holder) HasActiveSession() bool {
	return h.session != nil && !h.session.Closed()
}

func (h *Holder) HasActiveTransaction() bool {
	return h.session != nil && h.session.HasActiveTransaction()
}

// Requested records one more lookup referencing this holder.
func (h *Holder) Requested() {
	h.refs++
}

// Released drops one reference. The count never goes negative.
func (h *Holder) Released() error {
	if h.refs == 0 {
		return ErrNotRequested
	}

	h.refs--
	return nil
}

func (h *Holder) RefCount() int {
	return h.refs
}

// SynchronizedWithTransaction tracks whether a completion hook has
// been registered for this holder, so at most one hook exists per
// holder.
func (h *Holder) SynchronizedWithTransaction() bool {
	return h.synced
}

func (h *Holder) SetSynchronizedWithTransaction(synced bool) {
	h.synced = synced
}
