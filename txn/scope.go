package txn

// Scope carries the state of one ambient transaction: a resource map
// keyed by opaque comparable keys and the registered synchronizations.
//
// A scope belongs to a single logical execution flow. Access is
// serialized by that flow; sharing one scope between goroutines is a
// programming error, so no locking is done here.
type Scope struct {
	resources map[any]any
	syncs     []Synchronization

	rollbackOnly bool
	completed    bool
}

func newScope() *Scope {
	return &Scope{resources: make(map[any]any, 1)}
}

// SynchronizationActive reports whether the scope still accepts
// resources and synchronizations, i.e. it has not completed yet.
func (s *Scope) SynchronizationActive() bool {
	return s != nil && !s.completed
}

func (s *Scope) Resource(key any) (any, bool) {
	val, ok := s.resources[key]
	return val, ok
}

func (s *Scope) HasResource(key any) bool {
	_, ok := s.resources[key]
	return ok
}

// BindResource associates value with key for the rest of the scope's
// lifetime. Binding a key twice is a programming error.
func (s *Scope) BindResource(key, value any) error {
	if _, ok := s.resources[key]; ok {
		return ErrAlreadyBound
	}

	s.resources[key] = value
	return nil
}

// UnbindResource removes and returns the value bound to key.
func (s *Scope) UnbindResource(key any) (any, error) {
	val, ok := s.resources[key]
	if !ok {
		return nil, ErrNotBound
	}

	delete(s.resources, key)
	return val, nil
}

func (s *Scope) ResourceCount() int {
	return len(s.resources)
}

// RegisterSynchronization adds a completion listener. Listeners run in
// registration order on every completion path.
func (s *Scope) RegisterSynchronization(sync Synchronization) error {
	if s.completed {
		return ErrNoTransaction
	}

	s.syncs = append(s.syncs, sync)
	return nil
}

// SetRollbackOnly marks the scope so that a subsequent Commit takes
// the rollback path. There is no way back.
func (s *Scope) SetRollbackOnly() {
	s.rollbackOnly = true
}

func (s *Scope) RollbackOnly() bool {
	return s.rollbackOnly
}
