package syncer

import (
	"context"
	"sync"
)

// State is the lifecycle position of one optimistic write.
type State int

const (
	// StatePending means the local apply happened and the remote
	// confirmation is still in flight.
	StatePending State = iota
	// StateCommitted means the remote accepted the write.
	StateCommitted
	// StateRolledBack means the remote rejected the write and the local
	// apply was reverted.
	StateRolledBack
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled_back"
	default:
		return "unknown"
	}
}

// Mutation tracks one optimistic write from local apply to resolution.
// Callers observe it; only the engine resolves it.
type Mutation struct {
	mu    sync.Mutex
	state State
	err   error
	done  chan struct{}
}

func newMutation() *Mutation {
	return &Mutation{done: make(chan struct{})}
}

// State returns the current lifecycle position.
func (m *Mutation) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Err returns the rejection cause after a rollback, nil otherwise.
func (m *Mutation) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Wait blocks until the mutation resolves or ctx is done. It returns the
// rollback cause when the write was rejected.
func (m *Mutation) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-m.done:
		return m.Err()
	}
}

func (m *Mutation) commit() {
	m.resolve(StateCommitted, nil)
}

func (m *Mutation) rollback(err error) {
	m.resolve(StateRolledBack, err)
}

func (m *Mutation) resolve(state State, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StatePending {
		return
	}
	m.state = state
	m.err = err
	close(m.done)
}
