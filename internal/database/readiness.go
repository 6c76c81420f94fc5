package database

import (
	"sync"
	"sync/atomic"
)

type State int32

const (
	StateUninitialized State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "starting"
	}
}

// Readiness tracks whether the database finished initializing.
// Transitions only leave StateUninitialized; ready and failed are terminal.
type Readiness struct {
	state atomic.Int32
	mu    sync.Mutex
	err   error
}

func NewReadiness() *Readiness {
	return &Readiness{}
}

func (r *Readiness) State() State {
	return State(r.state.Load())
}

func (r *Readiness) Ready() bool {
	return r.State() == StateReady
}

func (r *Readiness) MarkReady() bool {
	return r.state.CompareAndSwap(int32(StateUninitialized), int32(StateReady))
}

func (r *Readiness) MarkFailed(err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.state.CompareAndSwap(int32(StateUninitialized), int32(StateFailed)) {
		return false
	}
	r.err = err
	return true
}

// Err returns the initialization error once the state is StateFailed.
func (r *Readiness) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
