package convergence

import (
	"fmt"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/entities"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/errs"
)

type State int

const (
	StateIdle State = iota
	StateWaiting
	StateConverged
	StateTimedOut
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaiting:
		return "waiting"
	case StateConverged:
		return "converged"
	case StateTimedOut:
		return "timed out"
	case StateFailed:
		return "failed"
	}

	return "unknown"
}

type Tracker struct {
	state    State
	current  entities.StatePair
	expected entities.StatePair
	err      error

	// departed stays false for a cycle expectation until a state that does
	// not match it has been observed.
	departed bool
}

func NewTracker() *Tracker {
	return &Tracker{
		state:    StateIdle,
		departed: true,
	}
}

// Seed stores the initially read state. Unknown tokens are kept as unknown.
func (t *Tracker) Seed(snapshot entities.StatePair) {
	if t.state != StateIdle {
		return
	}

	t.current = snapshot
}

// Expect sets the convergence pair and starts waiting. With cycle set the
// pair has to be left at least once before it is accepted, whatever the
// seeded state was.
func (t *Tracker) Expect(expected entities.StatePair, cycle bool) (err error) {
	if t.state != StateIdle {
		return fmt.Errorf("Expect: %w: %s -> %s", errs.ErrInvalidTransition, t.state, StateWaiting)
	}

	if !expected.Defined() {
		return fmt.Errorf("Expect: %w", errs.ErrEmptyExpectation)
	}

	t.expected = expected
	t.departed = !cycle
	t.state = StateWaiting
	return nil
}

// Observe applies a state update and re-checks convergence. It returns false
// when the update was not accepted: the tracker is not waiting, the entity is
// not tracked or the token is unknown.
func (t *Tracker) Observe(change entities.StateChange) (accepted bool) {
	if t.state != StateWaiting || change.Token.IsUnknown() {
		return false
	}

	switch change.Entity {
	case entities.EntityChassis, entities.EntityHost:
	default:
		return false
	}

	t.current.Set(change.Entity, change.Token)
	t.check()
	return true
}

func (t *Tracker) check() {
	if !t.current.Satisfies(t.expected) {
		t.departed = true
		return
	}

	if t.departed {
		t.state = StateConverged
	}
}

// Expire marks the wait as timed out. It is a no-op unless waiting.
func (t *Tracker) Expire() bool {
	if t.state != StateWaiting {
		return false
	}

	t.state = StateTimedOut
	t.err = errs.ErrTimeout
	return true
}

// Fail moves a non terminal tracker to the failed state.
func (t *Tracker) Fail(err error) {
	if t.Done() {
		return
	}

	t.state = StateFailed
	t.err = err
}

func (t *Tracker) State() State {
	return t.state
}

// Done reports whether the tracker reached a terminal state.
func (t *Tracker) Done() bool {
	switch t.state {
	case StateConverged, StateTimedOut, StateFailed:
		return true
	}

	return false
}

func (t *Tracker) Converged() bool {
	return t.state == StateConverged
}

func (t *Tracker) Current() entities.StatePair {
	return t.current
}

func (t *Tracker) Expected() entities.StatePair {
	return t.expected
}

func (t *Tracker) Err() error {
	return t.err
}
