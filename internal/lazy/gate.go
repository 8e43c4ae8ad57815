package lazy

import (
	"runtime"
	"sync/atomic"
)

// State is the initialization state held by a Gate.
type State int32

const (
	NotStarted State = iota
	InProgress
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "invalid"
	}
}

// Done reports whether s is a final state.
func (s State) Done() bool { return s == Succeeded || s == Failed }

// Gate runs an initialization function at most once. Its zero value is
// NotStarted and ready for use.
//
// Unlike sync.Once, goroutines arriving while initialization runs do not
// block on a lock: they yield and recheck until the state is final.
type Gate struct {
	state atomic.Int32
}

// Do runs init if no goroutine has claimed the gate yet, and reports the
// outcome. Concurrent callers wait for the winner and all observe the same
// outcome. init is never run again once the gate is final, whatever the
// outcome.
//
// All writes made by init are visible to any goroutine that later returns
// from Do.
func (g *Gate) Do(init func() bool) bool {
	for {
		switch State(g.state.Load()) {
		case Succeeded:
			return true
		case Failed:
			return false
		case NotStarted:
			if g.state.CompareAndSwap(int32(NotStarted), int32(InProgress)) {
				return g.run(init)
			}
		default:
			runtime.Gosched()
		}
	}
}

func (g *Gate) run(init func() bool) bool {
	final := Failed
	defer func() {
		// Settle before a panic propagates so waiters do not spin forever.
		g.state.Store(int32(final))
	}()
	if init() {
		final = Succeeded
	}
	return final == Succeeded
}

// State returns the current state without triggering initialization.
func (g *Gate) State() State {
	return State(g.state.Load())
}
