package lazy

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestGateOnce(t *testing.T) {
	for _, outcome := range []bool{true, false} {
		var g Gate
		if g.State() != NotStarted {
			t.Fatalf("zero Gate state = %v", g.State())
		}

		var runs atomic.Int32
		release := make(chan struct{})
		init := func() bool {
			runs.Add(1)
			<-release
			return outcome
		}

		const n = 64
		var (
			wg      sync.WaitGroup
			results = make([]bool, n)
		)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = g.Do(init)
			}()
		}
		for g.State() != InProgress {
			runtime.Gosched()
		}
		close(release)
		wg.Wait()

		if got := runs.Load(); got != 1 {
			t.Errorf("outcome=%t: init ran %d times, want 1", outcome, got)
		}
		for i, got := range results {
			if got != outcome {
				t.Errorf("outcome=%t: caller %d observed %t", outcome, i, got)
			}
		}
		want := Failed
		if outcome {
			want = Succeeded
		}
		if g.State() != want {
			t.Errorf("final state = %v want %v", g.State(), want)
		}

		// Final states are never left.
		if got := g.Do(func() bool { runs.Add(1); return !outcome }); got != outcome {
			t.Errorf("Do after final state = %t want %t", got, outcome)
		}
		if got := runs.Load(); got != 1 {
			t.Errorf("init re-ran after final state: %d runs", got)
		}
	}
}

func TestGatePanic(t *testing.T) {
	var g Gate
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		g.Do(func() bool { panic("boom") })
	}()
	if g.State() != Failed {
		t.Fatalf("state after panic = %v want %v", g.State(), Failed)
	}
	if g.Do(func() bool { return true }) {
		t.Fatal("Do after panic reported success")
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		NotStarted: "not started",
		InProgress: "in progress",
		Succeeded:  "succeeded",
		Failed:     "failed",
		State(9):   "invalid",
	} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q want %q", int(s), got, want)
		}
	}
	if NotStarted.Done() || InProgress.Done() || !Succeeded.Done() || !Failed.Done() {
		t.Error("unexpected Done results")
	}
}
