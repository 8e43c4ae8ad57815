package lazy

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sliverarmory/atshim/pathres"
)

var symbols = []string{
	"AudioConverterNew",
	"AudioConverterDispose",
	"AudioFormatGetProperty",
}

// recorder counts and records every step an Engine runs.
type recorder struct {
	mu       sync.Mutex
	resolves int
	opened   []string
	binds    int
	libs     map[string]Library
}

func (r *recorder) config(candidates func() []pathres.Candidate) Config {
	return Config{
		Resolve: func() []pathres.Candidate {
			r.mu.Lock()
			r.resolves++
			r.mu.Unlock()
			return candidates()
		},
		Open: func(path string) (Library, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.opened = append(r.opened, path)
			lib, ok := r.libs[path]
			if !ok {
				return nil, errors.New("image not found")
			}
			return lib, nil
		},
		Symbols: symbols,
		Bind: func(*SymbolTable) {
			r.mu.Lock()
			r.binds++
			r.mu.Unlock()
		},
	}
}

func fixed(c ...pathres.Candidate) func() []pathres.Candidate {
	return func() []pathres.Candidate { return c }
}

func TestEnsureExactlyOnce(t *testing.T) {
	r := &recorder{libs: map[string]Library{
		"/lib/b": fakeLib{"AudioConverterNew": 0x10},
	}}
	e := New(r.config(fixed(
		pathres.Candidate{Source: pathres.Portable, Path: "/lib/a"},
		pathres.Candidate{Source: pathres.Installed, Path: "/lib/b"},
	)))

	const n = 100
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	start := make(chan struct{})
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if e.Ensure() {
				succeeded.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := succeeded.Load(); got != n {
		t.Errorf("%d of %d callers observed success", got, n)
	}
	if r.resolves != 1 || r.binds != 1 {
		t.Errorf("resolve ran %d times, bind %d times, want 1 each", r.resolves, r.binds)
	}
	if diff := cmp.Diff([]string{"/lib/a", "/lib/b"}, r.opened); diff != "" {
		t.Errorf("unexpected open sequence:\n--- want\n+++ got\n%s", diff)
	}
	if e.Path() != "/lib/b" {
		t.Errorf("Path() = %q want /lib/b", e.Path())
	}
}

func TestEnsureOrderedFallback(t *testing.T) {
	r := &recorder{libs: map[string]Library{
		"/lib/b": fakeLib{},
		"/lib/c": fakeLib{},
	}}
	e := New(r.config(fixed(
		pathres.Candidate{Source: pathres.Portable, Path: "/lib/a"},
		pathres.Candidate{Source: pathres.Installed, Path: "/lib/b"},
		pathres.Candidate{Source: pathres.Packaged, Path: "/lib/c"},
	)))
	if !e.Ensure() {
		t.Fatal("Ensure failed")
	}
	if diff := cmp.Diff([]string{"/lib/a", "/lib/b"}, r.opened); diff != "" {
		t.Errorf("unexpected open sequence:\n--- want\n+++ got\n%s", diff)
	}
}

func TestEnsureNoCandidates(t *testing.T) {
	r := &recorder{}
	e := New(r.config(fixed(
		pathres.Candidate{Source: pathres.Portable, Err: pathres.ErrNoExecutable},
		pathres.Candidate{Source: pathres.Installed, Err: pathres.ErrNoRecord},
	)))
	if e.Ensure() {
		t.Fatal("Ensure succeeded with no candidates")
	}
	if len(r.opened) != 0 {
		t.Errorf("open called with no applicable candidates: %v", r.opened)
	}
	if r.binds != 0 {
		t.Errorf("bind ran %d times after failure", r.binds)
	}
	if e.State() != Failed {
		t.Errorf("State() = %v want %v", e.State(), Failed)
	}
}

func TestEnsureIdempotentAfterFailure(t *testing.T) {
	r := &recorder{}
	e := New(r.config(fixed(
		pathres.Candidate{Source: pathres.Portable, Path: `C:\Apps\Player\QTfiles64\Lib.dll`},
	)))
	for i := range 10 {
		if e.Ensure() {
			t.Fatalf("call %d: Ensure succeeded", i)
		}
		if addr, ok := e.Symbol("AudioConverterNew"); addr != 0 || ok {
			t.Fatalf("call %d: Symbol = (%#x, %t)", i, addr, ok)
		}
	}
	if r.resolves != 1 || len(r.opened) != 1 {
		t.Errorf("after failure: %d resolves, %d opens, want 1 each", r.resolves, len(r.opened))
	}
}

func TestEnsureScenarios(t *testing.T) {
	lib := fakeLib{"AudioConverterNew": 0x10, "AudioConverterDispose": 0x20}
	tests := []struct {
		name     string
		record   string
		libs     map[string]Library
		want     bool
		wantOpen []string
	}{
		{
			name:     "portable_missing_no_record",
			wantOpen: []string{`C:\Apps\Player\QTfiles64\Lib.dll`},
		},
		{
			name:     "installed_record",
			record:   `D:\Program\App\`,
			libs:     map[string]Library{`D:\Program\App\Lib.dll`: lib},
			want:     true,
			wantOpen: []string{`C:\Apps\Player\QTfiles64\Lib.dll`, `D:\Program\App\Lib.dll`},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := &pathres.Resolver{
				Dir:        "QTfiles64",
				File:       "Lib.dll",
				MaxPath:    260,
				Separator:  '\\',
				Executable: func() (string, error) { return `C:\Apps\Player\player.exe`, nil },
				InstallDir: func() (string, error) {
					if test.record == "" {
						return "", pathres.ErrNoRecord
					}
					return test.record, nil
				},
			}
			r := &recorder{libs: test.libs}
			e := New(r.config(res.Candidates))

			if got := e.Ensure(); got != test.want {
				t.Fatalf("Ensure() = %t want %t", got, test.want)
			}
			if diff := cmp.Diff(test.wantOpen, r.opened); diff != "" {
				t.Errorf("unexpected open sequence:\n--- want\n+++ got\n%s", diff)
			}
			if !test.want {
				return
			}
			if addr, ok := e.Symbol("AudioConverterDispose"); addr != 0x20 || !ok {
				t.Errorf("Symbol(AudioConverterDispose) = (%#x, %t)", addr, ok)
			}
			// Present in the fixed set but absent from the image.
			if addr, ok := e.Symbol("AudioFormatGetProperty"); addr != 0 || !ok {
				t.Errorf("Symbol(AudioFormatGetProperty) = (%#x, %t)", addr, ok)
			}
			if diff := cmp.Diff([]string{"AudioFormatGetProperty"}, e.Table().Unbound()); diff != "" {
				t.Errorf("unexpected unbound:\n--- want\n+++ got\n%s", diff)
			}
		})
	}
}

func TestDiagnosticsDoNotInitialize(t *testing.T) {
	r := &recorder{}
	e := New(r.config(fixed()))
	if e.Path() != "" || e.Table() != nil || e.State() != NotStarted {
		t.Fatal("diagnostics reported a loaded library before initialization")
	}
	if r.resolves != 0 {
		t.Fatalf("diagnostics triggered initialization")
	}
}

func TestEngineLogging(t *testing.T) {
	var buf bytes.Buffer
	r := &recorder{}
	e := New(r.config(fixed(
		pathres.Candidate{Source: pathres.Installed, Err: pathres.ErrNoRecord},
	)))
	e.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	e.Ensure()

	out := buf.String()
	for _, want := range []string{
		"component=atshim.lazy",
		"candidate not applicable",
		"source=installed",
		"library unavailable",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	e.SetLogger(nil)
}
