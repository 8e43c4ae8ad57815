// Package lazy implements the once-only resolve, load and bind sequence
// behind the forwarding entry points.
package lazy

import (
	"log/slog"
	"sync/atomic"

	"github.com/sliverarmory/atshim/loader"
	"github.com/sliverarmory/atshim/pathres"
)

// Config holds the steps an Engine runs on first use.
type Config struct {
	// Resolve returns the candidate library locations in priority order.
	Resolve func() []pathres.Candidate
	// Open maps the library at an absolute path.
	Open func(path string) (Library, error)
	// Symbols is the fixed set of names to bind.
	Symbols []string
	// Bind, if not nil, is called with the populated table before the
	// outcome is published.
	Bind func(*SymbolTable)
}

// Engine owns the process-wide initialization state. The forwarding entry
// points use only Symbol, which ensures initialization; the remaining
// methods are diagnostics.
type Engine struct {
	cfg  Config
	gate Gate
	log  atomic.Pointer[slog.Logger]

	// Written once by the initializing goroutine and published by the
	// gate's final state.
	lib   Library
	path  string
	table *SymbolTable
}

// New returns an Engine that has not yet attempted initialization.
func New(cfg Config) *Engine {
	e := &Engine{cfg: cfg}
	e.log.Store(slog.New(slog.DiscardHandler))
	return e
}

// SetLogger sets the logger used during initialization. A nil logger
// discards.
func (e *Engine) SetLogger(log *slog.Logger) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	e.log.Store(log)
}

// Ensure runs initialization if it has not been attempted and reports
// whether the library is available.
func (e *Engine) Ensure() bool {
	return e.gate.Do(e.initialize)
}

// Symbol ensures initialization and returns the address bound to name.
// ok is false only when initialization failed; a zero address with ok
// true means the library lacks the symbol.
func (e *Engine) Symbol(name string) (addr uintptr, ok bool) {
	if !e.Ensure() {
		return 0, false
	}
	addr, _ = e.table.Lookup(name)
	return addr, true
}

// State returns the initialization state without triggering it.
func (e *Engine) State() State {
	return e.gate.State()
}

// Path returns the path of the loaded library, or "" if none has been
// loaded. It does not trigger initialization.
func (e *Engine) Path() string {
	if e.gate.State() != Succeeded {
		return ""
	}
	return e.path
}

// Table returns the symbol table, or nil if no library has been loaded.
// It does not trigger initialization.
func (e *Engine) Table() *SymbolTable {
	if e.gate.State() != Succeeded {
		return nil
	}
	return e.table
}

func (e *Engine) initialize() bool {
	log := e.log.Load().With(slog.String("component", "atshim.lazy"))

	var candidates []pathres.Candidate
	if e.cfg.Resolve != nil {
		candidates = e.cfg.Resolve()
	}
	paths := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !c.Applicable() {
			log.Debug("candidate not applicable", slog.String("source", c.Source.String()), slog.Any("reason", c.Err))
			continue
		}
		log.Debug("candidate", slog.String("source", c.Source.String()), slog.String("path", c.Path))
		paths = append(paths, c.Path)
	}

	open := e.cfg.Open
	if open == nil {
		open = func(string) (Library, error) { return nil, loader.ErrUnsupported }
	}
	lib, path, err := loader.First(paths, open)
	if err != nil {
		log.Warn("library unavailable", slog.Any("error", err))
		return false
	}

	table := Bind(lib, e.cfg.Symbols)
	e.lib, e.path, e.table = lib, path, table
	if e.cfg.Bind != nil {
		e.cfg.Bind(table)
	}
	if missing := table.Unbound(); len(missing) != 0 {
		log.Warn("symbols missing from library", slog.String("path", path), slog.Any("symbols", missing))
	}
	log.Info("library loaded", slog.String("path", path), slog.Int("bound", table.Len()), slog.Int("required", len(e.cfg.Symbols)))
	return true
}
