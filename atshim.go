package atshim

import (
	"log/slog"

	"github.com/sliverarmory/atshim/internal/lazy"
	"github.com/sliverarmory/atshim/loader"
	"github.com/sliverarmory/atshim/pathres"
)

var engine = newEngine()

func newEngine() *lazy.Engine {
	return lazy.New(lazy.Config{
		Resolve: func() []pathres.Candidate { return pathres.Default().Candidates() },
		Open:    openLibrary,
		Symbols: procNames(),
		Bind:    bindProcs,
	})
}

func openLibrary(path string) (lazy.Library, error) {
	module, err := loader.Open(path)
	if err != nil {
		return nil, err
	}
	return module, nil
}

// bindProcs registers a typed function for every symbol the table resolved.
// It runs on the initializing goroutine before the outcome is published.
func bindProcs(table *lazy.SymbolTable) {
	for _, p := range procs {
		addr, _ := table.Lookup(p.symbol())
		p.bind(addr)
	}
}

// Ready loads the library if no attempt has been made yet and reports
// whether it is available.
func Ready() bool {
	return engine.Ensure()
}

// LibraryPath returns the path of the loaded library, or "" if the library
// has not been loaded. It never triggers a load.
func LibraryPath() string {
	return engine.Path()
}

// Bound reports whether name was resolved in the loaded library. It is
// false for unknown names and before a successful load, and never triggers
// a load.
func Bound(name string) bool {
	_, ok := engine.Table().Lookup(name)
	return ok
}

// Symbols returns the names of every forwarded entry point in binding order.
func Symbols() []string {
	return procNames()
}

// SetLogger installs the logger used while loading. Loading is silent by
// default; set a logger before the first call to see candidate resolution.
func SetLogger(log *slog.Logger) {
	engine.SetLogger(log)
}
