package atshim

import "fmt"

// UnboundSymbolError is the panic value raised when an entry point is
// called after a successful load but the library does not export it.
type UnboundSymbolError struct {
	Name string
	Path string
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("atshim: %s is not exported by %s", e.Name, e.Path)
}

// binder is the untyped view of a proc used while binding.
type binder interface {
	symbol() string
	bind(addr uintptr)
}

// proc is a lazily bound library function with Go signature F.
type proc[F any] struct {
	name  string
	fn    F
	bound bool
}

func newProc[F any](name string) *proc[F] {
	return &proc[F]{name: name}
}

func (p *proc[F]) symbol() string { return p.name }

func (p *proc[F]) bind(addr uintptr) {
	var zero F
	p.fn, p.bound = zero, false
	if addr == 0 {
		return
	}
	p.bound = registerFunc(&p.fn, addr)
}

// get ensures the library is loaded and returns the bound function. ok is
// false when no library could be loaded. A symbol the loaded library does
// not export panics with *UnboundSymbolError.
func (p *proc[F]) get() (fn F, ok bool) {
	addr, ok := engine.Symbol(p.name)
	if !ok {
		return fn, false
	}
	if addr == 0 || !p.bound {
		panic(&UnboundSymbolError{Name: p.name, Path: engine.Path()})
	}
	return p.fn, true
}

func procNames() []string {
	names := make([]string, len(procs))
	for i, p := range procs {
		names[i] = p.symbol()
	}
	return names
}
