package lazy

// Library is a mapped library image able to resolve exports.
type Library interface {
	ProcAddressByName(name string) (uintptr, error)
}

// SymbolTable maps the fixed set of required symbol names to addresses.
// A zero address marks a symbol absent from the library. All methods are
// safe on a nil table.
type SymbolTable struct {
	names []string
	addrs map[string]uintptr
}

// Bind resolves every name in lib. Lookup failures leave the symbol
// unbound; Bind itself never fails.
func Bind(lib Library, names []string) *SymbolTable {
	t := &SymbolTable{
		names: append([]string(nil), names...),
		addrs: make(map[string]uintptr, len(names)),
	}
	for _, name := range t.names {
		addr, err := lib.ProcAddressByName(name)
		if err != nil {
			addr = 0
		}
		t.addrs[name] = addr
	}
	return t
}

// Lookup returns the address bound to name and whether it is non-zero.
// Names outside the table report false.
func (t *SymbolTable) Lookup(name string) (uintptr, bool) {
	if t == nil {
		return 0, false
	}
	addr := t.addrs[name]
	return addr, addr != 0
}

// Names returns the symbol names in table order.
func (t *SymbolTable) Names() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.names...)
}

// Unbound returns the names that did not resolve.
func (t *SymbolTable) Unbound() []string {
	if t == nil {
		return nil
	}
	var missing []string
	for _, name := range t.names {
		if t.addrs[name] == 0 {
			missing = append(missing, name)
		}
	}
	return missing
}

// Len returns the number of bound symbols.
func (t *SymbolTable) Len() int {
	if t == nil {
		return 0
	}
	var n int
	for _, addr := range t.addrs {
		if addr != 0 {
			n++
		}
	}
	return n
}
