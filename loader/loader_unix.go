//go:build (darwin || linux) && (amd64 || arm64)

package loader

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ebitengine/purego"
)

// Module is a loaded library image.
type Module struct {
	handle uintptr
	path   string
}

// Open maps the library at path. Relative paths are rejected so the
// dynamic linker never falls back to its default search order.
func Open(path string) (*Module, error) {
	if path == "" {
		return nil, errors.New("loader: empty library path")
	}
	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("loader: %s: path is not absolute", path)
	}
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("loader: dlopen(%s): %w", path, err)
	}
	if h == 0 {
		return nil, fmt.Errorf("loader: dlopen(%s): nil handle", path)
	}
	return &Module{handle: h, path: path}, nil
}

// Path returns the path the module was loaded from.
func (module *Module) Path() string { return module.path }

// ProcAddressByName returns the address of the named export.
func (module *Module) ProcAddressByName(name string) (uintptr, error) {
	if name == "" {
		return 0, errors.New("export name cannot be empty")
	}
	if module == nil || module.handle == 0 {
		return 0, errors.New("library handle is nil")
	}
	sym, err := purego.Dlsym(module.handle, name)
	if err != nil {
		return 0, fmt.Errorf("dlsym(%s): %w", name, err)
	}
	if sym == 0 {
		return 0, errors.New("symbol address is nil")
	}
	return sym, nil
}
