//go:build windows && (amd64 || arm64)

package loader

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// searchFlags restricts dependency resolution to the directory holding
// the library and System32.
const searchFlags = windows.LOAD_LIBRARY_SEARCH_DLL_LOAD_DIR | windows.LOAD_LIBRARY_SEARCH_SYSTEM32

// Module is a loaded library image.
type Module struct {
	handle windows.Handle
	path   string
}

// Open maps the library at path.
func Open(path string) (*Module, error) {
	if path == "" {
		return nil, errors.New("loader: empty library path")
	}
	h, err := windows.LoadLibraryEx(path, 0, searchFlags)
	if err != nil {
		return nil, fmt.Errorf("loader: LoadLibraryEx(%s): %w", path, err)
	}
	if h == 0 {
		return nil, fmt.Errorf("loader: LoadLibraryEx(%s): nil handle", path)
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
	addr, err := windows.GetProcAddress(module.handle, name)
	if err != nil {
		return 0, fmt.Errorf("GetProcAddress(%s): %w", name, err)
	}
	if addr == 0 {
		return 0, errors.New("symbol address is nil")
	}
	return addr, nil
}
