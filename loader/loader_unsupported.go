//go:build !((windows || darwin || linux) && (amd64 || arm64))

package loader

import "errors"

// Module is a loaded library image. It cannot be created on this platform.
type Module struct{}

// Open always fails on this platform.
func Open(path string) (*Module, error) {
	_ = path
	return nil, ErrUnsupported
}

func (module *Module) Path() string { return "" }

func (module *Module) ProcAddressByName(name string) (uintptr, error) {
	_ = name
	return 0, errors.New("loader is only supported on windows, darwin, and linux (amd64, arm64)")
}
