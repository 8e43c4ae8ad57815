// Package loader maps the CoreAudioToolbox shared library into the process
// and resolves its exported symbols.
//
// Libraries are only ever opened by absolute path with a search order
// restricted to the library's own directory and the system directory, so
// a copy planted on the default search path is never picked up. Modules
// are never unloaded.
package loader

import (
	"errors"
	"fmt"
)

var (
	ErrNoCandidates = errors.New("loader: no candidate paths")
	ErrNotLoaded    = errors.New("loader: no candidate could be loaded")
	ErrUnsupported  = errors.New("loader: platform not supported")
)

// First opens each path in order and returns the first module that opens,
// together with its path. Each path is tried exactly once. When paths is
// empty open is never called.
func First[M any](paths []string, open func(string) (M, error)) (M, string, error) {
	var zero M
	if len(paths) == 0 {
		return zero, "", ErrNoCandidates
	}
	errs := []error{ErrNotLoaded}
	for _, path := range paths {
		m, err := open(path)
		if err == nil {
			return m, path, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", path, err))
	}
	return zero, "", errors.Join(errs...)
}
