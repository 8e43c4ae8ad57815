// Package pathres computes the ordered list of locations where the
// CoreAudioToolbox library may be installed.
package pathres

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrNoExecutable = errors.New("pathres: executable path unavailable")
	ErrNoSeparator  = errors.New("pathres: executable path has no directory")
	ErrNoRecord     = errors.New("pathres: install record not found")
	ErrNoPackage    = errors.New("pathres: no matching package installed")
	ErrTooLong      = errors.New("pathres: path exceeds maximum length")
	ErrDisabled     = errors.New("pathres: source not configured")
)

// Source identifies where a candidate path came from.
type Source int

const (
	Portable Source = iota
	Installed
	Packaged
)

func (s Source) String() string {
	switch s {
	case Portable:
		return "portable"
	case Installed:
		return "installed"
	case Packaged:
		return "packaged"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Candidate is one possible library location. A candidate with a non-nil
// Err is not applicable and carries no path.
type Candidate struct {
	Source Source
	Path   string
	Err    error
}

// Applicable reports whether the candidate holds a usable path.
func (c Candidate) Applicable() bool { return c.Err == nil && c.Path != "" }

// Resolver produces candidate library paths. The zero value is not useful;
// start from Default and override fields as needed.
type Resolver struct {
	// Dir is the subdirectory next to the executable holding a portable
	// copy of the library.
	Dir string
	// File is the library file name.
	File string
	// MaxPath bounds every computed path, counted in platform path units
	// including the terminating NUL.
	MaxPath int
	// Separator is the path separator used to split and join paths.
	Separator byte
	// PathUnits returns the length of a path in platform path units.
	// If nil, the byte length is used.
	PathUnits func(string) int

	// Executable returns the running executable's full path.
	Executable func() (string, error)
	// InstallDir returns the install directory recorded by the
	// third-party application. It returns ErrNoRecord when absent.
	InstallDir func() (string, error)
	// PackageDir returns the install directory of the packaged
	// application. Nil when packaged lookup is not compiled in.
	PackageDir func() (string, error)
}

// Default returns a Resolver wired to the platform's configuration sources.
func Default() *Resolver {
	return &Resolver{
		Dir:        libDir,
		File:       libFile,
		MaxPath:    maxPath,
		Separator:  os.PathSeparator,
		PathUnits:  pathUnits,
		Executable: executable,
		InstallDir: installDir,
		PackageDir: packageDir,
	}
}

// Candidates returns the candidate paths in priority order. Configuration
// sources are read on every call; nothing is cached.
func (r *Resolver) Candidates() []Candidate {
	c := []Candidate{
		r.portable(),
		r.installed(),
	}
	if r.PackageDir != nil {
		c = append(c, r.packaged())
	}
	return c
}

func (r *Resolver) portable() Candidate {
	c := Candidate{Source: Portable}
	if r.Executable == nil {
		c.Err = ErrNoExecutable
		return c
	}
	exe, err := r.Executable()
	if err != nil {
		c.Err = fmt.Errorf("%w: %w", ErrNoExecutable, err)
		return c
	}
	if exe == "" {
		c.Err = ErrNoExecutable
		return c
	}
	if !r.fits(exe) {
		c.Err = ErrTooLong
		return c
	}
	root, ok := r.appRoot(exe)
	if !ok {
		c.Err = ErrNoSeparator
		return c
	}
	c.Path, c.Err = r.bounded(root + r.Dir + string(r.Separator) + r.File)
	return c
}

func (r *Resolver) installed() Candidate {
	c := Candidate{Source: Installed}
	if r.InstallDir == nil {
		c.Err = ErrDisabled
		return c
	}
	dir, err := r.InstallDir()
	if err != nil {
		c.Err = err
		return c
	}
	if dir == "" {
		c.Err = ErrNoRecord
		return c
	}
	c.Path, c.Err = r.bounded(r.withSeparator(dir) + r.File)
	return c
}

func (r *Resolver) packaged() Candidate {
	c := Candidate{Source: Packaged}
	dir, err := r.PackageDir()
	if err != nil {
		c.Err = err
		return c
	}
	if dir == "" {
		c.Err = ErrNoPackage
		return c
	}
	c.Path, c.Err = r.bounded(r.withSeparator(dir) + r.File)
	return c
}

// appRoot strips the file name from exe, keeping the trailing separator.
func (r *Resolver) appRoot(exe string) (string, bool) {
	i := strings.LastIndexByte(exe, r.Separator)
	if i < 0 {
		return "", false
	}
	return exe[:i+1], true
}

func (r *Resolver) withSeparator(dir string) string {
	if dir[len(dir)-1] == r.Separator {
		return dir
	}
	return dir + string(r.Separator)
}

func (r *Resolver) bounded(path string) (string, error) {
	if !r.fits(path) {
		return "", ErrTooLong
	}
	return path, nil
}

// fits reports whether path and its terminator fit in MaxPath units.
// A non-positive MaxPath disables the bound.
func (r *Resolver) fits(path string) bool {
	if r.MaxPath <= 0 {
		return true
	}
	n := len(path)
	if r.PathUnits != nil {
		n = r.PathUnits(path)
	}
	return n+1 <= r.MaxPath
}
