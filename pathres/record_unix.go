//go:build !windows

package pathres

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/sliverarmory/atshim/internal/xdg"
)

// RecordName is the install record location relative to the XDG
// configuration directories.
const RecordName = "atshim/install.toml"

// Record is the install record read on unix systems, standing in for the
// registry entry written by the Windows installer.
type Record struct {
	// InstallDir is the directory holding the library.
	InstallDir string `toml:"install_dir"`
}

func installDir() (string, error) {
	path, err := xdg.Config(RecordName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoRecord
		}
		return "", fmt.Errorf("pathres: find install record: %w", err)
	}
	return ReadRecord(path)
}

// ReadRecord returns the install directory held by the TOML record at
// path. A record without install_dir is treated as absent.
func ReadRecord(path string) (string, error) {
	var rec Record
	_, err := toml.DecodeFile(path, &rec)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoRecord
		}
		return "", fmt.Errorf("pathres: read install record %s: %w", path, err)
	}
	if rec.InstallDir == "" {
		return "", ErrNoRecord
	}
	return rec.InstallDir, nil
}
