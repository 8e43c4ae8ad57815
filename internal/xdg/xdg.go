// Package xdg locates files in the XDG configuration directories.
package xdg

import (
	"io/fs"
	"os"
	"path/filepath"
)

const (
	keyConfigHome = "XDG_CONFIG_HOME"
	keyConfigDirs = "XDG_CONFIG_DIRS"
	defConfigDirs = "/etc/xdg"
)

// Config returns the path to the named file found first in ConfigHome and
// then in ConfigDirs. If no file is found Config returns fs.ErrNotExist.
func Config(name string) (string, error) {
	if base, ok := ConfigHome(); ok {
		path := filepath.Join(base, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	for _, base := range ConfigDirs() {
		path := filepath.Join(base, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fs.ErrNotExist
}

// ConfigHome returns the path corresponding to XDG_CONFIG_HOME, falling
// back to $HOME/.config.
func ConfigHome() (string, bool) {
	if dir := os.Getenv(keyConfigHome); filepath.IsAbs(dir) {
		return dir, true
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, ".config"), true
}

// ConfigDirs returns the path list corresponding to XDG_CONFIG_DIRS.
// Relative entries are ignored as the base directory specification
// requires.
func ConfigDirs() []string {
	list := os.Getenv(keyConfigDirs)
	if list == "" {
		list = defConfigDirs
	}
	var dirs []string
	for _, dir := range filepath.SplitList(list) {
		if filepath.IsAbs(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
