// Package version prints the build version.
package version

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
)

// Print writes the build version to w.
func Print(w io.Writer) error {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("no build info")
	}
	var revision, modified string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs.revision":
			revision = bs.Value
		case "vcs.modified":
			modified = bs.Value
		}
	}
	version := bi.Main.Version
	if version == "" {
		version = "(devel)"
	}
	switch {
	case revision == "":
		_, err := fmt.Fprintln(w, version, bi.GoVersion)
		return err
	case modified == "true":
		_, err := fmt.Fprintln(w, version, revision, "(modified)", bi.GoVersion)
		return err
	default:
		_, err := fmt.Fprintln(w, version, revision, bi.GoVersion)
		return err
	}
}
