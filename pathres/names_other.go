//go:build !windows && !darwin

package pathres

import "strconv"

const (
	libFile = "libCoreAudioToolbox.so"
	maxPath = 4096
)

var libDir = func() string {
	if strconv.IntSize == 64 {
		return "QTfiles64"
	}
	return "QTfiles"
}()

func pathUnits(s string) int { return len(s) }
