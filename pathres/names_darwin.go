//go:build darwin

package pathres

const (
	libDir  = "QTfiles64"
	libFile = "libCoreAudioToolbox.dylib"
	maxPath = 1024
)

func pathUnits(s string) int { return len(s) }
