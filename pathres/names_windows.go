//go:build windows

package pathres

import (
	"strconv"
	"unicode/utf16"

	"golang.org/x/sys/windows"
)

const (
	libFile = "CoreAudioToolbox.dll"
	maxPath = windows.MAX_PATH
)

var libDir = func() string {
	if strconv.IntSize == 64 {
		return "QTfiles64"
	}
	return "QTfiles"
}()

// pathUnits counts UTF-16 code units, the unit of MAX_PATH.
func pathUnits(s string) int {
	return len(utf16.Encode([]rune(s)))
}
