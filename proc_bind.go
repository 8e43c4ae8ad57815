//go:build (windows || darwin || linux) && (amd64 || arm64)

package atshim

import "github.com/ebitengine/purego"

func registerFunc(fptr any, addr uintptr) bool {
	purego.RegisterFunc(fptr, addr)
	return true
}
