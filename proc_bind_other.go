//go:build !((windows || darwin || linux) && (amd64 || arm64))

package atshim

// The loader never succeeds here, so nothing is ever registered.
func registerFunc(fptr any, addr uintptr) bool {
	_, _ = fptr, addr
	return false
}
