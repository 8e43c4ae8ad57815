//go:build !((windows || darwin || linux) && (amd64 || arm64))

package atshim

// NewComplexInputDataProc returns 0; the library cannot be loaded on this
// platform.
func NewComplexInputDataProc(fn ComplexInputDataFunc) AudioConverterComplexInputDataProc {
	_ = fn
	return 0
}
