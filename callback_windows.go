//go:build windows && (amd64 || arm64)

package atshim

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// NewComplexInputDataProc returns a C-callable input callback for
// AudioConverterFillComplexBuffer that invokes fn. Callbacks are never
// released and the process may create only a limited number of them, so
// create one per function and reuse it.
func NewComplexInputDataProc(fn ComplexInputDataFunc) AudioConverterComplexInputDataProc {
	// Windows callbacks must return a uintptr-sized result.
	cb := func(converter AudioConverterRef, packets *uint32, data *AudioBufferList, descs **AudioStreamPacketDescription, userData unsafe.Pointer) uintptr {
		return uintptr(uint32(fn(converter, packets, data, descs, userData)))
	}
	return AudioConverterComplexInputDataProc(purego.NewCallback(cb))
}
