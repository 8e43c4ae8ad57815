package atshim

import (
	"fmt"
	"strconv"
)

// Status is an OSStatus result code. Codes are either small signed
// integers or four-character codes.
type Status int32

const (
	// NoErr reports success.
	NoErr Status = 0

	// UnimplementedError is returned by entry points the library does
	// not provide.
	UnimplementedError Status = -4

	// ExecutableLoadError is returned by every forwarding entry point when
	// the library could not be located or loaded. It is never produced by
	// the library itself and does not describe a codec error.
	ExecutableLoadError Status = 3587

	// AudioFormatUnsupportedDataFormatError is the library's 'fmt?' code.
	AudioFormatUnsupportedDataFormatError Status = 0x666d743f
)

func (s Status) String() string {
	switch s {
	case NoErr:
		return "noErr"
	case UnimplementedError:
		return "kAudio_UnimplementedError"
	case ExecutableLoadError:
		return "NSExecutableLoadError"
	}
	if code, ok := fourCC(uint32(s)); ok {
		return strconv.Quote(code)
	}
	return fmt.Sprintf("OSStatus(%d)", int32(s))
}

// fourCC returns v as a four-character code if all four bytes are
// printable ASCII.
func fourCC(v uint32) (string, bool) {
	b := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return "", false
		}
	}
	return string(b), true
}
