//go:build windows

package pathres

import (
	"golang.org/x/sys/windows"
)

// executable returns the module file name of the running process. A name
// that fills the MAX_PATH buffer is treated as truncated.
func executable() (string, error) {
	var buf [windows.MAX_PATH]uint16
	n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
	if err != nil {
		return "", err
	}
	if n == 0 || int(n) >= len(buf) {
		return "", ErrTooLong
	}
	return windows.UTF16ToString(buf[:n]), nil
}
