//go:build !windows

package pathres

import "os"

func executable() (string, error) {
	return os.Executable()
}
