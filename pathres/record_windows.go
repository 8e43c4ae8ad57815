//go:build windows

package pathres

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const (
	recordKey   = `SOFTWARE\Apple Computer, Inc.\iTunes`
	recordValue = "InstallDir"
)

// installDir reads the iTunes install directory from HKLM. Only REG_SZ
// values are accepted.
func installDir() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, recordKey, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", ErrNoRecord
		}
		return "", fmt.Errorf("pathres: open HKLM\\%s: %w", recordKey, err)
	}
	defer k.Close()

	dir, typ, err := k.GetStringValue(recordValue)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", ErrNoRecord
		}
		return "", fmt.Errorf("pathres: read %s: %w", recordValue, err)
	}
	if typ != registry.SZ {
		return "", fmt.Errorf("%w: %s has type %d", ErrNoRecord, recordValue, typ)
	}
	return dir, nil
}
