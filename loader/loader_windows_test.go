//go:build windows && (amd64 || arm64)

package loader

import (
	"testing"

	"golang.org/x/sys/windows"
)

func TestOpenSystemLibrary(t *testing.T) {
	dir, err := windows.GetSystemDirectory()
	if err != nil {
		t.Fatalf("GetSystemDirectory: %v", err)
	}
	path := dir + `\kernel32.dll`

	module, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%s): %v", path, err)
	}
	addr, err := module.ProcAddressByName("GetTickCount")
	if err != nil {
		t.Fatalf("ProcAddressByName(GetTickCount): %v", err)
	}
	if addr == 0 {
		t.Fatal("ProcAddressByName(GetTickCount) returned zero address")
	}
	if _, err := module.ProcAddressByName("AudioConverterNew"); err == nil {
		t.Error("ProcAddressByName(AudioConverterNew): expected error from kernel32")
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(`C:\nonexistent\QTfiles64\CoreAudioToolbox.dll`); err == nil {
		t.Fatal("Open of missing library: expected error")
	}
}
