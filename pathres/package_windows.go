//go:build windows && appx

package pathres

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

// PackageFamily is the package family name of the Microsoft Store build
// of iTunes.
const PackageFamily = "AppleInc.iTunes_nzyj5cx40ttqa"

var (
	modkernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procGetPackagesByPackageFamily = modkernel32.NewProc("GetPackagesByPackageFamily")
	procGetPackagePathByFullName   = modkernel32.NewProc("GetPackagePathByFullName")
)

var packageDir = func() (string, error) {
	name, err := firstPackage(PackageFamily)
	if err != nil {
		return "", err
	}
	return packagePath(name)
}

// firstPackage returns the full name of the first installed package in
// family.
func firstPackage(family string) (string, error) {
	if err := procGetPackagesByPackageFamily.Find(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoPackage, err)
	}
	fam, err := windows.UTF16PtrFromString(family)
	if err != nil {
		return "", err
	}

	var count, size uint32
	r, _, _ := procGetPackagesByPackageFamily.Call(
		uintptr(unsafe.Pointer(fam)),
		uintptr(unsafe.Pointer(&count)),
		0,
		uintptr(unsafe.Pointer(&size)),
		0,
	)
	switch windows.Errno(r) {
	case windows.ERROR_SUCCESS, windows.ERROR_INSUFFICIENT_BUFFER:
	default:
		return "", fmt.Errorf("pathres: GetPackagesByPackageFamily: %w", windows.Errno(r))
	}
	if count == 0 || size == 0 {
		return "", ErrNoPackage
	}

	names := make([]*uint16, count)
	buf := make([]uint16, size)
	r, _, _ = procGetPackagesByPackageFamily.Call(
		uintptr(unsafe.Pointer(fam)),
		uintptr(unsafe.Pointer(&count)),
		uintptr(unsafe.Pointer(&names[0])),
		uintptr(unsafe.Pointer(&size)),
		uintptr(unsafe.Pointer(&buf[0])),
	)
	if windows.Errno(r) != windows.ERROR_SUCCESS {
		return "", fmt.Errorf("pathres: GetPackagesByPackageFamily: %w", windows.Errno(r))
	}
	if count == 0 || names[0] == nil {
		return "", ErrNoPackage
	}
	name := windows.UTF16PtrToString(names[0])
	runtime.KeepAlive(buf)
	return name, nil
}

// packagePath returns the install directory of the named package.
func packagePath(fullName string) (string, error) {
	if err := procGetPackagePathByFullName.Find(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoPackage, err)
	}
	name, err := windows.UTF16PtrFromString(fullName)
	if err != nil {
		return "", err
	}

	var n uint32
	r, _, _ := procGetPackagePathByFullName.Call(
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(&n)),
		0,
	)
	if windows.Errno(r) != windows.ERROR_INSUFFICIENT_BUFFER || n == 0 {
		return "", fmt.Errorf("pathres: GetPackagePathByFullName(%s): %w", fullName, windows.Errno(r))
	}
	if int(n) > maxPath {
		return "", ErrTooLong
	}
	buf := make([]uint16, n)
	r, _, _ = procGetPackagePathByFullName.Call(
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(&n)),
		uintptr(unsafe.Pointer(&buf[0])),
	)
	if windows.Errno(r) != windows.ERROR_SUCCESS {
		return "", fmt.Errorf("pathres: GetPackagePathByFullName(%s): %w", fullName, windows.Errno(r))
	}
	return windows.UTF16ToString(buf), nil
}
