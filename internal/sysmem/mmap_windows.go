//go:build windows

package sysmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Map reserves size bytes of anonymous memory via VirtualAlloc.
func Map(size uintptr) (Region, error) {
	if size == 0 {
		return nil, nil
	}

	addr, err := windows.VirtualAlloc(0, size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// Unmap releases memory previously returned by Map.
func Unmap(r Region) error {
	if len(r) == 0 {
		return nil
	}

	return windows.VirtualFree(uintptr(unsafe.Pointer(&r[0])), 0, windows.MEM_RELEASE)
}
