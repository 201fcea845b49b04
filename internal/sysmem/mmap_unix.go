//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package sysmem

import (
	"golang.org/x/sys/unix"
)

// Map reserves size bytes of anonymous, page-backed memory via mmap.
func Map(size uintptr) (Region, error) {
	if size == 0 {
		return nil, nil
	}

	b, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Unmap releases memory previously returned by Map.
func Unmap(r Region) error {
	if len(r) == 0 {
		return nil
	}

	return unix.Munmap(r)
}
