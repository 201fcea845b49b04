// Package sysmem maps and unmaps anonymous OS-backed memory for allocators
// that want to bypass the Go heap and GC scanning entirely. Platform
// support is split across build-tagged files; a pure-Go fallback covers
// everything else.
package sysmem

// Region is a slice of OS-backed memory returned by Map. Its length is
// always exactly the requested size; callers must pass the same slice
// (same pointer and length) to Unmap.
type Region = []byte
