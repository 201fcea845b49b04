package allocator

import (
	"unsafe"

	"github.com/vanyastaff/nebula-sub004/internal/sysmem"
)

// bufferCell owns a single contiguous backing allocation and derives
// pointers into it via unsafe.Add, preserving pointer provenance instead of
// reconstructing addresses with arithmetic on uintptr. Every region
// allocator embeds one.
type bufferCell struct {
	buf     []byte
	base    unsafe.Pointer
	mapped  bool // true when buf came from sysmem.Map, not the Go heap
}

// newBufferCell allocates size bytes from the requested backing store.
func newBufferCell(size uintptr, store BackingStore) (*bufferCell, error) {
	if size == 0 {
		return &bufferCell{}, nil
	}

	switch store {
	case BackingOSMemory:
		buf, err := sysmem.Map(size)
		if err != nil {
			return nil, err
		}

		return &bufferCell{buf: buf, base: unsafe.Pointer(unsafe.SliceData(buf)), mapped: true}, nil
	default:
		buf := make([]byte, size)
		return &bufferCell{buf: buf, base: unsafe.Pointer(unsafe.SliceData(buf))}, nil
	}
}

// Base returns the address of the first byte of the cell's backing memory.
func (c *bufferCell) Base() unsafe.Pointer {
	return c.base
}

// Cap returns the total size of the cell's backing memory.
func (c *bufferCell) Cap() uintptr {
	return uintptr(len(c.buf))
}

// At returns a pointer to the byte at offset within the cell. Callers are
// responsible for keeping offset within [0, Cap()).
func (c *bufferCell) At(offset uintptr) unsafe.Pointer {
	return unsafe.Add(c.base, offset)
}

// Contains reports whether ptr lies within [Base(), Base()+Cap()).
func (c *bufferCell) Contains(ptr unsafe.Pointer) bool {
	if c.base == nil {
		return false
	}

	start := uintptr(c.base)
	addr := uintptr(ptr)

	return addr >= start && addr < start+uintptr(len(c.buf))
}

// Offset returns the byte offset of ptr within the cell. ptr must satisfy
// Contains(ptr).
func (c *bufferCell) Offset(ptr unsafe.Pointer) uintptr {
	return uintptr(ptr) - uintptr(c.base)
}

// Release returns OS-backed memory to the kernel. It is a no-op for
// heap-backed cells, which the Go GC reclaims normally.
func (c *bufferCell) Release() error {
	if !c.mapped {
		return nil
	}

	return sysmem.Unmap(c.buf)
}

// Zero overwrites the entire cell with zero bytes.
func (c *bufferCell) Zero() {
	if len(c.buf) == 0 {
		return
	}

	zeroBytes(c.base, uintptr(len(c.buf)))
}
