package allocator

import "unsafe"

// Allocate reserves space for a single T from a and returns a pointer to
// it. The memory is not initialized: a block reused after Deallocate or
// Reset may still hold earlier bytes. T must not contain Go pointers if a is backed by
// BackingOSMemory: the garbage collector does not scan OS-mapped memory,
// so any pointer stored there can be collected out from under it.
func Allocate[T any](a Allocator, layoutOf ...Layout) (*T, error) {
	layout := layoutOfT[T]()
	if len(layoutOf) > 0 {
		layout = layoutOf[0]
	}

	ptr, err := a.Allocate(layout)
	if err != nil {
		return nil, err
	}

	return (*T)(ptr), nil
}

// AllocateInit reserves space for a T in a and copies value into it.
func AllocateInit[T any](a Allocator, value T) (*T, error) {
	p, err := Allocate[T](a)
	if err != nil {
		return nil, err
	}

	*p = value

	return p, nil
}

// AllocateSlice reserves space for n contiguous values of T and returns it
// as a Go slice backed by the allocator's memory. The slice must not be
// grown past n with append; doing so forces a heap reallocation outside
// the allocator's tracking.
func AllocateSlice[T any](a Allocator, n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}

	var zero T
	elemSize := unsafe.Sizeof(zero)
	elemAlign := unsafe.Alignof(zero)

	if willOverflowMul(elemSize, uintptr(n)) {
		return nil, errSizeOverflow(Layout{Size: elemSize, Align: elemAlign})
	}

	total, err := NewLayout(elemSize*uintptr(n), elemAlign)
	if err != nil {
		return nil, err
	}

	ptr, err := a.Allocate(total)
	if err != nil {
		return nil, err
	}

	return unsafe.Slice((*T)(ptr), n), nil
}

// Deallocate returns a *T previously obtained from Allocate or
// AllocateInit back to a. Pass the same layout override given to Allocate,
// if any (e.g. when allocating into a pool whose block layout differs from
// T's natural size/alignment).
func Deallocate[T any](a Allocator, p *T, layoutOf ...Layout) error {
	if p == nil {
		return nil
	}

	layout := layoutOfT[T]()
	if len(layoutOf) > 0 {
		layout = layoutOf[0]
	}

	return a.Deallocate(unsafe.Pointer(p), layout)
}

// DeallocateSlice returns a slice previously obtained from AllocateSlice
// back to a. The slice's header (pointer and length) must be unmodified
// since allocation.
func DeallocateSlice[T any](a Allocator, s []T) error {
	if len(s) == 0 {
		return nil
	}

	var zero T
	elemSize := unsafe.Sizeof(zero)
	elemAlign := unsafe.Alignof(zero)

	if willOverflowMul(elemSize, uintptr(len(s))) {
		return errSizeOverflow(Layout{Size: elemSize, Align: elemAlign})
	}

	layout, err := NewLayout(elemSize*uintptr(len(s)), elemAlign)
	if err != nil {
		return err
	}

	return a.Deallocate(unsafe.Pointer(unsafe.SliceData(s)), layout)
}

func layoutOfT[T any]() Layout {
	var zero T
	return MustLayout(unsafe.Sizeof(zero), unsafe.Alignof(zero))
}
