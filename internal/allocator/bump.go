package allocator

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// BumpAllocator is a monotonic-cursor arena: Allocate advances a cursor by
// the aligned request size and never reclaims individual allocations.
// Deallocate is accepted (for Allocator interface conformance) but is a
// no-op; the only way to reclaim space is Reset.
//
// Every successful Reset increments generation. Pointers derived before a
// Reset are not validated against the current generation on use; callers
// are responsible for not retaining them past a Reset, matching the
// lifetime contract of a real arena.
type BumpAllocator struct {
	cell   *bufferCell
	config BumpConfig

	mu     sync.Mutex // guards cursor/peak/allocCount when !ThreadSafe
	cursor atomic.Uintptr
	peak   atomic.Uintptr
	allocs atomic.Uint64
	gen    atomic.Uint64
}

var (
	_ Allocator  = (*BumpAllocator)(nil)
	_ Resettable = (*BumpAllocator)(nil)
)

// NewBumpAllocator constructs a BumpAllocator from opts layered over
// DefaultBumpConfig.
func NewBumpAllocator(opts ...BumpOption) (*BumpAllocator, error) {
	cfg := DefaultBumpConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cell, err := newBufferCell(cfg.Capacity, cfg.Backing)
	if err != nil {
		return nil, err
	}

	return &BumpAllocator{cell: cell, config: cfg}, nil
}

// Allocate reserves layout.Size bytes aligned to layout.Align.
func (b *BumpAllocator) Allocate(layout Layout) (unsafe.Pointer, error) {
	if !b.config.Budget.Reserve(layout.Size) {
		err := errBudgetExceeded(layout, b.snapshotLocked())
		b.config.Reporter.ReportError(err)
		return nil, err
	}

	var ptr unsafe.Pointer
	var err error

	if b.config.ThreadSafe {
		ptr, err = b.allocateAtomic(layout)
	} else {
		ptr, err = b.allocateLocked(layout)
	}

	if err != nil {
		b.config.Budget.Release(layout.Size)
		b.config.Reporter.ReportError(err.(*AllocError))
		return nil, err
	}

	b.config.Stats.ObserveAllocate(layout.Size)

	return ptr, nil
}

func (b *BumpAllocator) allocateAtomic(layout Layout) (unsafe.Pointer, error) {
	capacity := b.cell.Cap()

	var backoff casBackoff

	for {
		cur := b.cursor.Load()
		aligned := alignUp(cur, layout.Align)

		if aligned < cur || willOverflowAdd(aligned, layout.Size) || aligned+layout.Size > capacity {
			return nil, errOutOfMemory(layout, b.snapshotAtomic())
		}

		next := aligned + layout.Size
		if !b.cursor.CompareAndSwap(cur, next) {
			backoff.wait()
			continue
		}

		b.allocs.Add(1)
		b.bumpPeak(next)

		return b.cell.At(aligned), nil
	}
}

func (b *BumpAllocator) allocateLocked(layout Layout) (unsafe.Pointer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capacity := b.cell.Cap()
	cur := b.cursor.Load()
	aligned := alignUp(cur, layout.Align)

	if aligned < cur || willOverflowAdd(aligned, layout.Size) || aligned+layout.Size > capacity {
		return nil, errOutOfMemory(layout, b.snapshotLocked())
	}

	next := aligned + layout.Size
	b.cursor.Store(next)
	b.allocs.Add(1)
	b.bumpPeak(next)

	return b.cell.At(aligned), nil
}

func (b *BumpAllocator) bumpPeak(used uintptr) {
	for {
		p := b.peak.Load()
		if used <= p || b.peak.CompareAndSwap(p, used) {
			return
		}
	}
}

// Deallocate is a no-op for bump allocators; it exists to satisfy
// Allocator. It always reports success.
func (b *BumpAllocator) Deallocate(ptr unsafe.Pointer, layout Layout) error {
	b.config.Stats.ObserveDeallocate(layout.Size)
	return nil
}

// Reset discards every live allocation and returns the cursor to zero.
func (b *BumpAllocator) Reset() error {
	if !b.config.ThreadSafe {
		b.mu.Lock()
		defer b.mu.Unlock()
	}

	if b.config.ScribbleOnReset {
		b.cell.Zero()
	}

	b.cursor.Store(0)
	b.allocs.Store(0)
	b.gen.Add(1)
	b.config.Stats.ObserveReset()

	return nil
}

func (b *BumpAllocator) Used() uintptr      { return b.cursor.Load() }
func (b *BumpAllocator) Available() uintptr { return b.cell.Cap() - b.cursor.Load() }
func (b *BumpAllocator) Capacity() uintptr  { return b.cell.Cap() }

// Generation returns the number of times Reset has been called. Useful for
// detecting stale pointers held across a Reset in debug assertions.
func (b *BumpAllocator) Generation() uint64 { return b.gen.Load() }

func (b *BumpAllocator) Snapshot() AllocatorState {
	return b.snapshotAtomic()
}

func (b *BumpAllocator) snapshotAtomic() AllocatorState {
	used := b.cursor.Load()
	capacity := b.cell.Cap()

	return AllocatorState{
		Used:       used,
		Available:  capacity - used,
		Capacity:   capacity,
		AllocCount: b.allocs.Load(),
		PeakUsage:  b.peak.Load(),
	}
}

func (b *BumpAllocator) snapshotLocked() AllocatorState {
	return b.snapshotAtomic()
}
