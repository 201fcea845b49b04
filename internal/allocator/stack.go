package allocator

import (
	"sync"
	"unsafe"
)

// Marker identifies a point in a StackAllocator's history. RestoreTo
// rewinds the stack to exactly the state it had when the marker was
// taken, freeing everything allocated after it in one step.
type Marker struct {
	offset uintptr
	seq    uint64
}

// StackAllocator allocates and frees in strict LIFO order from a single
// contiguous region. Deallocate (and RestoreTo) reject any call that would
// free something other than the most recent live allocation when
// StackConfig.DebugCheckLIFO is set, surfacing misuse instead of silently
// rewinding past still-referenced data.
type StackAllocator struct {
	cell   *bufferCell
	config StackConfig

	mu     sync.Mutex // guards cursor/peak/markers when config.ThreadSafe
	cursor uintptr
	peak   uintptr
	allocs uint64
	seq    uint64

	// markers records (offset, seq, size) for every live allocation, used
	// only when DebugCheckLIFO is enabled to verify LIFO order on
	// Deallocate and to validate RestoreTo targets.
	markers []stackMarker
}

type stackMarker struct {
	offset uintptr
	seq    uint64
	size   uintptr
}

var (
	_ Allocator  = (*StackAllocator)(nil)
	_ Resettable = (*StackAllocator)(nil)
)

// lock/unlock honor StackConfig.ThreadSafe: single-goroutine callers that
// set it false skip the mutex entirely.
func (s *StackAllocator) lock() {
	if s.config.ThreadSafe {
		s.mu.Lock()
	}
}

func (s *StackAllocator) unlock() {
	if s.config.ThreadSafe {
		s.mu.Unlock()
	}
}

// NewStackAllocator constructs a StackAllocator from opts layered over
// DefaultStackConfig.
func NewStackAllocator(opts ...StackOption) (*StackAllocator, error) {
	cfg := DefaultStackConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cell, err := newBufferCell(cfg.Capacity, cfg.Backing)
	if err != nil {
		return nil, err
	}

	return &StackAllocator{cell: cell, config: cfg}, nil
}

// Allocate reserves layout.Size bytes aligned to layout.Align at the top of
// the stack.
func (s *StackAllocator) Allocate(layout Layout) (unsafe.Pointer, error) {
	if !s.config.Budget.Reserve(layout.Size) {
		err := errBudgetExceeded(layout, s.snapshotLocked())
		s.config.Reporter.ReportError(err)
		return nil, err
	}

	s.lock()
	defer s.unlock()

	capacity := s.cell.Cap()
	aligned := alignUp(s.cursor, layout.Align)

	if aligned < s.cursor || willOverflowAdd(aligned, layout.Size) || aligned+layout.Size > capacity {
		s.config.Budget.Release(layout.Size)
		err := errOutOfMemory(layout, s.snapshotLocked())
		s.config.Reporter.ReportError(err)
		return nil, err
	}

	s.seq++
	marker := stackMarker{offset: aligned, seq: s.seq, size: layout.Size}

	if s.config.DebugCheckLIFO {
		s.markers = append(s.markers, marker)
	}

	s.cursor = aligned + layout.Size
	s.allocs++

	if s.cursor > s.peak {
		s.peak = s.cursor
	}

	s.config.Stats.ObserveAllocate(layout.Size)

	return s.cell.At(aligned), nil
}

// Deallocate frees the most recent live allocation. ptr and layout must
// match the top-of-stack allocation exactly; freeing anything else returns
// ErrLIFOViolation when DebugCheckLIFO is set, and otherwise just rewinds
// the cursor by layout.Size (trusting the caller).
func (s *StackAllocator) Deallocate(ptr unsafe.Pointer, layout Layout) error {
	s.lock()
	defer s.unlock()

	if s.config.DebugCheckLIFO {
		if len(s.markers) == 0 {
			err := errLIFOViolation(layout, s.snapshotLocked())
			s.config.Reporter.ReportError(err)
			return err
		}

		top := s.markers[len(s.markers)-1]
		if top.offset != s.cell.Offset(ptr) || top.size != layout.Size {
			err := errLIFOViolation(layout, s.snapshotLocked())
			s.config.Reporter.ReportError(err)
			return err
		}

		s.markers = s.markers[:len(s.markers)-1]
	}

	s.cursor -= layout.Size
	s.config.Budget.Release(layout.Size)
	s.config.Stats.ObserveDeallocate(layout.Size)

	return nil
}

// Mark returns a Marker for the stack's current top.
func (s *StackAllocator) Mark() Marker {
	s.lock()
	defer s.unlock()

	return Marker{offset: s.cursor, seq: s.seq}
}

// RestoreTo rewinds the stack to m, freeing everything allocated after it.
// m must have been returned by a Mark call on this stack with no
// intervening Reset; restoring to a marker with a higher sequence number
// than the current top is rejected as a LIFO violation.
func (s *StackAllocator) RestoreTo(m Marker) error {
	s.lock()
	defer s.unlock()

	if m.seq > s.seq || m.offset > s.cursor {
		err := errLIFOViolation(Layout{}, s.snapshotLocked())
		s.config.Reporter.ReportError(err)
		return err
	}

	if s.config.DebugCheckLIFO {
		kept := s.markers[:0]
		for _, mk := range s.markers {
			if mk.seq <= m.seq {
				kept = append(kept, mk)
			}
		}
		s.markers = kept
	}

	freed := s.cursor - m.offset
	s.cursor = m.offset
	s.seq = m.seq
	s.config.Budget.Release(freed)
	s.config.Stats.ObserveDeallocate(freed)

	return nil
}

// Reset discards every live allocation and returns the cursor to zero.
func (s *StackAllocator) Reset() error {
	s.lock()
	defer s.unlock()

	if s.config.ScribbleOnReset {
		s.cell.Zero()
	}

	s.cursor = 0
	s.seq = 0
	s.allocs = 0
	s.markers = s.markers[:0]
	s.config.Stats.ObserveReset()

	return nil
}

func (s *StackAllocator) Used() uintptr {
	s.lock()
	defer s.unlock()

	return s.cursor
}

func (s *StackAllocator) Available() uintptr {
	s.lock()
	defer s.unlock()

	return s.cell.Cap() - s.cursor
}

func (s *StackAllocator) Capacity() uintptr {
	return s.cell.Cap()
}

func (s *StackAllocator) Snapshot() AllocatorState {
	s.lock()
	defer s.unlock()

	return s.snapshotLocked()
}

func (s *StackAllocator) snapshotLocked() AllocatorState {
	capacity := s.cell.Cap()

	return AllocatorState{
		Used:       s.cursor,
		Available:  capacity - s.cursor,
		Capacity:   capacity,
		AllocCount: s.allocs,
		PeakUsage:  s.peak,
	}
}
