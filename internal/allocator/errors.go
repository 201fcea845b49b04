package allocator

import "fmt"

// ErrorCode classifies an allocation failure. See AllocError.
type ErrorCode int

const (
	// ErrOutOfMemory indicates insufficient capacity for the request.
	ErrOutOfMemory ErrorCode = iota
	// ErrPoolExhausted indicates a pool allocator has no free blocks.
	ErrPoolExhausted
	// ErrInvalidLayout indicates a zero size where disallowed, or (pool) a
	// layout that does not match the allocator's configured block layout.
	ErrInvalidLayout
	// ErrInvalidAlignment indicates alignment is not a nonzero power of two.
	ErrInvalidAlignment
	// ErrSizeOverflow indicates size+alignment padding, or size*count, would
	// overflow uintptr.
	ErrSizeOverflow
	// ErrPoolCorruption indicates a free-list pointer is outside pool bounds,
	// misaligned, or appears twice. Fatal: it indicates a memory-safety
	// violation has already occurred elsewhere.
	ErrPoolCorruption
	// ErrLIFOViolation indicates a stack deallocate/restore happened out of
	// order.
	ErrLIFOViolation
	// ErrBudgetExceeded indicates an external BudgetTracker refused the
	// request.
	ErrBudgetExceeded
)

// String renders the error code as its stable, machine-readable name.
func (c ErrorCode) String() string {
	switch c {
	case ErrOutOfMemory:
		return "OutOfMemory"
	case ErrPoolExhausted:
		return "PoolExhausted"
	case ErrInvalidLayout:
		return "InvalidLayout"
	case ErrInvalidAlignment:
		return "InvalidAlignment"
	case ErrSizeOverflow:
		return "SizeOverflow"
	case ErrPoolCorruption:
		return "PoolCorruption"
	case ErrLIFOViolation:
		return "LIFOViolation"
	case ErrBudgetExceeded:
		return "BudgetExceeded"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// AllocatorState is a point-in-time snapshot of an allocator's byte
// accounting, used both as the return value of Allocator.Snapshot and as
// context attached to AllocError.
type AllocatorState struct {
	Used       uintptr
	Available  uintptr
	Capacity   uintptr
	AllocCount uint64
	PeakUsage  uintptr
}

// AllocError is the structured error returned by every fallible allocator
// operation. It is always returned, never panicked; this includes
// ErrPoolCorruption and ErrLIFOViolation, which both indicate that the
// caller has already misused the allocator.
type AllocError struct {
	Code       ErrorCode
	Message    string
	Requested  Layout
	Snapshot   AllocatorState
	Suggestion string
}

// Error implements the error interface.
func (e *AllocError) Error() string {
	return e.String()
}

// String renders a multi-line, log-friendly representation of the error
// while keeping every field machine-readable via direct struct access.
func (e *AllocError) String() string {
	s := fmt.Sprintf("AllocError[%s]: %s\n  requested: size=%d align=%d\n  state: used=%d available=%d capacity=%d",
		e.Code, e.Message, e.Requested.Size, e.Requested.Align,
		e.Snapshot.Used, e.Snapshot.Available, e.Snapshot.Capacity)
	if e.Suggestion != "" {
		s += fmt.Sprintf("\n  suggestion: %s", e.Suggestion)
	}

	return s
}

func errOutOfMemory(requested Layout, snap AllocatorState) *AllocError {
	return &AllocError{
		Code:       ErrOutOfMemory,
		Message:    "insufficient capacity for request",
		Requested:  requested,
		Snapshot:   snap,
		Suggestion: "increase capacity, call Reset(), or switch allocator type",
	}
}

func errPoolExhausted(requested Layout, snap AllocatorState) *AllocError {
	return &AllocError{
		Code:       ErrPoolExhausted,
		Message:    "pool has no free blocks",
		Requested:  requested,
		Snapshot:   snap,
		Suggestion: "deallocate a block or call Reset()",
	}
}

func errInvalidLayout(requested Layout, snap AllocatorState, reason string) *AllocError {
	return &AllocError{
		Code:       ErrInvalidLayout,
		Message:    reason,
		Requested:  requested,
		Snapshot:   snap,
		Suggestion: "pass the layout originally used to allocate this pointer",
	}
}

func errInvalidAlignment(requested Layout) *AllocError {
	return &AllocError{
		Code:       ErrInvalidAlignment,
		Message:    "alignment must be a nonzero power of two",
		Requested:  requested,
		Suggestion: "round the alignment up to the nearest power of two",
	}
}

func errSizeOverflow(requested Layout) *AllocError {
	return &AllocError{
		Code:       ErrSizeOverflow,
		Message:    "size plus alignment padding overflows uintptr",
		Requested:  requested,
		Suggestion: "reduce the requested size or alignment",
	}
}

func errPoolCorruption(requested Layout, snap AllocatorState, reason string) *AllocError {
	return &AllocError{
		Code:      ErrPoolCorruption,
		Message:   reason,
		Requested: requested,
		Snapshot:  snap,
	}
}

func errLIFOViolation(requested Layout, snap AllocatorState) *AllocError {
	return &AllocError{
		Code:       ErrLIFOViolation,
		Message:    "deallocate/restore out of LIFO order",
		Requested:  requested,
		Snapshot:   snap,
		Suggestion: "deallocate the most recent live allocation first",
	}
}

func errBudgetExceeded(requested Layout, snap AllocatorState) *AllocError {
	return &AllocError{
		Code:       ErrBudgetExceeded,
		Message:    "budget tracker refused the request",
		Requested:  requested,
		Snapshot:   snap,
		Suggestion: "raise the budget cap or free existing allocations",
	}
}
