package allocator

import (
	"sync/atomic"

	"github.com/timandy/routine"
)

// StatsSink receives allocation events from an allocator. Implementations
// must be safe for concurrent use; allocators call it on every hot-path
// Allocate/Deallocate.
type StatsSink interface {
	ObserveAllocate(size uintptr)
	ObserveDeallocate(size uintptr)
	ObserveReset()
}

// NoopStatsSink discards every observation. It is the default sink so that
// instrumentation is opt-in and costs nothing when unused.
type NoopStatsSink struct{}

func (NoopStatsSink) ObserveAllocate(uintptr)   {}
func (NoopStatsSink) ObserveDeallocate(uintptr) {}
func (NoopStatsSink) ObserveReset()              {}

// statsBatch accumulates per-goroutine counts before they are folded into
// the aggregate, avoiding a shared cache line on the hot allocation path.
type statsBatch struct {
	allocCount   uint64
	allocBytes   uint64
	deallocCount uint64
	deallocBytes uint64
}

// BatchingStatsSink buffers allocation events per goroutine using
// goroutine-local storage and periodically flushes them into a shared
// atomic aggregate, so concurrent allocators do not contend on a single
// counter for every call.
type BatchingStatsSink struct {
	local          routine.ThreadLocal[*statsBatch]
	flushThreshold uint64

	allocCount   atomic.Uint64
	allocBytes   atomic.Uint64
	deallocCount atomic.Uint64
	deallocBytes atomic.Uint64
	resetCount   atomic.Uint64
}

// NewBatchingStatsSink returns a BatchingStatsSink that flushes a
// goroutine's local batch into the shared aggregate once its operation
// count reaches flushThreshold. A threshold of zero flushes every call.
func NewBatchingStatsSink(flushThreshold uint64) *BatchingStatsSink {
	return &BatchingStatsSink{
		local: routine.NewThreadLocalWithInitial[*statsBatch](func() *statsBatch {
			return &statsBatch{}
		}),
		flushThreshold: flushThreshold,
	}
}

func (s *BatchingStatsSink) ObserveAllocate(size uintptr) {
	b := s.local.Get()
	b.allocCount++
	b.allocBytes += uint64(size)

	if s.flushThreshold == 0 || b.allocCount+b.deallocCount >= s.flushThreshold {
		s.flush(b)
	}
}

func (s *BatchingStatsSink) ObserveDeallocate(size uintptr) {
	b := s.local.Get()
	b.deallocCount++
	b.deallocBytes += uint64(size)

	if s.flushThreshold == 0 || b.allocCount+b.deallocCount >= s.flushThreshold {
		s.flush(b)
	}
}

func (s *BatchingStatsSink) ObserveReset() {
	s.resetCount.Add(1)
}

func (s *BatchingStatsSink) flush(b *statsBatch) {
	if b.allocCount > 0 {
		s.allocCount.Add(b.allocCount)
		s.allocBytes.Add(b.allocBytes)
		b.allocCount, b.allocBytes = 0, 0
	}

	if b.deallocCount > 0 {
		s.deallocCount.Add(b.deallocCount)
		s.deallocBytes.Add(b.deallocBytes)
		b.deallocCount, b.deallocBytes = 0, 0
	}
}

// Aggregate flushes the calling goroutine's pending batch and returns the
// cumulative totals observed so far across all goroutines. Counts from
// goroutines that have not flushed recently are not reflected until their
// next operation crosses the flush threshold.
func (s *BatchingStatsSink) Aggregate() (allocCount, allocBytes, deallocCount, deallocBytes uint64) {
	s.flush(s.local.Get())

	return s.allocCount.Load(), s.allocBytes.Load(), s.deallocCount.Load(), s.deallocBytes.Load()
}
