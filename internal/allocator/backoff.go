package allocator

import "runtime"

// casBackoff bounds CAS-retry spinning on a shared atomic. After a handful
// of immediate retries it yields the processor via runtime.Gosched so a
// contended allocator doesn't spin a core down while the goroutine holding
// the conflicting write gets scheduled.
type casBackoff struct {
	attempts int
}

const casSpinLimit = 8

// wait should be called after a failed CompareAndSwap, before retrying.
func (b *casBackoff) wait() {
	b.attempts++
	if b.attempts > casSpinLimit {
		runtime.Gosched()
	}
}
