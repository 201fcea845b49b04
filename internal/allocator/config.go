package allocator

// BackingStore selects where an allocator's backing bytes come from.
type BackingStore int

const (
	// BackingHeap backs the allocator with a regular Go-managed []byte.
	BackingHeap BackingStore = iota
	// BackingOSMemory backs the allocator with OS-mapped memory obtained
	// through internal/sysmem (mmap/VirtualAlloc), bypassing the Go heap
	// and GC scanning entirely.
	BackingOSMemory
)

// BumpConfig configures a BumpAllocator.
type BumpConfig struct {
	// Capacity is the total number of bytes the arena can hand out.
	Capacity uintptr
	// Backing selects the memory source for the arena.
	Backing BackingStore
	// ThreadSafe selects the lock-free CAS cursor when true, and a
	// mutex-guarded cursor when false.
	ThreadSafe bool
	// ScribbleOnReset overwrites the arena with zero bytes on Reset, making
	// use-after-reset bugs visible rather than silently reading stale data.
	ScribbleOnReset bool
	Stats           StatsSink
	Budget          BudgetTracker
	Reporter        ErrorReporter
}

// DefaultBumpConfig returns a BumpConfig with a 1 MiB heap-backed arena and
// the atomic cursor enabled.
func DefaultBumpConfig() BumpConfig {
	return BumpConfig{
		Capacity:        1 << 20,
		Backing:         BackingHeap,
		ThreadSafe:      true,
		ScribbleOnReset: false,
		Stats:           NoopStatsSink{},
		Budget:          NoopBudgetTracker{},
		Reporter:        NoopErrorReporter{},
	}
}

// BumpOption mutates a BumpConfig being built up by NewBumpAllocator.
type BumpOption func(*BumpConfig)

func WithBumpCapacity(capacity uintptr) BumpOption {
	return func(c *BumpConfig) { c.Capacity = capacity }
}

func WithBumpBacking(store BackingStore) BumpOption {
	return func(c *BumpConfig) { c.Backing = store }
}

func WithBumpThreadSafe(safe bool) BumpOption {
	return func(c *BumpConfig) { c.ThreadSafe = safe }
}

func WithBumpScribbleOnReset(enabled bool) BumpOption {
	return func(c *BumpConfig) { c.ScribbleOnReset = enabled }
}

func WithBumpStats(sink StatsSink) BumpOption {
	return func(c *BumpConfig) { c.Stats = sink }
}

func WithBumpBudget(tracker BudgetTracker) BumpOption {
	return func(c *BumpConfig) { c.Budget = tracker }
}

func WithBumpReporter(reporter ErrorReporter) BumpOption {
	return func(c *BumpConfig) { c.Reporter = reporter }
}

// PoolConfig configures a PoolAllocator. A pool hands out fixed-size blocks
// only; BlockLayout is the exact size and alignment every Allocate and
// Deallocate call must pass. Blocks are laid out BlockLayout.Size rounded up
// to BlockLayout.Align apart.
type PoolConfig struct {
	// BlockLayout is the size/alignment of every block in the pool.
	BlockLayout Layout
	// BlockCount is the number of blocks in the pool's initial chunk.
	BlockCount uintptr
	// Growable allows the pool to allocate additional chunks of BlockCount
	// blocks when exhausted, instead of returning ErrPoolExhausted.
	Growable bool
	Backing  BackingStore
	// ThreadSafe enables the lock-free CAS free list. Single-threaded pools
	// use a plain slice-backed free list instead.
	ThreadSafe bool
	// DebugCheckCorruption tracks every outstanding block in a side table
	// and rejects a Deallocate of a block that is not currently allocated
	// (a double free) with ErrPoolCorruption. Pointers outside every chunk
	// or off a block boundary are rejected whether or not this is set.
	// Slots popped from the free list are not validated.
	DebugCheckCorruption bool
	Stats                StatsSink
	Budget               BudgetTracker
	Reporter             ErrorReporter
}

// DefaultPoolConfig returns a PoolConfig for 64-byte, 8-byte-aligned
// blocks, 256 blocks per chunk, growable, heap-backed, thread-safe.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		BlockLayout:          Layout{Size: 64, Align: 8},
		BlockCount:           256,
		Growable:             true,
		Backing:              BackingHeap,
		ThreadSafe:           true,
		DebugCheckCorruption: false,
		Stats:                NoopStatsSink{},
		Budget:               NoopBudgetTracker{},
		Reporter:             NoopErrorReporter{},
	}
}

type PoolOption func(*PoolConfig)

func WithPoolBlockLayout(layout Layout) PoolOption {
	return func(c *PoolConfig) { c.BlockLayout = layout }
}

func WithPoolBlockCount(count uintptr) PoolOption {
	return func(c *PoolConfig) { c.BlockCount = count }
}

func WithPoolGrowable(growable bool) PoolOption {
	return func(c *PoolConfig) { c.Growable = growable }
}

func WithPoolBacking(store BackingStore) PoolOption {
	return func(c *PoolConfig) { c.Backing = store }
}

func WithPoolThreadSafe(safe bool) PoolOption {
	return func(c *PoolConfig) { c.ThreadSafe = safe }
}

func WithPoolDebugCheckCorruption(enabled bool) PoolOption {
	return func(c *PoolConfig) { c.DebugCheckCorruption = enabled }
}

func WithPoolStats(sink StatsSink) PoolOption {
	return func(c *PoolConfig) { c.Stats = sink }
}

func WithPoolBudget(tracker BudgetTracker) PoolOption {
	return func(c *PoolConfig) { c.Budget = tracker }
}

func WithPoolReporter(reporter ErrorReporter) PoolOption {
	return func(c *PoolConfig) { c.Reporter = reporter }
}

// StackConfig configures a StackAllocator.
type StackConfig struct {
	Capacity        uintptr
	Backing         BackingStore
	ThreadSafe      bool
	ScribbleOnReset bool
	// DebugCheckLIFO tracks a side-table of live markers and rejects
	// out-of-order Deallocate/RestoreTo calls with ErrLIFOViolation instead
	// of silently corrupting the cursor.
	DebugCheckLIFO bool
	Stats          StatsSink
	Budget         BudgetTracker
	Reporter       ErrorReporter
}

// DefaultStackConfig returns a StackConfig with a 1 MiB heap-backed stack,
// thread-safe, and LIFO checking enabled.
func DefaultStackConfig() StackConfig {
	return StackConfig{
		Capacity:        1 << 20,
		Backing:         BackingHeap,
		ThreadSafe:      true,
		ScribbleOnReset: false,
		DebugCheckLIFO:  true,
		Stats:           NoopStatsSink{},
		Budget:          NoopBudgetTracker{},
		Reporter:        NoopErrorReporter{},
	}
}

type StackOption func(*StackConfig)

func WithStackCapacity(capacity uintptr) StackOption {
	return func(c *StackConfig) { c.Capacity = capacity }
}

func WithStackBacking(store BackingStore) StackOption {
	return func(c *StackConfig) { c.Backing = store }
}

func WithStackThreadSafe(safe bool) StackOption {
	return func(c *StackConfig) { c.ThreadSafe = safe }
}

func WithStackScribbleOnReset(enabled bool) StackOption {
	return func(c *StackConfig) { c.ScribbleOnReset = enabled }
}

func WithStackDebugCheckLIFO(enabled bool) StackOption {
	return func(c *StackConfig) { c.DebugCheckLIFO = enabled }
}

func WithStackStats(sink StatsSink) StackOption {
	return func(c *StackConfig) { c.Stats = sink }
}

func WithStackBudget(tracker BudgetTracker) StackOption {
	return func(c *StackConfig) { c.Budget = tracker }
}

func WithStackReporter(reporter ErrorReporter) StackOption {
	return func(c *StackConfig) { c.Reporter = reporter }
}
