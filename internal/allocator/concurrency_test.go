package allocator

import (
	"context"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestBumpConcurrentAllocateNeverOverlaps(t *testing.T) {
	const workers = 16
	const perWorker = 256

	arena, err := NewBumpAllocator(WithBumpCapacity(workers*perWorker*16), WithBumpThreadSafe(true))
	if err != nil {
		t.Fatal(err)
	}

	layout := MustLayout(16, 8)

	ptrs := make(chan uintptr, workers*perWorker)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				p, err := arena.Allocate(layout)
				if err != nil {
					return err
				}
				ptrs <- uintptr(p)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	close(ptrs)

	seen := make(map[uintptr]bool, workers*perWorker)
	for p := range ptrs {
		if seen[p] {
			t.Fatalf("pointer %#x handed out twice", p)
		}
		seen[p] = true
	}

	if len(seen) != workers*perWorker {
		t.Fatalf("got %d distinct pointers, want %d", len(seen), workers*perWorker)
	}
}

func TestPoolConcurrentAllocateDeallocateNoCorruption(t *testing.T) {
	const workers = 16
	const perWorker = 500

	pool, err := NewPoolAllocator(
		WithPoolBlockLayout(Layout{Size: 32, Align: 8}),
		WithPoolBlockCount(64),
		WithPoolGrowable(true),
		WithPoolDebugCheckCorruption(true),
	)
	if err != nil {
		t.Fatal(err)
	}

	layout := Layout{Size: 32, Align: 8}

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				p, err := pool.Allocate(layout)
				if err != nil {
					return err
				}
				if err := pool.Deallocate(p, layout); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if got := pool.Used(); got != 0 {
		t.Errorf("Used() = %d after all workers finished, want 0", got)
	}
}
