// Command memalloc-bench exercises the bump, pool, and stack allocators
// under concurrent load and prints their resulting statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vanyastaff/nebula-sub004/internal/allocator"
)

func main() {
	workers := flag.Int("workers", 8, "concurrent goroutines per allocator")
	iterations := flag.Int("iterations", 50000, "allocate/free iterations per worker")
	flag.Parse()

	if err := run(*workers, *iterations); err != nil {
		log.Fatal(err)
	}
}

func run(workers, iterations int) error {
	if err := benchBump(workers, iterations); err != nil {
		return fmt.Errorf("bump: %w", err)
	}

	if err := benchPool(workers, iterations); err != nil {
		return fmt.Errorf("pool: %w", err)
	}

	if err := benchStack(workers, iterations); err != nil {
		return fmt.Errorf("stack: %w", err)
	}

	return nil
}

func benchBump(workers, iterations int) error {
	arena, err := allocator.NewBumpAllocator(
		allocator.WithBumpCapacity(uintptr(workers*iterations)*64),
		allocator.WithBumpThreadSafe(true),
	)
	if err != nil {
		return err
	}

	layout := allocator.MustLayout(64, 8)
	start := time.Now()

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < iterations; i++ {
				if _, err := arena.Allocate(layout); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	report("bump", arena.Snapshot(), time.Since(start))

	return nil
}

func benchPool(workers, iterations int) error {
	pool, err := allocator.NewPoolAllocator(
		allocator.WithPoolBlockLayout(allocator.Layout{Size: 64, Align: 8}),
		allocator.WithPoolBlockCount(uintptr(workers*4)),
		allocator.WithPoolGrowable(true),
		allocator.WithPoolThreadSafe(true),
	)
	if err != nil {
		return err
	}

	layout := allocator.Layout{Size: 64, Align: 8}
	start := time.Now()

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < iterations; i++ {
				ptr, err := pool.Allocate(layout)
				if err != nil {
					return err
				}
				if err := pool.Deallocate(ptr, layout); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	report("pool", pool.Snapshot(), time.Since(start))

	return nil
}

func benchStack(workers, iterations int) error {
	start := time.Now()

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			stack, err := allocator.NewStackAllocator(
				allocator.WithStackCapacity(uintptr(iterations)*64),
				allocator.WithStackThreadSafe(false),
			)
			if err != nil {
				return err
			}

			layout := allocator.MustLayout(64, 8)
			for i := 0; i < iterations; i++ {
				scope := allocator.NewStackScope(stack)
				if _, err := stack.Allocate(layout); err != nil {
					return err
				}
				if err := scope.Close(); err != nil {
					return err
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "stack: %d workers x %d iterations in %s\n", workers, iterations, time.Since(start))

	return nil
}

func report(name string, snap allocator.AllocatorState, elapsed time.Duration) {
	fmt.Fprintf(os.Stdout, "%s: used=%d available=%d capacity=%d allocs=%d peak=%d elapsed=%s\n",
		name, snap.Used, snap.Available, snap.Capacity, snap.AllocCount, snap.PeakUsage, elapsed)
}
