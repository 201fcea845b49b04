package allocator_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vanyastaff/nebula-sub004/internal/allocator"
	"github.com/vanyastaff/nebula-sub004/internal/allocator/allocatormock"
)

func TestBumpAllocatorReportsToStatsSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := allocatormock.NewMockStatsSink(ctrl)

	sink.EXPECT().ObserveAllocate(uintptr(16)).Times(1)
	sink.EXPECT().ObserveReset().Times(1)

	arena, err := allocator.NewBumpAllocator(
		allocator.WithBumpCapacity(64),
		allocator.WithBumpStats(sink),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := arena.Allocate(allocator.MustLayout(16, 8)); err != nil {
		t.Fatal(err)
	}

	if err := arena.Reset(); err != nil {
		t.Fatal(err)
	}
}

func TestBatchingStatsSinkAggregatesAcrossGoroutines(t *testing.T) {
	sink := allocator.NewBatchingStatsSink(2)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			sink.ObserveAllocate(16)
			sink.ObserveAllocate(16)
			done <- struct{}{}
		}()
	}

	for i := 0; i < 8; i++ {
		<-done
	}

	allocCount, allocBytes, _, _ := sink.Aggregate()
	if allocCount != 16 {
		t.Errorf("allocCount = %d, want 16", allocCount)
	}

	if allocBytes != 256 {
		t.Errorf("allocBytes = %d, want 256", allocBytes)
	}
}
