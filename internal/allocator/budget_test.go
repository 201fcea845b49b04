package allocator_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vanyastaff/nebula-sub004/internal/allocator"
	"github.com/vanyastaff/nebula-sub004/internal/allocator/allocatormock"
)

func TestBumpAllocatorRespectsBudgetTracker(t *testing.T) {
	ctrl := gomock.NewController(t)
	budget := allocatormock.NewMockBudgetTracker(ctrl)

	budget.EXPECT().Reserve(uintptr(16)).Return(false).Times(1)

	arena, err := allocator.NewBumpAllocator(
		allocator.WithBumpCapacity(64),
		allocator.WithBumpBudget(budget),
	)
	if err != nil {
		t.Fatal(err)
	}

	_, err = arena.Allocate(allocator.MustLayout(16, 8))
	if err == nil {
		t.Fatal("want ErrBudgetExceeded, got nil")
	}

	ae, ok := err.(*allocator.AllocError)
	if !ok || ae.Code != allocator.ErrBudgetExceeded {
		t.Errorf("got %v", err)
	}
}

func TestPoolAllocatorReleasesBudgetOnDeallocate(t *testing.T) {
	ctrl := gomock.NewController(t)
	budget := allocatormock.NewMockBudgetTracker(ctrl)

	layout := allocator.Layout{Size: 32, Align: 8}

	budget.EXPECT().Reserve(uintptr(32)).Return(true).Times(1)
	budget.EXPECT().Release(uintptr(32)).Times(1)

	pool, err := allocator.NewPoolAllocator(
		allocator.WithPoolBlockLayout(layout),
		allocator.WithPoolBlockCount(4),
		allocator.WithPoolBudget(budget),
	)
	if err != nil {
		t.Fatal(err)
	}

	p, err := pool.Allocate(layout)
	if err != nil {
		t.Fatal(err)
	}

	if err := pool.Deallocate(p, layout); err != nil {
		t.Fatal(err)
	}
}
