package allocator

import (
	"testing"
	"unsafe"
)

func TestBufferCellContainsAndOffset(t *testing.T) {
	cell, err := newBufferCell(256, BackingHeap)
	if err != nil {
		t.Fatal(err)
	}

	inside := cell.At(64)
	if !cell.Contains(inside) {
		t.Error("Contains() = false for in-bounds pointer")
	}

	if got := cell.Offset(inside); got != 64 {
		t.Errorf("Offset() = %d, want 64", got)
	}

	outside := cell.At(255)
	outsidePtr := unsafe.Add(outside, 10)
	if cell.Contains(outsidePtr) {
		t.Error("Contains() = true for out-of-bounds pointer")
	}
}

func TestBufferCellZero(t *testing.T) {
	cell, err := newBufferCell(16, BackingHeap)
	if err != nil {
		t.Fatal(err)
	}

	cell.buf[0] = 0xFF
	cell.Zero()

	for i, b := range cell.buf {
		if b != 0 {
			t.Fatalf("byte %d = %#x, want 0 after Zero()", i, b)
		}
	}
}

func TestBufferCellZeroSize(t *testing.T) {
	cell, err := newBufferCell(0, BackingHeap)
	if err != nil {
		t.Fatal(err)
	}

	if cell.Cap() != 0 {
		t.Errorf("Cap() = %d, want 0", cell.Cap())
	}
}
