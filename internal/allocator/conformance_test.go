package allocator

import "testing"

// conformanceCase names an Allocator constructor along with the layout it
// should be exercised with, so the same invariant table runs against every
// allocator family.
type conformanceCase struct {
	name    string
	build   func() (Allocator, error)
	layout  Layout
}

func conformanceCases(t *testing.T) []conformanceCase {
	t.Helper()

	return []conformanceCase{
		{
			name:   "bump",
			layout: MustLayout(32, 8),
			build: func() (Allocator, error) {
				return NewBumpAllocator(WithBumpCapacity(4096))
			},
		},
		{
			name:   "pool",
			layout: Layout{Size: 32, Align: 8},
			build: func() (Allocator, error) {
				return NewPoolAllocator(
					WithPoolBlockLayout(Layout{Size: 32, Align: 8}),
					WithPoolBlockCount(128),
				)
			},
		},
		{
			name:   "stack",
			layout: MustLayout(32, 8),
			build: func() (Allocator, error) {
				return NewStackAllocator(WithStackCapacity(4096))
			},
		},
	}
}

func TestConformanceAllocateNeverReturnsNilWithoutError(t *testing.T) {
	for _, c := range conformanceCases(t) {
		t.Run(c.name, func(t *testing.T) {
			a, err := c.build()
			if err != nil {
				t.Fatal(err)
			}

			ptr, err := a.Allocate(c.layout)
			if err != nil {
				t.Fatalf("Allocate: %v", err)
			}

			if ptr == nil {
				t.Fatal("Allocate returned nil pointer with no error")
			}
		})
	}
}

func TestConformanceUsedMatchesAllocatedBytes(t *testing.T) {
	for _, c := range conformanceCases(t) {
		t.Run(c.name, func(t *testing.T) {
			a, err := c.build()
			if err != nil {
				t.Fatal(err)
			}

			const n = 5
			for i := 0; i < n; i++ {
				if _, err := a.Allocate(c.layout); err != nil {
					t.Fatalf("allocate %d: %v", i, err)
				}
			}

			want := c.layout.Size * n
			if got := a.Used(); got != want {
				t.Errorf("Used() = %d, want %d", got, want)
			}
		})
	}
}

func TestConformanceAvailablePlusUsedEqualsCapacity(t *testing.T) {
	for _, c := range conformanceCases(t) {
		t.Run(c.name, func(t *testing.T) {
			a, err := c.build()
			if err != nil {
				t.Fatal(err)
			}

			if _, err := a.Allocate(c.layout); err != nil {
				t.Fatal(err)
			}

			if got := a.Used() + a.Available(); got != a.Capacity() {
				t.Errorf("Used()+Available() = %d, want Capacity() = %d", got, a.Capacity())
			}
		})
	}
}

func TestConformanceResetReclaimsSpace(t *testing.T) {
	for _, c := range conformanceCases(t) {
		t.Run(c.name, func(t *testing.T) {
			a, err := c.build()
			if err != nil {
				t.Fatal(err)
			}

			r, ok := a.(Resettable)
			if !ok {
				t.Fatalf("%s allocator does not implement Resettable", c.name)
			}

			if _, err := a.Allocate(c.layout); err != nil {
				t.Fatal(err)
			}

			if err := r.Reset(); err != nil {
				t.Fatal(err)
			}

			if got := a.Used(); got != 0 {
				t.Errorf("Used() after Reset = %d, want 0", got)
			}

			if _, err := a.Allocate(c.layout); err != nil {
				t.Fatalf("allocate after reset: %v", err)
			}
		})
	}
}

func TestConformanceSnapshotReflectsAllocCount(t *testing.T) {
	for _, c := range conformanceCases(t) {
		t.Run(c.name, func(t *testing.T) {
			a, err := c.build()
			if err != nil {
				t.Fatal(err)
			}

			const n = 3
			for i := 0; i < n; i++ {
				if _, err := a.Allocate(c.layout); err != nil {
					t.Fatal(err)
				}
			}

			snap := a.Snapshot()
			if snap.AllocCount != n {
				t.Errorf("Snapshot().AllocCount = %d, want %d", snap.AllocCount, n)
			}
		})
	}
}
