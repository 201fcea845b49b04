package allocator

import (
	"strings"
	"testing"
)

func TestErrorCodeString(t *testing.T) {
	if got := ErrOutOfMemory.String(); got != "OutOfMemory" {
		t.Errorf("got %q", got)
	}

	if got := ErrorCode(99).String(); !strings.Contains(got, "Unknown") {
		t.Errorf("got %q, want Unknown(...)", got)
	}
}

func TestAllocErrorString(t *testing.T) {
	err := errOutOfMemory(Layout{Size: 16, Align: 8}, AllocatorState{Used: 8, Available: 0, Capacity: 8})

	s := err.Error()
	if !strings.Contains(s, "OutOfMemory") {
		t.Errorf("error string missing code: %q", s)
	}

	if !strings.Contains(s, "suggestion") {
		t.Errorf("error string missing suggestion: %q", s)
	}
}
