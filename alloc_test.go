package vector

import (
	"testing"
)

func TestRoundUpPowerOfTwo(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, 0},
		{-1, 0},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{1000, 1024},
		{1024, 1024},
		{1025, 2048},
		{1<<20 + 1, 1 << 21},
	}

	for _, tt := range tests {
		result := roundUpPowerOfTwo(tt.input)
		if result != tt.expected {
			t.Errorf("roundUpPowerOfTwo(%d) = %d, want %d", tt.input, result, tt.expected)
		}
	}
}

func TestHeapAllocator(t *testing.T) {
	var alloc HeapAllocator[int]

	slots := alloc.Allocate(16)
	if len(slots) != 16 {
		t.Errorf("Allocate(16) length = %d, want 16", len(slots))
	}
	for i, s := range slots {
		if s != 0 {
			t.Errorf("slot %d not zeroed: %d", i, s)
		}
	}

	if alloc.Allocate(0) != nil {
		t.Error("Allocate(0) should return nil")
	}
	if alloc.Allocate(-1) != nil {
		t.Error("Allocate(-1) should return nil")
	}
}

func TestRawAllocator(t *testing.T) {
	var alloc RawAllocator[int64]

	slots := alloc.Allocate(8)
	if len(slots) != 8 {
		t.Fatalf("Allocate(8) length = %d, want 8", len(slots))
	}
	for i := range slots {
		if slots[i] != 0 {
			t.Errorf("slot %d not zeroed: %d", i, slots[i])
		}
		slots[i] = int64(i) * 7
	}
	for i := range slots {
		if slots[i] != int64(i)*7 {
			t.Errorf("slot %d: got %d, want %d", i, slots[i], int64(i)*7)
		}
	}

	if alloc.Allocate(0) != nil {
		t.Error("Allocate(0) should return nil")
	}
}

func TestRawAllocatorZeroSizeElem(t *testing.T) {
	var alloc RawAllocator[struct{}]
	slots := alloc.Allocate(4)
	if len(slots) != 4 {
		t.Errorf("Allocate(4) length = %d, want 4", len(slots))
	}
}
