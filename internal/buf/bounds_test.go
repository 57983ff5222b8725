package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestAddU64(t *testing.T) {
	if sum, ok := AddU64(0x10000, 0x1000); !ok || sum != 0x11000 {
		t.Fatalf("AddU64 = 0x%x,%v want 0x11000,true", sum, ok)
	}
	if _, ok := AddU64(math.MaxUint64, 1); ok {
		t.Fatalf("expected wrap to be reported")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}

	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
}

func TestSliceCapsCapacity(t *testing.T) {
	data := make([]byte, 16)
	got, ok := Slice(data, 4, 4)
	if !ok {
		t.Fatalf("Slice failed")
	}
	if cap(got) != 4 {
		t.Fatalf("cap = %d, want 4", cap(got))
	}
}
