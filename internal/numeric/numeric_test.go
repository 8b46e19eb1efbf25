package numeric_test

import (
	"testing"

	"github.com/blockdiff/deltasync/internal/numeric"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, tc := range []struct {
		x        uint32
		expected bool
	}{
		{1, true},
		{2, true},
		{4, true},
		{64, true},
		{1 << 20, true},
		{3, false},
		{6, false},
		{1000000007, false},
	} {
		if got := numeric.IsPowerOfTwo(tc.x); got != tc.expected {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", tc.x, got, tc.expected)
		}
	}
}

func TestModPow(t *testing.T) {
	for _, tc := range []struct {
		base, exp, m uint32
		expected     uint32
	}{
		{2, 10, 1000, 24},
		{5, 0, 97, 1},
		{10, 3, 1, 0},
	} {
		if got := numeric.ModPow(tc.base, tc.exp, tc.m); got != tc.expected {
			t.Errorf("ModPow(%d, %d, %d) = %d, want %d", tc.base, tc.exp, tc.m, got, tc.expected)
		}
	}
}

func TestModPowMatchesNaiveComputation(t *testing.T) {
	base, exp, m := uint32(3), uint32(15), uint32(1000)
	var naive uint64 = 1
	for i := uint32(0); i < exp; i++ {
		naive = (naive * uint64(base)) % uint64(m)
	}
	if got := numeric.ModPow(base, exp, m); got != uint32(naive) {
		t.Errorf("ModPow(%d, %d, %d) = %d, want %d", base, exp, m, got, naive)
	}
}

func intCompare(target int) func(int) int {
	return func(v int) int { return v - target }
}

func TestBinarySearch(t *testing.T) {
	sorted := []int{1, 3, 5, 7, 9, 11}

	if idx := numeric.BinarySearch(sorted, intCompare(7)); idx != 3 {
		t.Errorf("BinarySearch(7) = %d, want 3", idx)
	}
	if idx := numeric.BinarySearch(sorted, intCompare(4)); idx != -1 {
		t.Errorf("BinarySearch(4) = %d, want -1", idx)
	}
}

func TestLowerBound(t *testing.T) {
	sorted := []int{1, 3, 3, 3, 7, 9}

	if idx := numeric.LowerBound(sorted, intCompare(3)); idx != 1 {
		t.Errorf("LowerBound(3) = %d, want 1", idx)
	}
	if idx := numeric.LowerBound(sorted, intCompare(10)); idx != len(sorted) {
		t.Errorf("LowerBound(10) = %d, want %d", idx, len(sorted))
	}
}

func TestUpperBound(t *testing.T) {
	sorted := []int{1, 3, 3, 3, 7, 9}

	if idx := numeric.UpperBound(sorted, intCompare(3)); idx != 4 {
		t.Errorf("UpperBound(3) = %d, want 4", idx)
	}
	if idx := numeric.UpperBound(sorted, intCompare(0)); idx != 0 {
		t.Errorf("UpperBound(0) = %d, want 0", idx)
	}
}
