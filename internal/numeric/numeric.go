// Package numeric collects small arithmetic and search helpers: the
// power-of-two check and modular exponentiation used by the rolling hasher
// and option validation, and a generic binary-search family (BinarySearch,
// LowerBound, UpperBound) that no other package in this module calls.
package numeric

// IsPowerOfTwo reports whether x is a power of two. Undefined for x == 0;
// callers must never invoke it with a zero window size.
func IsPowerOfTwo(x uint32) bool {
	return x&(x-1) == 0
}

// ModPow computes base^exp mod m iteratively in 64-bit precision, avoiding
// the overflow a naive base*base*...*base accumulation would hit for the
// moduli and window sizes the rolling hasher uses. Returns 0 when m == 1.
func ModPow(base, exp, m uint32) uint32 {
	if m == 1 {
		return 0
	}

	var result uint64 = 1
	b := uint64(base) % uint64(m)
	modulus := uint64(m)

	for i := uint32(0); i < exp; i++ {
		result = (result * b) % modulus
	}

	return uint32(result)
}

// BinarySearch returns the index of an item in sorted for which compare
// returns 0, or -1 if no such item exists. compare must follow the standard
// three-way convention: negative if the candidate sorts before the target,
// positive if after, zero on match. If the target appears multiple times,
// any one of the matching indices may be returned.
func BinarySearch[T any](sorted []T, compare func(T) int) int {
	low, high := 0, len(sorted)
	for low < high {
		mid := (low + high) / 2
		switch c := compare(sorted[mid]); {
		case c == 0:
			return mid
		case c < 0:
			low = mid + 1
		default:
			high = mid
		}
	}
	return -1
}

// LowerBound returns the smallest index i such that compare(sorted[i]) >= 0,
// or len(sorted) if no such index exists.
func LowerBound[T any](sorted []T, compare func(T) int) int {
	low, high := 0, len(sorted)
	for low < high {
		mid := (low + high) / 2
		if compare(sorted[mid]) < 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low
}

// UpperBound returns the smallest index i such that compare(sorted[i]) > 0,
// or len(sorted) if no such index exists.
func UpperBound[T any](sorted []T, compare func(T) int) int {
	low, high := 0, len(sorted)
	for low < high {
		mid := (low + high) / 2
		if compare(sorted[mid]) <= 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low
}
