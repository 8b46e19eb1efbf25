package chunker

import (
	"github.com/blockdiff/deltasync/internal/numeric"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/xerrors"
)

// Default parameters for the polynomial rolling hasher. DefaultWindowSize
// is deliberately small: an earlier prototype in this lineage reused the
// modulus default (1,000,000,007) as the window size by copy-paste, which
// would allocate a gigabyte circular buffer per Slicer. The window only
// needs to be small enough that a single chunk's minimum content fully
// overwrites it before a boundary can be declared (see NewSlicer's
// min-chunk-size check).
const (
	DefaultWindowSize = 64
	DefaultModulus    = 1000000007
	DefaultBase       = 29791
)

// RollingHasher maintains a hash over the last WindowSize bytes pushed to
// it, updatable in O(1) per byte. It is never reset between chunks: Slicer
// relies on the window being overwritten by fresh content as the stream
// progresses (see NewSlicer).
type RollingHasher interface {
	Push(b byte) uint32
	WindowSize() int
}

// polynomialTable holds the one value that's expensive enough to precompute
// and cache across hasher instances sharing the same (window, modulus,
// base): B^(window-1) mod modulus.
type polynomialTable struct {
	maxPow uint64
}

type polynomialTableKey struct {
	windowSize uint32
	modulus    uint32
	base       uint32
}

// tableCache replaces the teacher chunker's raw map+sync.Mutex table cache
// (chunker.go's package-level `cache`) with a bounded LRU: a long-running
// process that diffs many (window, modulus, base) combinations should not
// grow this cache without bound.
var tableCache = newTableCacheMust(256)

func newTableCacheMust(size int) *lru.Cache[polynomialTableKey, *polynomialTable] {
	c, err := lru.New[polynomialTableKey, *polynomialTable](size)
	if err != nil {
		// Only returns an error for size <= 0, which newTableCacheMust never
		// passes; a panic here would be a programmer error in this file.
		panic(err)
	}
	return c
}

func getPolynomialTable(windowSize, modulus, base uint32) *polynomialTable {
	key := polynomialTableKey{windowSize: windowSize, modulus: modulus, base: base}
	if t, ok := tableCache.Get(key); ok {
		return t
	}

	t := &polynomialTable{
		maxPow: uint64(numeric.ModPow(base, windowSize-1, modulus)),
	}
	tableCache.Add(key, t)
	return t
}

// PolynomialRollingHasher implements the Rabin-Karp-style polynomial
// rolling hash from spec §4.1:
//
//	H(x0..x(W-1)) = (sum_i x_i * B^(W-1-i)) mod M
//
// maintained incrementally over a circular buffer of the last W bytes.
type PolynomialRollingHasher struct {
	modulus uint64
	base    uint64
	hash    uint64
	buffer  []byte
	tap     int
	mask    int
	maxPow  uint64
}

// NewPolynomialRollingHasher constructs a hasher over a window of
// windowSize bytes (must be a power of two), using modulus and base for the
// polynomial. Passing 0 for either selects DefaultModulus/DefaultBase.
func NewPolynomialRollingHasher(windowSize, modulus, base uint32) (*PolynomialRollingHasher, error) {
	if windowSize == 0 || !numeric.IsPowerOfTwo(windowSize) {
		return nil, xerrors.Errorf("chunker: window size %d is not a power of two", windowSize)
	}
	if modulus == 0 {
		modulus = DefaultModulus
	}
	if base == 0 {
		base = DefaultBase
	}

	table := getPolynomialTable(windowSize, modulus, base)

	return &PolynomialRollingHasher{
		modulus: uint64(modulus),
		base:    uint64(base),
		buffer:  make([]byte, windowSize),
		mask:    int(windowSize - 1),
		maxPow:  table.maxPow,
	}, nil
}

// Push feeds byte b into the sliding window and returns the updated hash.
//
// The "+ modulus - ..." shape avoids underflow in unsigned 64-bit
// arithmetic: byteExiting is itself already reduced mod modulus, so
// subtracting it directly from h could wrap around.
func (h *PolynomialRollingHasher) Push(b byte) uint32 {
	byteEntering := uint64(b)
	byteExiting := (uint64(h.buffer[h.tap]) * h.maxPow) % h.modulus

	h.hash = ((h.hash + h.modulus - byteExiting) * h.base + byteEntering) % h.modulus

	h.buffer[h.tap] = b
	h.tap = (h.tap + 1) & h.mask

	return uint32(h.hash)
}

// WindowSize returns the size of the sliding window in bytes.
func (h *PolynomialRollingHasher) WindowSize() int {
	return len(h.buffer)
}

// MovingSumRollingHasher is the "acceptable optional variant" from spec
// §4.1: a moving sum computed with wrapping addition/subtraction modulo
// 2^32 instead of the polynomial update. Go's unsigned integer arithmetic
// wraps by definition, so the overflow handling spec calls out for the
// polynomial variant isn't needed here.
type MovingSumRollingHasher struct {
	hash   uint32
	buffer []byte
	tap    int
	mask   int
}

// NewMovingSumRollingHasher constructs a moving-sum hasher over a window of
// windowSize bytes, which must be a power of two.
func NewMovingSumRollingHasher(windowSize uint32) (*MovingSumRollingHasher, error) {
	if windowSize == 0 || !numeric.IsPowerOfTwo(windowSize) {
		return nil, xerrors.Errorf("chunker: window size %d is not a power of two", windowSize)
	}

	return &MovingSumRollingHasher{
		buffer: make([]byte, windowSize),
		mask:   int(windowSize - 1),
	}, nil
}

func (h *MovingSumRollingHasher) Push(b byte) uint32 {
	byteEntering := uint32(b)
	byteExiting := uint32(h.buffer[h.tap])

	h.hash = h.hash + byteEntering - byteExiting

	h.buffer[h.tap] = b
	h.tap = (h.tap + 1) & h.mask

	return h.hash
}

func (h *MovingSumRollingHasher) WindowSize() int {
	return len(h.buffer)
}
