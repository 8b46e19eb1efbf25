package delta

import (
	"github.com/blockdiff/deltasync/chunker"
	"github.com/blockdiff/deltasync/internal/numeric"
)

// DigestAlgorithm selects the chunk fingerprint implementation a Differ or
// Diff call wires into its Slicers.
type DigestAlgorithm int

const (
	// SHA256 uses the standard library's crypto/sha256.
	SHA256 DigestAlgorithm = iota
	// SHA256SIMD uses minio/sha256-simd, a drop-in AVX2/SHA-NI accelerated
	// implementation of the same digest.
	SHA256SIMD
	// BLAKE3 uses zeebo/blake3.
	BLAKE3
	// XXHash uses cespare/xxhash/v2. Not collision-resistant; intended for
	// tests and trusted-input scenarios only.
	XXHash
)

func (a DigestAlgorithm) newDigester() chunker.Digester {
	switch a {
	case SHA256SIMD:
		return chunker.NewSIMDSHA256Digester()
	case BLAKE3:
		return chunker.NewBLAKE3Digester()
	case XXHash:
		return chunker.NewXXHashDigester()
	default:
		return chunker.NewSHA256Digester()
	}
}

// Default option values. WindowSize intentionally does not reuse the
// modulus default (1,000,000,007) some reference prototypes reused for it
// by mistake -- the window is a small power of two.
const (
	DefaultWindowSize    = 64
	DefaultMinChunkSize  = 4096
	DefaultMaxChunkSize  = 16384
	DefaultBoundaryMask  = (1 << 12) - 1
	DefaultModulus       = chunker.DefaultModulus
	DefaultBase          = chunker.DefaultBase
	DefaultDigest        = SHA256
)

// Options configures a Differ or a one-shot Diff call.
type Options struct {
	WindowSize    uint32
	MinChunkSize  uint64
	MaxChunkSize  uint64
	BoundaryMask  uint32
	Modulus       uint32
	Base          uint32
	DigestAlgo    DigestAlgorithm
}

// DefaultOptions returns an Options populated with the documented defaults.
func DefaultOptions() Options {
	return Options{
		WindowSize:   DefaultWindowSize,
		MinChunkSize: DefaultMinChunkSize,
		MaxChunkSize: DefaultMaxChunkSize,
		BoundaryMask: DefaultBoundaryMask,
		Modulus:      DefaultModulus,
		Base:         DefaultBase,
		DigestAlgo:   DefaultDigest,
	}
}

// Validate checks the invariants the core requires at construction time.
// A violation is a programmer error (InvalidConfig), not a transient
// condition.
func (o Options) Validate() error {
	if o.WindowSize == 0 || !numeric.IsPowerOfTwo(o.WindowSize) {
		return errInvalidConfig("window_size %d is not a power of two", o.WindowSize)
	}
	if o.MinChunkSize < uint64(o.WindowSize) {
		return errInvalidConfig("min_chunk_size %d is below window_size %d", o.MinChunkSize, o.WindowSize)
	}
	if o.MaxChunkSize < o.MinChunkSize {
		return errInvalidConfig("max_chunk_size %d is below min_chunk_size %d", o.MaxChunkSize, o.MinChunkSize)
	}
	return nil
}

func (o Options) newSlicer() (*chunker.Slicer, error) {
	rh, err := chunker.NewPolynomialRollingHasher(o.WindowSize, o.Modulus, o.Base)
	if err != nil {
		return nil, err
	}
	return chunker.NewSlicer(rh, o.DigestAlgo.newDigester(), o.BoundaryMask, o.MinChunkSize, o.MaxChunkSize)
}
