package chunker

import (
	"github.com/blockdiff/deltasync/internal/debug"
	"github.com/blockdiff/deltasync/internal/errors"
)

// Slicer drives a RollingHasher and a Digester over a streamed byte source,
// producing a content-defined chunk list. It is single-use: create a new
// Slicer for each stream.
//
// The boundary test, chunk close, digester push, and size increment happen
// in a specific order (see Process) that spec calls a contract rather than
// an implementation detail: the byte that triggers a boundary belongs to
// the next chunk, not the one being closed.
type Slicer struct {
	rollingHasher RollingHasher
	digester      Digester
	boundaryMask  uint32
	minChunkSize  uint64
	maxChunkSize  uint64

	currentChunkSize  uint64
	currentChunkStart uint64
	chunks            []Chunk
}

// NewSlicer constructs a Slicer. minChunkSize must be at least the rolling
// hasher's window size -- this is what lets the rolling hasher run without
// ever being reset between chunks while still keeping shift-insensitivity:
// by the time a boundary can be declared, the window has been completely
// overwritten with bytes from the current chunk. maxChunkSize must be at
// least minChunkSize.
func NewSlicer(rollingHasher RollingHasher, digester Digester, boundaryMask uint32, minChunkSize, maxChunkSize uint64) (*Slicer, error) {
	if minChunkSize < uint64(rollingHasher.WindowSize()) {
		return nil, errors.Fatalf("chunker: min_chunk_size (%d) must be >= rolling hasher window size (%d)", minChunkSize, rollingHasher.WindowSize())
	}
	if maxChunkSize < minChunkSize {
		return nil, errors.Fatalf("chunker: max_chunk_size (%d) must be >= min_chunk_size (%d)", maxChunkSize, minChunkSize)
	}

	return &Slicer{
		rollingHasher: rollingHasher,
		digester:      digester,
		boundaryMask:  boundaryMask,
		minChunkSize:  minChunkSize,
		maxChunkSize:  maxChunkSize,
	}, nil
}

// Process feeds the next slice of the stream through the slicer. It may be
// called any number of times with arbitrarily sized slices; chunk
// boundaries never depend on how the caller split the stream into calls.
func (s *Slicer) Process(data []byte) {
	for _, b := range data {
		h := s.rollingHasher.Push(b)

		atBoundary := s.currentChunkSize >= s.minChunkSize && (h&s.boundaryMask) == 0
		atCap := s.currentChunkSize == s.maxChunkSize
		if atBoundary || atCap {
			s.closeChunk()
		}

		// The byte that triggered the boundary above is pushed into the
		// digester (and counted) only after the close: it starts the next
		// chunk, it does not end the one just closed.
		s.digester.Push(b)
		s.currentChunkSize++
	}
}

// Finalize closes the trailing chunk unconditionally and returns the full
// chunk list. If the stream was entirely empty, this emits a single
// zero-length chunk holding the digest of the empty byte string; callers
// that can't tolerate that must short-circuit empty streams themselves.
func (s *Slicer) Finalize() []Chunk {
	s.closeChunk()
	return s.chunks
}

func (s *Slicer) closeChunk() {
	digest := s.digester.Finalize()
	end := s.currentChunkStart + s.currentChunkSize
	chunk := Chunk{Digest: digest, End: end}
	s.chunks = append(s.chunks, chunk)

	debug.Log("chunker: closed chunk [%d..%d) digest %s", s.currentChunkStart, end, chunk.Str())

	s.currentChunkStart = end
	s.currentChunkSize = 0
}
