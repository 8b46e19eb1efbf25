package chunker

import "encoding/hex"

// Chunk is one content-defined region of a stream: everything from the
// previous chunk's End (or 0, for the first chunk) up to End, fingerprinted
// by Digest.
//
// Within a chunk list produced by a single Slicer, chunks are strictly
// increasing: chunks[i].End > chunks[i-1].End, chunks[0].End > 0, and the
// last chunk's End equals the total length of the stream that was fed to
// the Slicer. The one exception is a Slicer fed no bytes at all, whose list
// is a single chunk with End 0 (see Slicer.Finalize).
type Chunk struct {
	Digest []byte
	End    uint64
}

// Str returns the first 8 hex characters of the digest, for compact debug
// logging (see internal/debug.Shortener).
func (c Chunk) Str() string {
	s := hex.EncodeToString(c.Digest)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
