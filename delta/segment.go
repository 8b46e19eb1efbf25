// Package delta turns two chunk lists and their longest common subsequence
// into an ordered list of segments that, concatenated, reproduce the new
// byte stream -- reading Old segments from the old stream and New segments
// from the new one.
package delta

import "fmt"

// Range is a half-open [Start, End) byte interval.
type Range struct {
	Start uint64
	End   uint64
}

// Len returns the number of bytes the range covers.
func (r Range) Len() uint64 {
	return r.End - r.Start
}

// Kind tags which stream a Segment's Range refers to.
type Kind int

const (
	// Old means Range is an interval into the old stream.
	Old Kind = iota
	// New means Range is an interval into the new stream.
	New
)

func (k Kind) String() string {
	switch k {
	case Old:
		return "OLD"
	case New:
		return "NEW"
	default:
		return "UNKNOWN"
	}
}

// Segment is one unit of the delta: a tagged byte range, read from the old
// stream for Kind == Old or from the new stream for Kind == New.
//
// Concatenating the segments of a delta, in order, reproduces the entire
// new stream byte for byte. New segments form an increasing,
// non-overlapping cover of (a subset of) the new stream; Old segments are
// independently increasing over the old stream. No two New segments are
// adjacent, and a run of shared chunks that is contiguous in both streams
// becomes a single Old segment; two Old segments are adjacent only when the
// old chunks between them are absent from new, so their ranges do not touch.
type Segment struct {
	Kind  Kind
	Range Range
}

func (s Segment) String() string {
	return fmt.Sprintf("%s[%d..%d)", s.Kind, s.Range.Start, s.Range.End)
}
