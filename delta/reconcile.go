package delta

import "github.com/blockdiff/deltasync/chunker"

// Reconcile walks the old and new chunk lists alongside their longest
// common subsequence (expressed as chunk digests, one per shared chunk in
// order) and produces the ordered segment list that reconstructs the new
// stream from Old and New ranges.
//
// lcs must be the digests shared by chunksOld and chunksNew, in the order
// Nakatsu's algorithm returns them; callers typically build it by running
// lcs.Nakatsu over the two chunk lists' digests (as comparable strings).
func Reconcile(chunksOld, chunksNew []chunker.Chunk, lcs []string) []Segment {
	if len(lcs) == 0 {
		if len(chunksNew) == 0 {
			return nil
		}
		lastEnd := chunksNew[len(chunksNew)-1].End
		return []Segment{{Kind: New, Range: Range{Start: 0, End: lastEnd}}}
	}

	segments := make([]Segment, 0, len(chunksNew))
	newPos, oldPos, lcsPos := 0, 0, 0
	lcsLen := len(lcs)
	commonDigest := lcs[lcsPos]

	for lcsPos < lcsLen {
		// Concatenate any New-only chunks preceding the next shared chunk.
		newSegmentStart := newPos
		for digestOf(chunksNew[newPos]) != commonDigest {
			newPos++
		}
		if newPos != newSegmentStart {
			start := uint64(0)
			if newSegmentStart != 0 {
				start = chunksNew[newSegmentStart-1].End
			}
			segments = append(segments, Segment{Kind: New, Range: Range{Start: start, End: chunksNew[newPos-1].End}})
		}

		// Skip the old-stream region this replaces.
		for digestOf(chunksOld[oldPos]) != commonDigest {
			oldPos++
		}

		// Concatenate the run of chunks shared verbatim between old and new.
		oldSegmentStart := oldPos
		for digestOf(chunksNew[newPos]) == commonDigest && digestOf(chunksOld[oldPos]) == commonDigest {
			newPos++
			oldPos++
			lcsPos++
			if lcsPos == lcsLen {
				break
			}
			commonDigest = lcs[lcsPos]
		}
		if oldPos != oldSegmentStart {
			start := uint64(0)
			if oldSegmentStart != 0 {
				start = chunksOld[oldSegmentStart-1].End
			}
			segments = append(segments, Segment{Kind: Old, Range: Range{Start: start, End: chunksOld[oldPos-1].End}})
		}
	}

	// Whatever New content remains after the last shared run.
	if newPos < len(chunksNew) {
		start := uint64(0)
		if newPos != 0 {
			start = chunksNew[newPos-1].End
		}
		segments = append(segments, Segment{Kind: New, Range: Range{Start: start, End: chunksNew[len(chunksNew)-1].End}})
	}

	return segments
}

func digestOf(c chunker.Chunk) string {
	return string(c.Digest)
}
