package delta

import (
	"github.com/blockdiff/deltasync/chunker"
	"github.com/blockdiff/deltasync/lcs"
)

// Differ owns one Slicer per stream and drives the LCS engine and
// reconciler once both streams have been fully fed. It is single-use:
// after Finalize, further calls return an AlreadyFinalized-style error.
//
// ProcessOld and ProcessNew may be called in any interleaving; each
// mutates only its own Slicer and only reads the shared finalized flag, so
// an enclosing orchestrator may run them concurrently from separate
// goroutines (as DiffConcurrent does). Neither may run concurrently with
// another call on the same side or with Finalize.
type Differ struct {
	slicerOld *chunker.Slicer
	slicerNew *chunker.Slicer
	finalized bool
}

// NewDiffer validates opts and constructs a Differ with one Slicer per
// stream, sharing the same rolling-hash and digest configuration.
func NewDiffer(opts Options) (*Differ, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	slicerOld, err := opts.newSlicer()
	if err != nil {
		return nil, err
	}
	slicerNew, err := opts.newSlicer()
	if err != nil {
		return nil, err
	}

	return &Differ{slicerOld: slicerOld, slicerNew: slicerNew}, nil
}

// ProcessOld feeds bytes into the old-stream Slicer.
func (d *Differ) ProcessOld(data []byte) error {
	if d.finalized {
		return ErrAlreadyFinalized
	}
	d.slicerOld.Process(data)
	return nil
}

// ProcessNew feeds bytes into the new-stream Slicer.
func (d *Differ) ProcessNew(data []byte) error {
	if d.finalized {
		return ErrAlreadyFinalized
	}
	d.slicerNew.Process(data)
	return nil
}

// Finalize closes both Slicers, computes the LCS of their chunk digests,
// and runs the reconciler, returning the segment list that reconstructs
// the new stream. The Differ is consumed: any later call returns
// AlreadyFinalized.
func (d *Differ) Finalize() ([]Segment, error) {
	if d.finalized {
		return nil, ErrAlreadyFinalized
	}
	d.finalized = true

	chunksOld := d.slicerOld.Finalize()
	chunksNew := d.slicerNew.Finalize()

	digestsOld := make([]string, len(chunksOld))
	for i, c := range chunksOld {
		digestsOld[i] = digestOf(c)
	}
	digestsNew := make([]string, len(chunksNew))
	for i, c := range chunksNew {
		digestsNew[i] = digestOf(c)
	}

	common := lcs.Nakatsu(digestsOld, digestsNew)

	return Reconcile(chunksOld, chunksNew, common), nil
}
