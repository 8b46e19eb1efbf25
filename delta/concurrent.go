package delta

import "golang.org/x/sync/errgroup"

// DiffConcurrent is equivalent to Diff, but feeds the old and new streams
// to their Slicers from separate goroutines. The two Slicers share no
// state (each owns its own rolling hasher, digester, and chunk list), so
// this produces byte-identical output to Diff regardless of which side
// finishes first -- it only overlaps the CPU-bound chunking work.
func DiffConcurrent(old, new_ []byte, opts Options) ([]Segment, error) {
	d, err := NewDiffer(opts)
	if err != nil {
		return nil, err
	}

	var g errgroup.Group
	g.Go(func() error { return d.ProcessOld(old) })
	g.Go(func() error { return d.ProcessNew(new_) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return d.Finalize()
}
