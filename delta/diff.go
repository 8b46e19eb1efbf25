package delta

// Diff computes the segment list that reconstructs new from old and
// novel bytes, in one shot, over in-memory byte slices. It is equivalent
// to constructing a Differ, pushing each slice once to its respective
// side, and calling Finalize.
func Diff(old, new_ []byte, opts Options) ([]Segment, error) {
	d, err := NewDiffer(opts)
	if err != nil {
		return nil, err
	}
	if err := d.ProcessOld(old); err != nil {
		return nil, err
	}
	if err := d.ProcessNew(new_); err != nil {
		return nil, err
	}
	return d.Finalize()
}
