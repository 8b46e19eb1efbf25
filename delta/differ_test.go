package delta_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockdiff/deltasync/delta"
)

func testOptions() delta.Options {
	opts := delta.DefaultOptions()
	opts.WindowSize = 8
	opts.MinChunkSize = 8
	opts.MaxChunkSize = 32
	opts.BoundaryMask = 0x0F
	return opts
}

// apply reconstructs new from the segment list by reading Old ranges from
// old and New ranges from new -- exactly what a patcher does.
func apply(segments []delta.Segment, old, new_ []byte) []byte {
	var out []byte
	for _, s := range segments {
		switch s.Kind {
		case delta.Old:
			out = append(out, old[s.Range.Start:s.Range.End]...)
		case delta.New:
			out = append(out, new_[s.Range.Start:s.Range.End]...)
		}
	}
	return out
}

func TestDiffRoundTripsRealText(t *testing.T) {
	old := []byte("What a a year in the blockchain sphere. It's also been quite a year for Equilibrium and I thought I'd recap everything that has happened in the company.")
	new_ := []byte("It's been a year in the blockchain sphere. It's also been quite a year for Equilibrium. I thought I'd recap everything that has happened in the company with a Year In Review post.")

	segments, err := delta.Diff(old, new_, testOptions())
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}

	got := apply(segments, old, new_)
	if string(got) != string(new_) {
		t.Fatalf("round-trip mismatch:\ngot  %q\nwant %q", got, new_)
	}
}

func TestDiffIsShiftInsensitive(t *testing.T) {
	old := []byte("the quick brown fox jumps over the lazy dog repeatedly for a good while")
	prefix := []byte("hi ")
	new_ := append(append([]byte{}, prefix...), old...)

	segments, err := delta.Diff(old, new_, testOptions())
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}

	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2: %v", len(segments), segments)
	}
	if segments[1].Kind != delta.Old || segments[1].Range != (delta.Range{Start: 0, End: uint64(len(old))}) {
		t.Errorf("segments[1] = %v, want Old(0..%d)", segments[1], len(old))
	}

	got := apply(segments, old, new_)
	if string(got) != string(new_) {
		t.Fatalf("round-trip mismatch:\ngot  %q\nwant %q", got, new_)
	}
}

func TestDiffIdentityYieldsSingleOldSegment(t *testing.T) {
	x := []byte("a blockchain is a growing list of records linked using cryptographic hashes")

	segments, err := delta.Diff(x, x, testOptions())
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}

	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1: %v", len(segments), segments)
	}
	want := delta.Segment{Kind: delta.Old, Range: delta.Range{Start: 0, End: uint64(len(x))}}
	if segments[0] != want {
		t.Errorf("segments[0] = %v, want %v", segments[0], want)
	}
}

func TestDifferRejectsCallsAfterFinalize(t *testing.T) {
	d, err := delta.NewDiffer(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := d.ProcessOld([]byte("old content")); err != nil {
		t.Fatal(err)
	}
	if err := d.ProcessNew([]byte("new content")); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Finalize(); err != nil {
		t.Fatal(err)
	}

	if err := d.ProcessOld([]byte("x")); err == nil {
		t.Error("expected error from ProcessOld after Finalize")
	}
	if err := d.ProcessNew([]byte("x")); err == nil {
		t.Error("expected error from ProcessNew after Finalize")
	}
	if _, err := d.Finalize(); err == nil {
		t.Error("expected error from second Finalize")
	}
}

func TestDifferInterleavedProcessCalls(t *testing.T) {
	d, err := delta.NewDiffer(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	old := []byte("It's been a year in the blockchain sphere, quite a year indeed for everyone involved")
	new_ := []byte("It's been a year in the blockchain sphere, quite a year indeed for everyone involved here")

	if err := d.ProcessNew(new_[:20]); err != nil {
		t.Fatal(err)
	}
	if err := d.ProcessOld(old); err != nil {
		t.Fatal(err)
	}
	if err := d.ProcessNew(new_[20:]); err != nil {
		t.Fatal(err)
	}

	segments, err := d.Finalize()
	if err != nil {
		t.Fatal(err)
	}

	got := apply(segments, old, new_)
	if string(got) != string(new_) {
		t.Fatalf("round-trip mismatch:\ngot  %q\nwant %q", got, new_)
	}
}

func TestDiffRejectsInvalidOptions(t *testing.T) {
	opts := testOptions()
	opts.MaxChunkSize = 1
	if _, err := delta.Diff([]byte("a"), []byte("b"), opts); err == nil {
		t.Fatal("expected error for invalid options")
	}
}

func TestDiffConcurrentMatchesDiff(t *testing.T) {
	old := []byte("What a a year in the blockchain sphere. It's also been quite a year for Equilibrium and I thought I'd recap everything that has happened in the company.")
	new_ := []byte("It's been a year in the blockchain sphere. It's also been quite a year for Equilibrium. I thought I'd recap everything that has happened in the company with a Year In Review post.")

	want, err := delta.Diff(old, new_, testOptions())
	require.NoError(t, err)

	got, err := delta.DiffConcurrent(old, new_, testOptions())
	require.NoError(t, err)

	require.Equal(t, want, got)
	require.Equal(t, string(new_), string(apply(got, old, new_)))
}
