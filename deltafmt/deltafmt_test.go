package deltafmt_test

import (
	"bytes"
	"testing"

	"github.com/blockdiff/deltasync/delta"
	"github.com/blockdiff/deltasync/deltafmt"
)

func TestWriteReadRoundTrip(t *testing.T) {
	segments := []delta.Segment{
		{Kind: delta.Old, Range: delta.Range{Start: 0, End: 4096}},
		{Kind: delta.New, Range: delta.Range{Start: 4096, End: 4200}},
		{Kind: delta.Old, Range: delta.Range{Start: 4096, End: 16384}},
	}

	var buf bytes.Buffer
	if err := deltafmt.Write(&buf, segments); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	got, err := deltafmt.Read(&buf)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	if len(got) != len(segments) {
		t.Fatalf("got %d segments, want %d", len(got), len(segments))
	}
	for i := range segments {
		if got[i] != segments[i] {
			t.Errorf("segment %d: got %v, want %v", i, got[i], segments[i])
		}
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, err := deltafmt.Read(bytes.NewReader([]byte("not a deltafmt stream at all")))
	if err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestWriteReadEmptySegments(t *testing.T) {
	var buf bytes.Buffer
	if err := deltafmt.Write(&buf, nil); err != nil {
		t.Fatal(err)
	}

	got, err := deltafmt.Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d segments, want 0", len(got))
	}
}
