// Package deltafmt serializes a delta.Segment list to a compact, portable
// wire format: a small header followed by zstd-compressed, newline-delimited
// records. It exists purely for the command-line tool's optional delta
// file output -- the core pipeline itself has no wire format (see
// delta.Segment).
package deltafmt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/blockdiff/deltasync/delta"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// magic identifies a deltafmt stream; version allows the record layout to
// change without breaking older readers silently.
const (
	magic   uint32 = 0x44454c54 // "DELT"
	version uint8  = 1
)

// Write encodes segments to w as a zstd-compressed stream.
func Write(w io.Writer, segments []delta.Segment) error {
	if err := binary.Write(w, binary.LittleEndian, magic); err != nil {
		return errors.Wrap(err, "write magic")
	}
	if _, err := w.Write([]byte{version}); err != nil {
		return errors.Wrap(err, "write version")
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return errors.Wrap(err, "create zstd writer")
	}
	defer enc.Close()

	bw := bufio.NewWriter(enc)
	for _, seg := range segments {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", seg.Kind, seg.Range.Start, seg.Range.End); err != nil {
			return errors.Wrap(err, "write segment record")
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flush segment records")
	}

	return nil
}

// Read decodes a segment list previously written by Write.
func Read(r io.Reader) ([]delta.Segment, error) {
	var gotMagic uint32
	if err := binary.Read(r, binary.LittleEndian, &gotMagic); err != nil {
		return nil, errors.Wrap(err, "read magic")
	}
	if gotMagic != magic {
		return nil, errors.Errorf("not a deltafmt stream (bad magic %#x)", gotMagic)
	}

	verBuf := make([]byte, 1)
	if _, err := io.ReadFull(r, verBuf); err != nil {
		return nil, errors.Wrap(err, "read version")
	}
	if verBuf[0] != version {
		return nil, errors.Errorf("unsupported deltafmt version %d", verBuf[0])
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "create zstd reader")
	}
	defer dec.Close()

	var segments []delta.Segment
	sc := bufio.NewScanner(dec)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}

		var kind delta.Kind
		var start, end uint64
		if _, err := fmt.Sscanf(line, "%d %d %d", &kind, &start, &end); err != nil {
			return nil, errors.Wrapf(err, "parse segment record %q", line)
		}
		segments = append(segments, delta.Segment{Kind: kind, Range: delta.Range{Start: start, End: end}})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan segment records")
	}

	return segments, nil
}
