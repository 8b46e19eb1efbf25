// Package patch reconstructs a new file from an old file and a segment
// list, by seeking into whichever source a segment names and copying its
// range verbatim. It exists for local testing and as a reference consumer
// of a delta.Segment list -- not part of the core pipeline.
package patch

import (
	"io"
	"os"

	"github.com/blockdiff/deltasync/delta"
	"github.com/pkg/errors"
)

// Patch writes patchedPath from oldPath and newPath by following segments
// in order, reading each Old range from oldPath and each New range from
// newPath. It returns how many bytes were drawn from each source; their
// sum is the size of the patched output.
func Patch(oldPath, newPath, patchedPath string, segments []delta.Segment) (oldBytesUsed, newBytesUsed int64, err error) {
	oldFile, err := os.Open(oldPath)
	if err != nil {
		return 0, 0, errors.Wrap(err, "open old file")
	}
	defer oldFile.Close()

	newFile, err := os.Open(newPath)
	if err != nil {
		return 0, 0, errors.Wrap(err, "open new file")
	}
	defer newFile.Close()

	patchedFile, err := os.OpenFile(patchedPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, 0, errors.Wrap(err, "create patched file")
	}
	defer patchedFile.Close()

	for _, seg := range segments {
		var source *os.File
		switch seg.Kind {
		case delta.Old:
			source = oldFile
			oldBytesUsed += int64(seg.Range.Len())
		case delta.New:
			source = newFile
			newBytesUsed += int64(seg.Range.Len())
		}

		if err := copyRange(patchedFile, source, seg.Range); err != nil {
			return 0, 0, errors.Wrapf(err, "copy %s range", seg.Kind)
		}
	}

	if err := patchedFile.Sync(); err != nil {
		return 0, 0, errors.Wrap(err, "flush patched file")
	}

	return oldBytesUsed, newBytesUsed, nil
}

func copyRange(dst io.Writer, src *os.File, r delta.Range) error {
	buf := make([]byte, r.Len())
	if _, err := src.Seek(int64(r.Start), io.SeekStart); err != nil {
		return err
	}
	if _, err := io.ReadFull(src, buf); err != nil {
		return err
	}
	n, err := dst.Write(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return io.ErrShortWrite
	}
	return nil
}
