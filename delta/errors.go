package delta

import "github.com/blockdiff/deltasync/internal/errors"

func errInvalidConfig(format string, args ...interface{}) error {
	return errors.Fatalf("invalid config: "+format, args...)
}

// ErrAlreadyFinalized is returned by Differ methods called after Finalize.
var ErrAlreadyFinalized = errors.Fatal("already finalized")
