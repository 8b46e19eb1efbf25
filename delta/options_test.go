package delta_test

import (
	"testing"

	"github.com/blockdiff/deltasync/delta"
)

func TestDefaultOptionsValidate(t *testing.T) {
	if err := delta.DefaultOptions().Validate(); err != nil {
		t.Fatalf("default options should validate, got %v", err)
	}
}

func TestOptionsRejectsNonPowerOfTwoWindow(t *testing.T) {
	opts := delta.DefaultOptions()
	opts.WindowSize = 100
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for non-power-of-two window_size")
	}
}

func TestOptionsRejectsMinBelowWindow(t *testing.T) {
	opts := delta.DefaultOptions()
	opts.WindowSize = 64
	opts.MinChunkSize = 32
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for min_chunk_size below window_size")
	}
}

func TestOptionsRejectsMaxBelowMin(t *testing.T) {
	opts := delta.DefaultOptions()
	opts.MinChunkSize = 4096
	opts.MaxChunkSize = 1024
	if err := opts.Validate(); err == nil {
		t.Fatal("expected error for max_chunk_size below min_chunk_size")
	}
}
