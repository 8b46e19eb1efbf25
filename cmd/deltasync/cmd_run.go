package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockdiff/deltasync/delta"
	"github.com/blockdiff/deltasync/deltafmt"
	"github.com/blockdiff/deltasync/internal/errors"
	"github.com/blockdiff/deltasync/patch"
)

func init() {
	cmdRoot.AddCommand(cmdRun)
}

// cmdRun implements the one-shot "old new patched [delta]" surface: diff
// old against new in memory, write patched from the resulting segments,
// and optionally persist the segment list to delta.
var cmdRun = &cobra.Command{
	Use:   "run old new patched [delta]",
	Short: "Diff old against new and reconstruct patched in one step",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(_ *cobra.Command, args []string) error {
		deltaPath := ""
		if len(args) == 4 {
			deltaPath = args[3]
		}
		return runOneShot(globalOptions, args[0], args[1], args[2], deltaPath)
	},
}

func runOneShot(gopts GlobalOptions, oldPath, newPath, patchedPath, deltaPath string) error {
	opts, err := gopts.toDeltaOptions()
	if err != nil {
		return err
	}

	old, err := os.ReadFile(oldPath)
	if err != nil {
		return errors.Fatalf("reading old file: %v", err)
	}
	new_, err := os.ReadFile(newPath)
	if err != nil {
		return errors.Fatalf("reading new file: %v", err)
	}

	segments, err := delta.Diff(old, new_, opts)
	if err != nil {
		return err
	}

	if deltaPath != "" {
		out, err := os.Create(deltaPath)
		if err != nil {
			return errors.Fatalf("creating delta file: %v", err)
		}
		if err := deltafmt.Write(out, segments); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return errors.Fatalf("closing delta file: %v", err)
		}
	}

	oldUsed, newUsed, err := patch.Patch(oldPath, newPath, patchedPath, segments)
	if err != nil {
		return err
	}

	if !gopts.Quiet {
		fmt.Fprintf(gopts.stdout, "wrote %s: %d bytes from old, %d bytes from new (%d segments)\n",
			patchedPath, oldUsed, newUsed, len(segments))
	}

	return nil
}
