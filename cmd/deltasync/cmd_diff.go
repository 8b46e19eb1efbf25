package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blockdiff/deltasync/delta"
	"github.com/blockdiff/deltasync/deltafmt"
	"github.com/blockdiff/deltasync/internal/errors"
)

func init() {
	cmdRoot.AddCommand(cmdDiff)
}

var cmdDiff = &cobra.Command{
	Use:   "diff old new delta",
	Short: "Compute a delta between old and new, writing it to delta",
	Long: `
The diff command reads old and new fully into memory concurrently, chunks
each with content-defined chunking, fingerprints the chunks, reconciles
their longest common subsequence into a segment list, and writes that
list to the delta file.
`,
	Args: cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		return runDiff(globalOptions, args[0], args[1], args[2])
	},
}

func runDiff(gopts GlobalOptions, oldPath, newPath, deltaPath string) error {
	opts, err := gopts.toDeltaOptions()
	if err != nil {
		return err
	}

	var old, new_ []byte
	var g errgroup.Group
	g.Go(func() error {
		var err error
		old, err = os.ReadFile(oldPath)
		if err != nil {
			return errors.Fatalf("reading old file: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		new_, err = os.ReadFile(newPath)
		if err != nil {
			return errors.Fatalf("reading new file: %v", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	segments, err := delta.DiffConcurrent(old, new_, opts)
	if err != nil {
		return err
	}

	out, err := os.Create(deltaPath)
	if err != nil {
		return errors.Fatalf("creating delta file: %v", err)
	}
	defer out.Close()

	if err := deltafmt.Write(out, segments); err != nil {
		return err
	}

	if !gopts.Quiet {
		var oldBytes, newBytes uint64
		for _, s := range segments {
			switch s.Kind {
			case delta.Old:
				oldBytes += s.Range.Len()
			case delta.New:
				newBytes += s.Range.Len()
			}
		}
		fmt.Fprintf(gopts.stdout, "%d segments: %d bytes from old, %d bytes novel\n", len(segments), oldBytes, newBytes)
	}

	return nil
}
