package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockdiff/deltasync/deltafmt"
	"github.com/blockdiff/deltasync/internal/errors"
	"github.com/blockdiff/deltasync/patch"
)

func init() {
	cmdRoot.AddCommand(cmdPatch)
}

var cmdPatch = &cobra.Command{
	Use:   "patch old new delta patched",
	Short: "Apply a previously computed delta to reconstruct patched",
	Long: `
The patch command reads a segment list from delta (as written by diff)
and reconstructs patched by reading each Old segment from old and each
New segment from new.
`,
	Args: cobra.ExactArgs(4),
	RunE: func(_ *cobra.Command, args []string) error {
		return runPatch(globalOptions, args[0], args[1], args[2], args[3])
	},
}

func runPatch(gopts GlobalOptions, oldPath, newPath, deltaPath, patchedPath string) error {
	in, err := os.Open(deltaPath)
	if err != nil {
		return errors.Fatalf("opening delta file: %v", err)
	}
	defer in.Close()

	segments, err := deltafmt.Read(in)
	if err != nil {
		return err
	}

	oldUsed, newUsed, err := patch.Patch(oldPath, newPath, patchedPath, segments)
	if err != nil {
		return err
	}

	if !gopts.Quiet {
		fmt.Fprintf(gopts.stdout, "wrote %s: %d bytes from old, %d bytes from new\n", patchedPath, oldUsed, newUsed)
	}

	return nil
}
