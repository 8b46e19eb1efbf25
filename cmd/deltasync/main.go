package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/blockdiff/deltasync/internal/debug"
	"github.com/blockdiff/deltasync/internal/errors"
	"github.com/blockdiff/deltasync/internal/options"
)

func init() {
	// don't import `go.uber.org/automaxprocs` to disable the log output
	_, _ = maxprocs.Set()
}

// cmdRoot is the base command when no subcommand has been specified.
var cmdRoot = &cobra.Command{
	Use:   "deltasync",
	Short: "Compute and apply content-defined-chunking deltas",
	Long: `
deltasync computes a compact delta between an old and a new version of a
file using content-defined chunking, cryptographic fingerprinting and
longest-common-subsequence reconciliation, and can apply that delta to
reconstruct the new file from the old one plus the novel bytes.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		opts, err := options.Parse(globalOptions.Options)
		if err != nil {
			return err
		}
		globalOptions.extended = opts
		return nil
	},
}

func main() {
	debug.Log("main %#v", os.Args)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := cmdRoot.ExecuteContext(ctx)

	var exitCode int
	switch {
	case err == nil:
		exitCode = 0
	case errors.IsFatal(err):
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	case err != nil:
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		exitCode = 1
	}

	os.Exit(exitCode)
}
