package main

import (
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/blockdiff/deltasync/delta"
	"github.com/blockdiff/deltasync/internal/options"
)

// GlobalOptions hold the options shared by every subcommand.
type GlobalOptions struct {
	Quiet   bool
	Verbose int
	JSON    bool

	WindowSize   uint32
	MinChunkSize uint64
	MaxChunkSize uint64
	BoundaryMask uint32
	Digest       string

	Options []string

	stdout io.Writer
	stderr io.Writer

	extended options.Options
}

var globalOptions = GlobalOptions{
	stdout: os.Stdout,
	stderr: os.Stderr,
}

func init() {
	opts := delta.DefaultOptions()
	globalOptions.WindowSize = opts.WindowSize
	globalOptions.MinChunkSize = opts.MinChunkSize
	globalOptions.MaxChunkSize = opts.MaxChunkSize
	globalOptions.BoundaryMask = opts.BoundaryMask
	globalOptions.Digest = "sha256"

	f := cmdRoot.PersistentFlags()
	AddFlags(&globalOptions, f)
}

// AddFlags registers the global options onto a pflag.FlagSet, in the style
// of a root command's persistent flags.
func AddFlags(opts *GlobalOptions, f *pflag.FlagSet) {
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "do not print progress information")
	f.CountVarP(&opts.Verbose, "verbose", "v", "be verbose (specify multiple times for more)")
	f.BoolVar(&opts.JSON, "json", false, "print version information as JSON")

	f.Uint32Var(&opts.WindowSize, "window-size", opts.WindowSize, "rolling hash window size, must be a power of two")
	f.Uint64Var(&opts.MinChunkSize, "min-chunk-size", opts.MinChunkSize, "minimum chunk size in bytes")
	f.Uint64Var(&opts.MaxChunkSize, "max-chunk-size", opts.MaxChunkSize, "maximum chunk size in bytes")
	f.Uint32Var(&opts.BoundaryMask, "boundary-mask", opts.BoundaryMask, "rolling hash boundary mask")
	f.StringVar(&opts.Digest, "digest", opts.Digest, "chunk digest algorithm, one of (sha256|sha256-simd|blake3|xxhash)")

	f.StringSliceVarP(&opts.Options, "option", "o", nil, "set extended option (`key=value`, can be specified multiple times)")
}

// chunkerOptionNamespace is the `-o chunker.key=value` namespace applied onto
// chunkerOptions, the way restic applies `-o scheme.key=value` onto a
// backend's Config (see internal/backend/local.Config, applied through
// parseConfig's opts.Extract(loc.Scheme)/opts.Apply(loc.Scheme, cfg)).
const chunkerOptionNamespace = "chunker"

// chunkerOptions holds the chunker tunables that can be overridden with
// `-o chunker.key=value`, layered on top of the plain --digest/--window-size/
// etc. flags.
type chunkerOptions struct {
	Digest  string `option:"digest" help:"chunk digest algorithm, one of (sha256|sha256-simd|blake3|xxhash)"`
	Window  uint32 `option:"window" help:"rolling hash window size, must be a power of two"`
	Modulus uint32 `option:"modulus" help:"rolling hash polynomial modulus"`
	Base    uint32 `option:"base" help:"rolling hash polynomial base"`
}

// toDeltaOptions converts the CLI flags into a delta.Options, applying any
// `-o chunker.key=value` overrides on top of the flags, and validating the
// result eagerly so config mistakes are reported before any I/O happens.
func (g GlobalOptions) toDeltaOptions() (delta.Options, error) {
	chopts := chunkerOptions{
		Digest:  g.Digest,
		Window:  g.WindowSize,
		Modulus: delta.DefaultModulus,
		Base:    delta.DefaultBase,
	}
	if err := g.extended.Extract(chunkerOptionNamespace).Apply(chunkerOptionNamespace, &chopts); err != nil {
		return delta.Options{}, err
	}

	opts := delta.Options{
		WindowSize:   chopts.Window,
		MinChunkSize: g.MinChunkSize,
		MaxChunkSize: g.MaxChunkSize,
		BoundaryMask: g.BoundaryMask,
		Modulus:      chopts.Modulus,
		Base:         chopts.Base,
		DigestAlgo:   parseDigestAlgorithm(chopts.Digest),
	}
	if err := opts.Validate(); err != nil {
		return delta.Options{}, err
	}
	return opts, nil
}

func parseDigestAlgorithm(name string) delta.DigestAlgorithm {
	switch name {
	case "sha256-simd":
		return delta.SHA256SIMD
	case "blake3":
		return delta.BLAKE3
	case "xxhash":
		return delta.XXHash
	default:
		return delta.SHA256
	}
}
