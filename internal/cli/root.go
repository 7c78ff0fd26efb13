package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/seqgen/internal/sequence"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// SeqOptions holds the formatting flags for the root command.
type SeqOptions struct {
	*RootOptions
	Separator  string
	Terminator string
	EqualWidth bool
	Format     string
}

// NewRootCommand creates the root command for the seqgen CLI. The root
// command itself runs the generator; batch and validate are
// subcommands.
func NewRootCommand() *cobra.Command {
	rootOpts := &RootOptions{}
	opts := &SeqOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seqgen [flags] [first [increment]] last",
		Short: "Print sequences of numbers",
		Long: `Print a sequence of numbers from first to last, in steps of increment.

Values are high-precision decimals, so fractional steps like 0.1 do not
drift. With one argument, first and increment default to 1; with two,
increment defaults to 1. A negative increment counts down.

Example:
  seqgen 5
  seqgen 1 2 10
  seqgen -w 1 100
  seqgen -f '%.3e' 1 0.5 3
  seqgen -- 10 -2 2`,
		Args:          cobra.RangeArgs(1, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(rootOpts.Verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeq(opts, args, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "verbose output")

	// Formatting flags
	cmd.Flags().StringVarP(&opts.Separator, "separator", "s", "\n", "separator between values")
	cmd.Flags().StringVarP(&opts.Terminator, "terminator", "t", "\n", "terminator after the last value")
	cmd.Flags().BoolVarP(&opts.EqualWidth, "equal-width", "w", false, "equalize widths by padding with zeros")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "printf-style floating-point format")

	// Add subcommands
	cmd.AddCommand(NewBatchCommand(rootOpts))
	cmd.AddCommand(NewValidateCommand(rootOpts))

	return cmd
}

// configureLogging installs the default slog handler, matching the
// verbosity flag.
func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// NormalizeArgs inserts a "--" before the first argument that looks
// like a negative number, so flag parsing does not eat sequence values
// like -5 or -0.5. Callers pass the result to cmd.SetArgs. A "--"
// already present disables the rewrite.
func NormalizeArgs(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if looksNumeric(a) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			out = append(out, args[i:]...)
			return out
		}
	}
	return args
}

// looksNumeric reports whether a token is a negative numeric literal
// rather than a flag: "-5", "-0.5", "-.5".
func looksNumeric(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	c := a[1]
	return (c >= '0' && c <= '9') || c == '.'
}

func runSeq(opts *SeqOptions, args []string, cmd *cobra.Command) error {
	spec, err := sequence.ParseTokens(args)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	}

	cfg := sequence.Config{
		Separator:  opts.Separator,
		Terminator: opts.Terminator,
		EqualWidth: opts.EqualWidth,
	}
	if opts.Format != "" {
		f, err := sequence.ParseFormat(opts.Format)
		if err != nil {
			return WrapExitError(ExitCommandError, "unusable format string", err)
		}
		cfg.Format = f
	}

	layout := sequence.DeriveLayout(spec)
	slog.Debug("sequence derived",
		"first", spec.First, "increment", spec.Increment, "last", spec.Last,
		"padding", layout.Padding, "fractional_digits", layout.FractionalDigits)

	if err := sequence.Render(spec, layout, cfg, cmd.OutOrStdout()); err != nil {
		return WrapExitError(ExitFailure, "write error", err)
	}
	return nil
}
