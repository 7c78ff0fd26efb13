package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/seqgen/internal/manifest"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <manifest.yaml>",
		Short: "Validate a batch manifest without rendering",
		Long: `Validate every job in a batch manifest without producing output.

All jobs are checked (numeric literals, nonzero increment, format
strings, job names) and every problem is reported, so a manifest can be
fixed in one pass.

Example:
  seqgen validate sequences.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *ValidateOptions, path string, cmd *cobra.Command) error {
	m, err := manifest.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load manifest", err)
	}

	errs := m.Validate(manifest.ModeCollectAll)
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", e)
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d validation error(s)", len(errs)))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Manifest valid: %d job(s)\n", len(m.Jobs))
	return nil
}
