package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/seqgen/internal/manifest"
	"github.com/roach88/seqgen/internal/sequence"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions

	// TokenGenerator allows overriding the run token generator (for
	// testing). If nil, defaults to UUIDv7Generator.
	TokenGenerator RunTokenGenerator
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Render every sequence job in a manifest",
		Long: `Render every sequence job in a YAML manifest, in declaration order.

Each job is a full sequence description (first, increment, last plus
formatting options) and writes to its configured output file, or to
standard output when none is set. The whole manifest is validated
before any job runs; a job that fails mid-run aborts the batch.

Example:
  seqgen batch sequences.yaml
  seqgen batch sequences.yaml --verbose`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *BatchOptions, path string, cmd *cobra.Command) error {
	m, err := manifest.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load manifest", err)
	}

	if errs := m.Validate(manifest.ModeFailFast); len(errs) > 0 {
		return WrapExitError(ExitCommandError, "invalid manifest", errs[0])
	}

	tokenGen := opts.TokenGenerator
	if tokenGen == nil {
		tokenGen = UUIDv7Generator{}
	}
	run := tokenGen.Generate()
	log := slog.Default().With("run", run)
	log.Info("batch starting", "manifest", path, "jobs", len(m.Jobs))

	for i := range m.Jobs {
		job := &m.Jobs[i]
		if err := renderJob(job, log, cmd.OutOrStdout()); err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("job %q failed", job.Name), err)
		}
	}

	log.Info("batch complete", "jobs", len(m.Jobs))
	return nil
}

// renderJob compiles and renders one job. stdout is the fallback sink
// for jobs with no output file.
func renderJob(job *manifest.Job, log *slog.Logger, stdout io.Writer) error {
	// Validate ran already; Compile repeated here to get the spec.
	spec, cfg, err := job.Compile()
	if err != nil {
		return err
	}
	layout := sequence.DeriveLayout(spec)

	sink := stdout
	if job.Output != "" {
		f, err := os.Create(job.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				log.Error("error closing output", "job", job.Name, "error", closeErr)
			}
		}()
		sink = f
	}

	log.Debug("job starting", "job", job.Name, "output", job.Output)
	if err := sequence.Render(spec, layout, cfg, sink); err != nil {
		return err
	}
	log.Debug("job complete", "job", job.Name)
	return nil
}
