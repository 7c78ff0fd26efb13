// Package manifest loads and validates batch manifests: YAML files
// describing a list of named sequence jobs to render in order.
package manifest

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/seqgen/internal/sequence"
)

// Manifest is a parsed batch file.
type Manifest struct {
	// Jobs are rendered in declaration order.
	Jobs []Job `yaml:"jobs"`
}

// Job describes one sequence to render. Numeric fields are strings so
// the manifest preserves significant trailing zeros ("1.50" keeps its
// two fractional digits).
type Job struct {
	// Name uniquely identifies the job within the manifest.
	Name string `yaml:"name"`

	// First is the start value. Empty defaults to 1.
	First string `yaml:"first,omitempty"`

	// Increment is the step. Empty defaults to 1; requires First.
	Increment string `yaml:"increment,omitempty"`

	// Last is the end bound. Required.
	Last string `yaml:"last"`

	// Separator between values, terminator after the final value.
	// Empty means newline.
	Separator  string `yaml:"separator,omitempty"`
	Terminator string `yaml:"terminator,omitempty"`

	// EqualWidth zero-pads all values to a common width.
	EqualWidth bool `yaml:"equal_width,omitempty"`

	// Format is an optional printf-style float format.
	Format string `yaml:"format,omitempty"`

	// Output is the file the sequence is written to. Empty means
	// standard output.
	Output string `yaml:"output,omitempty"`
}

// Mode controls how Validate handles errors.
type Mode int

const (
	// ModeFailFast stops on the first invalid job.
	ModeFailFast Mode = iota
	// ModeCollectAll validates every job and reports all errors.
	ModeCollectAll
)

// JobError wraps a validation or compile error with the job it came
// from.
type JobError struct {
	Job string
	Err error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %q: %v", e.Job, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// Load reads and decodes a manifest file. Decoding is strict: unknown
// keys are an error, catching typos like "seperator".
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Jobs) == 0 {
		return nil, fmt.Errorf("manifest %s: no jobs defined", path)
	}
	return &m, nil
}

// Validate checks every job without producing output. In ModeFailFast
// the first error is returned alone; in ModeCollectAll all errors are
// collected so a user can fix a manifest in one pass.
func (m *Manifest) Validate(mode Mode) []error {
	var errs []error
	seen := make(map[string]bool, len(m.Jobs))

	for i := range m.Jobs {
		job := &m.Jobs[i]
		jobErrs := job.validate()
		if job.Name != "" {
			if seen[job.Name] {
				jobErrs = append(jobErrs, &JobError{Job: job.Name, Err: fmt.Errorf("duplicate job name")})
			}
			seen[job.Name] = true
		}
		errs = append(errs, jobErrs...)
		if mode == ModeFailFast && len(errs) > 0 {
			return errs[:1]
		}
	}
	return errs
}

func (j *Job) validate() []error {
	var errs []error
	if j.Name == "" {
		errs = append(errs, fmt.Errorf("job missing name"))
	}
	if _, _, err := j.Compile(); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// Compile turns the job into a validated engine spec and render
// config. Errors carry the job name.
func (j *Job) Compile() (sequence.Spec, sequence.Config, error) {
	cfg := sequence.DefaultConfig()

	if j.Last == "" {
		return sequence.Spec{}, cfg, &JobError{Job: j.Name, Err: fmt.Errorf("missing last value")}
	}
	if j.Increment != "" && j.First == "" {
		return sequence.Spec{}, cfg, &JobError{Job: j.Name, Err: fmt.Errorf("increment requires first")}
	}

	tokens := make([]string, 0, 3)
	if j.First != "" {
		tokens = append(tokens, j.First)
	}
	if j.Increment != "" {
		tokens = append(tokens, j.Increment)
	}
	tokens = append(tokens, j.Last)

	spec, err := sequence.ParseTokens(tokens)
	if err != nil {
		return sequence.Spec{}, cfg, &JobError{Job: j.Name, Err: err}
	}

	if j.Separator != "" {
		cfg.Separator = j.Separator
	}
	if j.Terminator != "" {
		cfg.Terminator = j.Terminator
	}
	cfg.EqualWidth = j.EqualWidth
	if j.Format != "" {
		f, err := sequence.ParseFormat(j.Format)
		if err != nil {
			return sequence.Spec{}, cfg, &JobError{Job: j.Name, Err: err}
		}
		cfg.Format = f
	}

	return spec, cfg, nil
}
