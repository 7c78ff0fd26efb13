package sequence

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"syscall"

	"github.com/roach88/seqgen/internal/numeric"
)

// Config holds the formatting options for one run. Immutable once
// constructed.
type Config struct {
	// Separator is written between consecutive values.
	Separator string

	// Terminator is written after the final value, and only if at
	// least one value was emitted.
	Terminator string

	// EqualWidth zero-pads every value to a common width derived from
	// the layout.
	EqualWidth bool

	// Format, when non-nil, replaces the default width/precision
	// renderer for every value.
	Format *Format
}

// DefaultConfig returns the seq defaults: newline separator and
// terminator, no padding, no custom format.
func DefaultConfig() Config {
	return Config{Separator: "\n", Terminator: "\n"}
}

// ValueRenderer renders one sequence value as text. Selected once per
// run and invoked uniformly inside the loop.
type ValueRenderer interface {
	Render(v *numeric.Value) (string, error)
}

// fixedRenderer is the default pathway: fixed-point text with the
// layout's fractional precision, zero-padded to width when equal-width
// output was requested.
type fixedRenderer struct {
	width     int
	precision int
}

func (r fixedRenderer) Render(v *numeric.Value) (string, error) {
	s, err := v.FixedPoint(r.precision)
	if err != nil {
		return "", err
	}
	if len(s) < r.width {
		pad := strings.Repeat("0", r.width-len(s))
		if s[0] == '-' {
			return "-" + pad + s[1:], nil
		}
		return pad + s, nil
	}
	return s, nil
}

// formatRenderer hands each value to a printf-style Format. Values are
// reduced to float64 on the way in, as seq does for its -f option.
type formatRenderer struct {
	format *Format
}

func (r formatRenderer) Render(v *numeric.Value) (string, error) {
	f, err := v.Float64()
	if err != nil {
		return "", err
	}
	return r.format.Render(f), nil
}

// newRenderer selects the renderer for a run.
func newRenderer(layout Layout, cfg Config) ValueRenderer {
	if cfg.Format != nil {
		return formatRenderer{format: cfg.Format}
	}
	width := 0
	if cfg.EqualWidth {
		width = layout.Padding
		if layout.FractionalDigits > 0 {
			width += layout.FractionalDigits + 1
		}
	}
	return fixedRenderer{width: width, precision: layout.FractionalDigits}
}

// done is the termination predicate. A non-negative increment stops
// once the value passes last going up; a negative increment stops once
// it passes last going down. Ascending and descending runs are
// symmetric under this one predicate.
func done(value, increment, last *numeric.Value) bool {
	if increment.IsNegative() {
		return value.Cmp(last) < 0
	}
	return value.Cmp(last) > 0
}

// Render writes the sequence described by spec to w: first,
// first+increment, ... until the termination predicate passes last.
// Output is buffered and flushed on every exit path; nothing of the
// sequence is ever held in memory.
//
// The caller must have validated spec (nonzero increment, finite
// values); see ParseTokens. A broken pipe on w means the consumer went
// away and is reported as success.
func Render(spec Spec, layout Layout, cfg Config, w io.Writer) error {
	bw := bufio.NewWriter(w)
	err := renderAll(spec, layout, cfg, bw)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if isBrokenPipe(err) {
		return nil
	}
	return err
}

func renderAll(spec Spec, layout Layout, cfg Config, w io.Writer) error {
	renderer := newRenderer(layout, cfg)

	value := spec.First
	first := true
	for !done(value, spec.Increment, spec.Last) {
		if !first {
			if _, err := io.WriteString(w, cfg.Separator); err != nil {
				return err
			}
		}
		s, err := renderer.Render(value)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
		value, err = value.Add(spec.Increment)
		if err != nil {
			return err
		}
		first = false
	}

	// An empty sequence suppresses the terminator too.
	if !first {
		if _, err := io.WriteString(w, cfg.Terminator); err != nil {
			return err
		}
	}
	return nil
}

// isBrokenPipe reports whether err means the consumer closed its end
// of the output stream.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
