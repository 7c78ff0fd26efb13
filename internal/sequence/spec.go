package sequence

import (
	"fmt"

	"github.com/roach88/seqgen/internal/numeric"
)

// Slot identifies which positional argument an error refers to.
type Slot string

const (
	SlotFirst     Slot = "first"
	SlotIncrement Slot = "increment"
	SlotLast      Slot = "last"
)

// ParseError reports a positional argument that is not a valid finite
// decimal literal.
type ParseError struct {
	Slot  Slot
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s argument: %q", e.Slot, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ZeroIncrementError reports an increment token that parsed to zero.
// A zero increment can never satisfy the termination predicate, so it
// is rejected before any output is produced.
type ZeroIncrementError struct {
	Token string
}

func (e *ZeroIncrementError) Error() string {
	return fmt.Sprintf("invalid zero increment value: %q", e.Token)
}

// Spec is the validated (first, increment, last) triple. All three
// values are finite and the increment is nonzero.
type Spec struct {
	First     *numeric.Value
	Increment *numeric.Value
	Last      *numeric.Value
}

// ParseTokens builds a Spec from 1-3 positional tokens in the order
// [first] [increment] last:
//
//	1 token:  last            (first = 1, increment = 1)
//	2 tokens: first last      (increment = 1)
//	3 tokens: first increment last
//
// Returns *ParseError or *ZeroIncrementError; on error no Spec is
// produced and nothing has been written.
func ParseTokens(tokens []string) (Spec, error) {
	if len(tokens) < 1 || len(tokens) > 3 {
		return Spec{}, fmt.Errorf("expected 1 to 3 arguments, got %d", len(tokens))
	}

	first := numeric.One()
	if len(tokens) > 1 {
		v, err := numeric.Parse(tokens[0])
		if err != nil {
			return Spec{}, &ParseError{Slot: SlotFirst, Token: tokens[0], Err: err}
		}
		first = v
	}

	increment := numeric.One()
	if len(tokens) > 2 {
		v, err := numeric.Parse(tokens[1])
		if err != nil {
			return Spec{}, &ParseError{Slot: SlotIncrement, Token: tokens[1], Err: err}
		}
		increment = v
	}
	if increment.IsZero() {
		return Spec{}, &ZeroIncrementError{Token: tokens[1]}
	}

	lastTok := tokens[len(tokens)-1]
	last, err := numeric.Parse(lastTok)
	if err != nil {
		return Spec{}, &ParseError{Slot: SlotLast, Token: lastTok, Err: err}
	}

	return Spec{First: first, Increment: increment, Last: last}, nil
}

// Layout is the display geometry derived once before iteration and
// constant across the run.
type Layout struct {
	// Padding is the widest integer-digit count over |first|,
	// |increment|, and |last|.
	Padding int

	// FractionalDigits is the widest fractional-digit count over first
	// and increment only. The last value deliberately does not
	// contribute, matching seq: given first=1.50 increment=0.1 last=2,
	// every value renders with 2 fractional digits.
	FractionalDigits int
}

// DeriveLayout computes the Layout for a validated Spec.
func DeriveLayout(spec Spec) Layout {
	padding := spec.First.IntegerDigits()
	if n := spec.Increment.IntegerDigits(); n > padding {
		padding = n
	}
	if n := spec.Last.IntegerDigits(); n > padding {
		padding = n
	}

	frac := spec.First.FractionalDigits()
	if n := spec.Increment.FractionalDigits(); n > frac {
		frac = n
	}

	return Layout{Padding: padding, FractionalDigits: frac}
}
