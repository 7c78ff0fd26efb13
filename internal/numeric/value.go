package numeric

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// ctx is the shared arithmetic context. 36 significant digits is wider
// than float64's 15-17 and matches the quadruple-precision range of
// classic seq implementations.
var ctx = apd.BaseContext.WithPrecision(36)

// Value is a finite extended-precision decimal. The zero Value is not
// usable; construct through Parse or One.
type Value struct {
	dec apd.Decimal
}

// ParseError reports a token that is not a valid finite decimal
// literal. The original token text is preserved verbatim for the
// user-facing message.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid floating point argument: %q", e.Token)
}

// Parse converts a decimal literal (optional sign, integer part,
// optional fraction, optional exponent) into a Value.
//
// Tokens that do not parse, or that parse to an infinity or NaN
// (explicit literal or exponent overflow), return *ParseError. Parse
// has no side effects.
func Parse(token string) (*Value, error) {
	v := &Value{}
	if _, _, err := v.dec.SetString(token); err != nil {
		return nil, &ParseError{Token: token}
	}
	if v.dec.Form != apd.Finite {
		return nil, &ParseError{Token: token}
	}
	return v, nil
}

// One returns the value 1, the default for omitted first/increment
// arguments.
func One() *Value {
	v := &Value{}
	v.dec.SetInt64(1)
	return v
}

// IsZero reports whether the value is zero (either sign).
func (v *Value) IsZero() bool {
	return v.dec.IsZero()
}

// IsNegative reports whether the value is strictly negative.
func (v *Value) IsNegative() bool {
	return v.dec.Negative && !v.dec.IsZero()
}

// Cmp compares v against o, returning -1, 0, or +1.
func (v *Value) Cmp(o *Value) int {
	return v.dec.Cmp(&o.dec)
}

// Add returns v + o under the shared context. The receiver is not
// modified.
func (v *Value) Add(o *Value) (*Value, error) {
	sum := &Value{}
	if _, err := ctx.Add(&sum.dec, &v.dec, &o.dec); err != nil {
		return nil, fmt.Errorf("decimal add: %w", err)
	}
	return sum, nil
}

// String returns the canonical fixed-point text form, e.g. "1.50" for
// the literal "1.50". Trailing zeros from the input are preserved.
func (v *Value) String() string {
	return v.dec.Text('f')
}

// Float64 reduces the value to a float64 for the printf-style format
// pathway. Precision beyond float64 is lost, matching how seq hands
// values to printf.
func (v *Value) Float64() (float64, error) {
	return v.dec.Float64()
}

// IntegerDigits counts the digits of the integer part of |v|. Zero and
// pure fractions contribute 0; callers clamp to a minimum visible
// digit when rendering.
func (v *Value) IntegerDigits() int {
	if v.dec.IsZero() {
		return 0
	}
	n := int(v.dec.NumDigits() + int64(v.dec.Exponent))
	if n < 0 {
		return 0
	}
	return n
}

// FractionalDigits counts the digits after the decimal point in the
// canonical text form, 0 for integral values. "1.50" reports 2.
func (v *Value) FractionalDigits() int {
	s := v.dec.Text('f')
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// FixedPoint renders the value in fixed-point notation with exactly
// precision fractional digits, rounding half-up when the value carries
// more digits than requested.
func (v *Value) FixedPoint(precision int) (string, error) {
	var q apd.Decimal
	if _, err := ctx.Quantize(&q, &v.dec, int32(-precision)); err != nil {
		return "", fmt.Errorf("decimal quantize: %w", err)
	}
	return q.Text('f'), nil
}
