package sequence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokens_Defaulting(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		first  string
		inc    string
		last   string
	}{
		{"last only", []string{"5"}, "1", "1", "5"},
		{"first and last", []string{"2", "5"}, "2", "1", "5"},
		{"full triple", []string{"1", "2", "10"}, "1", "2", "10"},
		{"negative increment", []string{"10", "-2", "2"}, "10", "-2", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseTokens(tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.first, spec.First.String())
			assert.Equal(t, tt.inc, spec.Increment.String())
			assert.Equal(t, tt.last, spec.Last.String())
		})
	}
}

func TestParseTokens_MalformedLiterals(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		slot   Slot
		token  string
	}{
		{"bad first", []string{"x", "5"}, SlotFirst, "x"},
		{"bad increment", []string{"1", "y", "5"}, SlotIncrement, "y"},
		{"bad last", []string{"1", "2", "z"}, SlotLast, "z"},
		{"bad single", []string{"nope"}, SlotLast, "nope"},
		{"infinite first", []string{"inf", "5"}, SlotFirst, "inf"},
		{"infinite last", []string{"1", "1", "-inf"}, SlotLast, "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTokens(tt.tokens)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.slot, pe.Slot)
			assert.Equal(t, tt.token, pe.Token)
		})
	}
}

func TestParseTokens_ZeroIncrement(t *testing.T) {
	// Every spelling of zero is rejected, regardless of first/last.
	for _, token := range []string{"0", "0.0", "-0", "0e5"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseTokens([]string{"1", token, "5"})
			require.Error(t, err)

			var ze *ZeroIncrementError
			require.True(t, errors.As(err, &ze))
			assert.Equal(t, token, ze.Token)
		})
	}
}

func TestParseTokens_ArgCount(t *testing.T) {
	_, err := ParseTokens(nil)
	require.Error(t, err)

	_, err = ParseTokens([]string{"1", "2", "3", "4"})
	require.Error(t, err)
}

func TestDeriveLayout(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		padding int
		frac    int
	}{
		{"integers to 100", []string{"1", "1", "100"}, 3, 0},
		{"fraction from first", []string{"1.50", "0.1", "2"}, 1, 2},
		{"fraction from increment", []string{"0", "0.001", "1"}, 1, 3},
		{"last never adds fraction", []string{"1", "1", "2.75"}, 1, 0},
		{"widest is increment", []string{"1", "250", "900"}, 3, 0},
		{"negative magnitudes count", []string{"-120", "1", "5"}, 3, 0},
		{"all zero-ish", []string{"0", "0.5", "0.9"}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseTokens(tt.tokens)
			require.NoError(t, err)

			layout := DeriveLayout(spec)
			assert.Equal(t, tt.padding, layout.Padding, "padding")
			assert.Equal(t, tt.frac, layout.FractionalDigits, "fractional digits")
		})
	}
}
