package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestGoldenOutput locks the exact rendered bytes for representative
// invocations. Regenerate with:
//
//	go test ./internal/cli -update
func TestGoldenOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"basic", []string{"1", "2", "10"}},
		{"descending", []string{"10", "-2", "2"}},
		{"equal_width", []string{"-w", "8", "12"}},
		{"fractional", []string{"1.50", "0.1", "2"}},
		{"formatted", []string{"-f", "%.2e", "1", "0.5", "3"}},
		{"comma_separated", []string{"-s", ", ", "1", "5"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCommand()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(NormalizeArgs(tt.args))
			require.NoError(t, cmd.Execute())

			g.Assert(t, tt.name, out.Bytes())
		})
	}
}
