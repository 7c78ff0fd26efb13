package sequence

import (
	"fmt"
	"strings"
)

// floatVerbs are the printf directives a custom format may use.
const floatVerbs = "eEfFgG"

// FormatError reports a printf-style format string the renderer cannot
// use.
type FormatError struct {
	Format string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s", e.Format, e.Reason)
}

// Format is a parsed printf-style float format: literal text around
// exactly one floating-point directive. It replaces the default
// width/precision renderer for the whole run.
type Format struct {
	prefix    string
	directive string
	suffix    string
}

// ParseFormat validates a printf-style format string. The string must
// contain exactly one %[flags][width][.precision]{e,E,f,F,g,G}
// directive; %% escapes a literal percent sign.
func ParseFormat(s string) (*Format, error) {
	var literal strings.Builder
	f := &Format{}
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '%' {
			literal.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '%' {
			literal.WriteByte('%')
			i += 2
			continue
		}

		// Directive: % flags width [.precision] verb
		j := i + 1
		for j < len(s) && strings.IndexByte("-+ #0", s[j]) >= 0 {
			j++
		}
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j < len(s) && s[j] == '.' {
			j++
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
		}
		if j >= len(s) {
			return nil, &FormatError{Format: s, Reason: "missing conversion verb"}
		}
		if strings.IndexByte(floatVerbs, s[j]) < 0 {
			return nil, &FormatError{Format: s, Reason: fmt.Sprintf("unsupported conversion %%%c", s[j])}
		}
		if f.directive != "" {
			return nil, &FormatError{Format: s, Reason: "multiple conversion directives"}
		}
		f.prefix = literal.String()
		literal.Reset()
		f.directive = s[i : j+1]
		if s[j] == 'F' {
			// Go's fmt has no %F verb; C printf treats it as %f.
			f.directive = f.directive[:len(f.directive)-1] + "f"
		}
		i = j + 1
	}

	if f.directive == "" {
		return nil, &FormatError{Format: s, Reason: "no conversion directive"}
	}
	f.suffix = literal.String()
	return f, nil
}

// Render formats a single value through the directive.
func (f *Format) Render(v float64) string {
	return f.prefix + fmt.Sprintf(f.directive, v) + f.suffix
}
