// Package numeric provides the extended-precision decimal values the
// sequence engine iterates over.
//
// Values are immutable once parsed. All arithmetic runs under a single
// shared apd context whose precision (36 significant digits) exceeds
// float64, so decimal inputs like 0.1 step exactly instead of
// accumulating binary rounding error.
//
// Infinities and NaNs never leave this package: Parse rejects them, so
// downstream code only ever sees finite values.
package numeric
