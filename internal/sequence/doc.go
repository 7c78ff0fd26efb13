// Package sequence implements the arithmetic sequence engine and its
// renderer.
//
// ARCHITECTURE:
//
// Single-pass render loop:
// The engine is a tight sequential loop on the calling goroutine. One
// producer (the loop) feeds one consumer (the output sink); no state is
// shared across goroutines, so no locking exists anywhere in the
// package. Output is written incrementally - the sequence is never
// materialized.
//
// Validation happens entirely before iteration:
// 1. ParseTokens turns the 1-3 positional tokens into a Spec,
//    rejecting malformed literals, infinities, and a zero increment.
// 2. DeriveLayout fixes the display width and fractional precision for
//    the whole run.
// 3. Render iterates first, first+increment, ... until the value
//    passes last, so the only failure mode inside the loop is a write
//    error on the sink. Broken pipe is downgraded to a clean stop.
//
// Rendering is polymorphic over ValueRenderer: either the default
// fixed-width renderer derived from the inputs, or a caller-supplied
// printf-style Format. The renderer is selected once per run and
// invoked uniformly inside the loop.
package sequence
