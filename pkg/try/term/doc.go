// Package term provides the consuming operations: everything here drives a
// try.Iter to exhaustion, to a definitive answer, or to the first failure,
// whichever comes first.
//
// Common usage:
// - Fold/Reduce: short-circuiting accumulation
// - Min/Max and the Func/ByKey variants: single-pass extremum tracking
// - Unzip: split a sequence of pairs into two slices
// - Any/All: early-exit boolean aggregation
// - Collect/ForEach/Count: drain helpers
//
// Shared rules: the first failure, whether upstream or from a callback,
// aborts the operation and is returned as the error; partial state
// (accumulators, output slices) is discarded, never surfaced. Operations
// with a definitive early answer (Any, All) stop pulling the instant they
// have it.
package term
