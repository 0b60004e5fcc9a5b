// Package pipe provides the lazy adapters: transforms and filters that wrap
// a try.Iter and do no upstream work until pulled.
//
// Every adapter keeps the same contract: upstream failures pass through
// untouched and callbacks never run on them; a callback failure enters the
// same channel and is indistinguishable downstream from an upstream one;
// filtered-out items are skipped in a loop, never ending the sequence.
//
// Key operations:
// - Map/Filter/FilterMap: fallible transforms over success values
// - Inspect/InspectErr: side effects on the matching variant
// - MapErr: the one adapter that rewrites the failure channel
// - Chain: fluent wrapper for stacking same-type adapters
package pipe
