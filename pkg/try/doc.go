// Package try defines the success/failure item type and the pull iterator
// contract shared by every adapter package in this module.
//
// Common usage:
// - Success/Fail/From: construct Result[T] items
// - Iter/Func: the "pull next item, or end" contract
// - Next: lift the next item into the native (value, ok, error) shape
// - FromResults/FromValues/FromFunc: in-memory producers
// - FromSeq2/ToSeq2: bridge to and from iter.Seq2[T, error]
//
// Lazy transforms live in package pipe, one-item lookahead in package peek,
// and consuming operations in package term.
package try
