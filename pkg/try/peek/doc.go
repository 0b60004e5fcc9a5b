// Package peek adds one-item lookahead to any try.Iter.
//
// Peekable buffers at most one item between Peek and Next. Failures buffer
// and peek exactly like successes: peeking a failure does not consume it,
// the following Next does.
package peek
