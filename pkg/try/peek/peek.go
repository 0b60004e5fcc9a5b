package peek

import "github.com/carlsverre/tryiter/pkg/try"

// Peekable wraps a try.Iter with a single-item lookahead buffer. The buffer
// is empty at construction, filled by the first Peek, and drained by the
// following Next; it never holds more than one item.
type Peekable[T any] struct {
	src      try.Iter[T]
	item     try.Result[T]
	buffered bool
}

func Wrap[T any](src try.Iter[T]) *Peekable[T] {
	return &Peekable[T]{src: src}
}

// Peek reports the next item without consuming it. Repeated calls without
// an intervening Next return the same item and pull upstream at most once.
// When upstream is exhausted, Peek reports false and buffers nothing.
func (p *Peekable[T]) Peek() (try.Result[T], bool) {
	if !p.buffered {
		r, ok := p.src.Next()
		if !ok {
			var zero try.Result[T]
			return zero, false
		}
		p.item = r
		p.buffered = true
	}
	return p.item, true
}

// Next drains the buffered item if one is held, otherwise pulls upstream
// directly.
func (p *Peekable[T]) Next() (try.Result[T], bool) {
	if p.buffered {
		r := p.item
		var zero try.Result[T]
		p.item = zero
		p.buffered = false
		return r, true
	}
	return p.src.Next()
}
