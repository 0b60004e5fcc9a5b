package try

import "iter"

// FromResults returns a fused Iter over the given items in order.
func FromResults[T any](items ...Result[T]) Iter[T] {
	i := 0
	return Func[T](func() (Result[T], bool) {
		if i >= len(items) {
			var zero Result[T]
			return zero, false
		}
		r := items[i]
		i++
		return r, true
	})
}

// FromValues returns a fused Iter yielding every value as a success.
func FromValues[T any](values ...T) Iter[T] {
	i := 0
	return Func[T](func() (Result[T], bool) {
		if i >= len(values) {
			var zero Result[T]
			return zero, false
		}
		v := values[i]
		i++
		return Success(v), true
	})
}

// FromFunc adapts f to Iter. f is pulled until it reports false; f itself
// decides what repeated pulls past that point yield.
func FromFunc[T any](f func() (Result[T], bool)) Iter[T] {
	return Func[T](f)
}

// SeqIter pulls items out of an iter.Seq2[T, error] sequence. Call Stop when
// abandoning the iterator before exhaustion so the underlying sequence can
// release whatever it holds; a fully drained SeqIter needs no Stop.
type SeqIter[T any] struct {
	next func() (T, error, bool)
	stop func()
}

func FromSeq2[T any](seq iter.Seq2[T, error]) *SeqIter[T] {
	next, stop := iter.Pull2(seq)
	return &SeqIter[T]{next: next, stop: stop}
}

func (s *SeqIter[T]) Next() (Result[T], bool) {
	v, err, ok := s.next()
	if !ok {
		var zero Result[T]
		return zero, false
	}
	if err != nil {
		return Fail[T](err), true
	}
	return Success(v), true
}

func (s *SeqIter[T]) Stop() {
	s.stop()
}

// ToSeq2 drives it as a range-over-func sequence in the stdlib's
// (value, error) convention. Failures yield the zero value alongside the
// error; the consumer decides whether to keep ranging afterwards.
func ToSeq2[T any](it Iter[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			r, ok := it.Next()
			if !ok {
				return
			}
			if !yield(r.Value(), r.Err()) {
				return
			}
		}
	}
}
