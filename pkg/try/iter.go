package try

// Iter is a pull cursor over success/failure items. Next returns the next
// item and true, or the zero Result and false once the sequence ends.
//
// Whether an Iter may be pulled again after yielding a failure, and what it
// then yields, is a property of the concrete producer. Adapters built on
// Iter pass such pulls straight through without masking them.
type Iter[T any] interface {
	Next() (Result[T], bool)
}

// Func adapts a plain pull function to Iter.
type Func[T any] func() (Result[T], bool)

func (f Func[T]) Next() (Result[T], bool) {
	return f()
}

// Next pulls one item from it and lifts the failure, if any, onto the error
// channel: (value, true, nil) on success, (zero, false, err) on failure and
// (zero, false, nil) at end of sequence.
func Next[T any](it Iter[T]) (T, bool, error) {
	r, ok := it.Next()
	if !ok {
		var zero T
		return zero, false, nil
	}
	if r.IsFailure() {
		var zero T
		return zero, false, r.Err()
	}
	return r.Value(), true, nil
}

// Pair groups two values for the pairwise adapters.
type Pair[A, B any] struct {
	First  A
	Second B
}

func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}
