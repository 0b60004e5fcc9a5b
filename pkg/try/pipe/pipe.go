package pipe

import "github.com/carlsverre/tryiter/pkg/try"

// stage is the shared engine behind every success-side adapter. step runs on
// success values only; it returns the item to emit and whether to emit it at
// all (filtered-out items report false, and the loop pulls again). Upstream
// failures bypass step and flow through re-typed.
type stage[In, Out any] struct {
	src  try.Iter[In]
	step func(In) (try.Result[Out], bool)
}

func (s *stage[In, Out]) Next() (try.Result[Out], bool) {
	for {
		r, ok := s.src.Next()
		if !ok {
			var zero try.Result[Out]
			return zero, false
		}
		if r.IsFailure() {
			return try.FailFrom[In, Out](r), true
		}
		out, emit := s.step(r.Value())
		if emit {
			return out, true
		}
	}
}

// FilterMap wraps it so that f both transforms and filters success values:
// f returns the mapped value, whether to keep it, and an optional error. An
// error from f becomes a failure item in place of the input.
func FilterMap[In, Out any](it try.Iter[In], f func(In) (Out, bool, error)) try.Iter[Out] {
	return &stage[In, Out]{
		src: it,
		step: func(v In) (try.Result[Out], bool) {
			out, keep, err := f(v)
			if err != nil {
				return try.Fail[Out](err), true
			}
			if !keep {
				var zero try.Result[Out]
				return zero, false
			}
			return try.Success(out), true
		},
	}
}

// Map wraps it so that every success value is transformed by f.
func Map[In, Out any](it try.Iter[In], f func(In) (Out, error)) try.Iter[Out] {
	return FilterMap(it, func(v In) (Out, bool, error) {
		out, err := f(v)
		return out, true, err
	})
}

// Filter wraps it so that only success values approved by pred remain.
// Filtering never ends the sequence early; dropped items are skipped.
func Filter[T any](it try.Iter[T], pred func(T) (bool, error)) try.Iter[T] {
	return FilterMap(it, func(v T) (T, bool, error) {
		keep, err := pred(v)
		return v, keep, err
	})
}

// Inspect invokes f on every success value for its side effect and re-yields
// the value unchanged. An error from f replaces the item with that failure.
func Inspect[T any](it try.Iter[T], f func(T) error) try.Iter[T] {
	return Map(it, func(v T) (T, error) {
		return v, f(v)
	})
}

// errStage is the failure-side counterpart of stage: successes and end of
// sequence pass straight through, failures are handed to remap.
type errStage[T any] struct {
	src   try.Iter[T]
	remap func(error) try.Result[T]
}

func (s *errStage[T]) Next() (try.Result[T], bool) {
	r, ok := s.src.Next()
	if !ok {
		var zero try.Result[T]
		return zero, false
	}
	if r.IsFailure() {
		return s.remap(r.Err()), true
	}
	return r, true
}

// MapErr wraps it so that every failure's error is rewritten by f. Success
// values pass through untouched.
func MapErr[T any](it try.Iter[T], f func(error) error) try.Iter[T] {
	return &errStage[T]{
		src: it,
		remap: func(err error) try.Result[T] {
			return try.Fail[T](f(err))
		},
	}
}

// InspectErr invokes f on every failure's error for its side effect and
// re-yields the failure unchanged.
func InspectErr[T any](it try.Iter[T], f func(error)) try.Iter[T] {
	return &errStage[T]{
		src: it,
		remap: func(err error) try.Result[T] {
			f(err)
			return try.Fail[T](err)
		},
	}
}
