package term

import "github.com/carlsverre/tryiter/pkg/try"

// Fold combines every success value into an accumulator, starting from
// init. The first failure aborts the fold; no partial accumulator is
// reported.
func Fold[T, A any](it try.Iter[T], init A, f func(A, T) (A, error)) (A, error) {
	acc := init
	for {
		v, ok, err := try.Next(it)
		if err != nil {
			var zero A
			return zero, err
		}
		if !ok {
			return acc, nil
		}
		acc, err = f(acc, v)
		if err != nil {
			var zero A
			return zero, err
		}
	}
}

// Reduce folds with the first success value as the initial accumulator. The
// bool result is false when the sequence was empty.
func Reduce[T any](it try.Iter[T], f func(T, T) (T, error)) (T, bool, error) {
	var acc T
	seen := false
	for {
		v, ok, err := try.Next(it)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if !ok {
			return acc, seen, nil
		}
		if !seen {
			acc = v
			seen = true
			continue
		}
		acc, err = f(acc, v)
		if err != nil {
			var zero T
			return zero, false, err
		}
	}
}
