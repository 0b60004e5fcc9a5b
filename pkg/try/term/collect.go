package term

import "github.com/carlsverre/tryiter/pkg/try"

// Collect drains it into a slice of success values. The first failure
// discards the partial slice.
func Collect[T any](it try.Iter[T]) ([]T, error) {
	var out []T
	for {
		v, ok, err := try.Next(it)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// ForEach invokes f on every success value. An error from f stops the scan
// and is returned, same as an upstream failure.
func ForEach[T any](it try.Iter[T], f func(T) error) error {
	for {
		v, ok, err := try.Next(it)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := f(v); err != nil {
			return err
		}
	}
}

// Count reports how many success values the sequence yields.
func Count[T any](it try.Iter[T]) (int, error) {
	n := 0
	for {
		_, ok, err := try.Next(it)
		if err != nil {
			return 0, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}
