package term

import (
	"cmp"

	"github.com/carlsverre/tryiter/pkg/try"
)

// Max returns the largest success value in a single pass. When several
// values compare equal, the latest one wins. The bool result is false when
// the sequence was empty. Any failure aborts the scan; no partial extremum
// is reported.
func Max[T cmp.Ordered](it try.Iter[T]) (T, bool, error) {
	return MaxFunc(it, func(a, b T) (int, error) {
		return cmp.Compare(a, b), nil
	})
}

// Min returns the smallest success value in a single pass. When several
// values compare equal, the earliest one wins.
func Min[T cmp.Ordered](it try.Iter[T]) (T, bool, error) {
	return MinFunc(it, func(a, b T) (int, error) {
		return cmp.Compare(a, b), nil
	})
}

// MaxFunc is Max with a fallible comparator. compare(a, b) follows the
// cmp.Compare convention. A comparator error aborts the scan exactly like
// an upstream failure.
func MaxFunc[T any](it try.Iter[T], compare func(a, b T) (int, error)) (T, bool, error) {
	var best T
	seen := false
	for {
		v, ok, err := try.Next(it)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if !ok {
			return best, seen, nil
		}
		if !seen {
			best = v
			seen = true
			continue
		}
		c, err := compare(v, best)
		if err != nil {
			var zero T
			return zero, false, err
		}
		// equal candidates lose to the newcomer: last max wins
		if c >= 0 {
			best = v
		}
	}
}

// MinFunc is Min with a fallible comparator.
func MinFunc[T any](it try.Iter[T], compare func(a, b T) (int, error)) (T, bool, error) {
	var best T
	seen := false
	for {
		v, ok, err := try.Next(it)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if !ok {
			return best, seen, nil
		}
		if !seen {
			best = v
			seen = true
			continue
		}
		c, err := compare(v, best)
		if err != nil {
			var zero T
			return zero, false, err
		}
		// equal candidates keep the holder: first min wins
		if c < 0 {
			best = v
		}
	}
}

// MaxByKey tracks the extremum of key(v) while returning the value itself.
// key runs once per item; a key error aborts the scan. Ties follow the Max
// rule (latest equal key wins).
func MaxByKey[T any, K cmp.Ordered](it try.Iter[T], key func(T) (K, error)) (T, bool, error) {
	var best T
	var bestKey K
	seen := false
	for {
		v, ok, err := try.Next(it)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if !ok {
			return best, seen, nil
		}
		k, err := key(v)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if !seen || cmp.Compare(k, bestKey) >= 0 {
			best = v
			bestKey = k
			seen = true
		}
	}
}

// MinByKey is MaxByKey's dual; ties follow the Min rule (earliest equal key
// wins).
func MinByKey[T any, K cmp.Ordered](it try.Iter[T], key func(T) (K, error)) (T, bool, error) {
	var best T
	var bestKey K
	seen := false
	for {
		v, ok, err := try.Next(it)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if !ok {
			return best, seen, nil
		}
		k, err := key(v)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if !seen || cmp.Compare(k, bestKey) < 0 {
			best = v
			bestKey = k
			seen = true
		}
	}
}
