package term

import "github.com/carlsverre/tryiter/pkg/try"

// Unzip consumes a sequence of pairs eagerly and splits it into two slices,
// preserving arrival order in each. The first failure aborts the operation
// and both partial slices are discarded.
func Unzip[A, B any](it try.Iter[try.Pair[A, B]]) ([]A, []B, error) {
	var first []A
	var second []B
	for {
		p, ok, err := try.Next(it)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return first, second, nil
		}
		first = append(first, p.First)
		second = append(second, p.Second)
	}
}
