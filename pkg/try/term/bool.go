package term

import "github.com/carlsverre/tryiter/pkg/try"

// Any reports whether pred holds for any success value. It stops pulling
// the instant pred reports true or a failure appears; an exhausted sequence
// reports false.
func Any[T any](it try.Iter[T], pred func(T) (bool, error)) (bool, error) {
	for {
		v, ok, err := try.Next(it)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		hit, err := pred(v)
		if err != nil {
			return false, err
		}
		if hit {
			return true, nil
		}
	}
}

// All reports whether pred holds for every success value. It stops pulling
// the instant pred reports false or a failure appears; an exhausted
// sequence reports true.
func All[T any](it try.Iter[T], pred func(T) (bool, error)) (bool, error) {
	for {
		v, ok, err := try.Next(it)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		holds, err := pred(v)
		if err != nil {
			return false, err
		}
		if !holds {
			return false, nil
		}
	}
}
