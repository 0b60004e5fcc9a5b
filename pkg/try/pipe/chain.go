package pipe

import "github.com/carlsverre/tryiter/pkg/try"

// Chain is a fluent wrapper for stacking same-type adapters. Transforms that
// change the element type stay free functions (Map, FilterMap), since Go
// methods cannot introduce type parameters. Chain is itself a try.Iter[T],
// so a built chain can feed any adapter or terminal directly.
type Chain[T any] struct {
	it try.Iter[T]
}

func From[T any](it try.Iter[T]) Chain[T] {
	return Chain[T]{it: it}
}

func (c Chain[T]) Filter(pred func(T) (bool, error)) Chain[T] {
	return Chain[T]{it: Filter(c.it, pred)}
}

// Map transforms success values without changing their type.
func (c Chain[T]) Map(f func(T) (T, error)) Chain[T] {
	return Chain[T]{it: Map(c.it, f)}
}

func (c Chain[T]) Inspect(f func(T) error) Chain[T] {
	return Chain[T]{it: Inspect(c.it, f)}
}

func (c Chain[T]) InspectErr(f func(error)) Chain[T] {
	return Chain[T]{it: InspectErr(c.it, f)}
}

func (c Chain[T]) MapErr(f func(error) error) Chain[T] {
	return Chain[T]{it: MapErr(c.it, f)}
}

// Iter unwraps the chain.
func (c Chain[T]) Iter() try.Iter[T] {
	return c.it
}

func (c Chain[T]) Next() (try.Result[T], bool) {
	return c.it.Next()
}
