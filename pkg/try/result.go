package try

// Result is the single item type flowing through every iterator in this
// module: a success carrying a value of type T, or a failure carrying an
// error. The error is opaque to this module; it is moved, never inspected.
//
// The zero Result is a failure with a nil error. Use the constructors.
type Result[T any] struct {
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err: err,
	}
}

// From builds a Result from a conventional (value, error) return pair. A
// non-nil error wins, matching the usual Go convention that the value is
// meaningless alongside an error.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// FailFrom re-types a failure across a transform boundary, carrying the
// error unchanged. The input must be a failure.
func FailFrom[In, Out any](r Result[In]) Result[Out] {
	return Result[Out]{
		err: r.err,
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}
