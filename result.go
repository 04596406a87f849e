package goresults

// Result is an element of a fallible stream.
// It carries either a success value or a failure error, never both.
// The zero Result is a success carrying the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Value returns a success result carrying v.
func Value[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure returns a failure result carrying err.
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of returns a result classified by err: a failure carrying err if err is non-nil,
// a success carrying v otherwise.
// It is meant to wrap the return values of an ordinary fallible call.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}

	return Value(v)
}

// Value returns r's value and error.
func (r Result[T]) Value() (T, error) {
	return r.value, r.err
}

// Err returns r's error, if any.
func (r Result[T]) Err() error {
	return r.err
}
