// Package result contains code to represent an error or a value, as
// well as a future that resolves exactly once to either of them.
package result

// Result represents an error or a value. Construct instances using
// [OK] or [Fail]; exactly one of the two variants is populated.
type Result[T any] struct {
	// err is the error, when the operation failed.
	err error

	// value is the value, when the operation succeeded.
	value T
}

// OK constructs a [Result] holding a value.
func OK[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail constructs a [Result] holding an error.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Failed returns whether this [Result] holds an error.
func (r Result[T]) Failed() bool {
	return r.err != nil
}

// Value returns the underlying value or the zero value when
// this [Result] holds an error.
func (r Result[T]) Value() T {
	return r.value
}

// Error returns the underlying error or nil when this
// [Result] holds a value.
func (r Result[T]) Error() error {
	return r.err
}

// Unpack returns the value-and-error pair held by this [Result],
// matching the usual Go return convention.
func (r Result[T]) Unpack() (T, error) {
	return r.value, r.err
}

// PropagateTo invokes fulfill with the value when this [Result] holds
// a value and reject with the error otherwise. Exactly one of the two
// functions is invoked.
func (r Result[T]) PropagateTo(fulfill func(T), reject func(error)) {
	if r.Failed() {
		reject(r.err)
		return
	}
	fulfill(r.value)
}
