package result

//
// future.go - a future that resolves exactly once.
//

import "context"

// Future is the result of an operation running on a background
// goroutine. A [Future] resolves exactly once, either to a value or
// to an error, and never both. Construct using [Start].
type Future[T any] struct {
	// done is closed after result has been assigned.
	done chan struct{}

	// result is the resolved result.
	result Result[T]
}

// Start runs fx on a background goroutine and returns a [*Future]
// that resolves when fx returns.
func Start[T any](fx func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		value, err := fx()
		if err != nil {
			f.result = Fail[T](err)
			return
		}
		f.result = OK(value)
	}()
	return f
}

// Await blocks until the future resolves or the given context is
// done, whichever comes first, and returns the outcome.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-f.done:
		return f.result.Unpack()
	}
}

// Result blocks until the future resolves and returns the [Result].
func (f *Future[T]) Result() Result[T] {
	<-f.done
	return f.result
}

// Then registers a callback pair invoked on a background goroutine
// once the future resolves. Exactly one of the two callbacks runs.
func (f *Future[T]) Then(fulfill func(T), reject func(error)) {
	go func() {
		<-f.done
		f.result.PropagateTo(fulfill, reject)
	}()
}
