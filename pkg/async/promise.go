package async

import "context"

type result[T any] struct {
	val T
	err error
}

// Promise holds the eventual outcome of a call running on its own goroutine.
// Await is the only suspension point; it parks the calling goroutine until
// the result is ready or ctx ends.
type Promise[T any] struct {
	done chan result[T]
}

// Go starts fn on a new goroutine and returns a promise for its outcome.
func Go[T any](fn func() (T, error)) *Promise[T] {
	p := &Promise[T]{done: make(chan result[T], 1)}
	go func() {
		v, err := fn()
		p.done <- result[T]{val: v, err: err}
	}()
	return p
}

// Await blocks until the promise resolves or ctx is cancelled. On
// cancellation the in-flight call is abandoned, not interrupted; the channel
// is buffered so the goroutine finishes either way.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case r := <-p.done:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
