package marketstack

import (
	"context"
)

// CallFunc is a call returning the full envelope, such as a bound resource
// client method.
type CallFunc[T any] func(ctx context.Context) (*Response[T], error)

// Parsed discards the raw diagnostics of an envelope and keeps the decoded
// payload. It returns (nil, nil) for an unrecognized status.
func Parsed[T any](resp *Response[T], err error) (*Decoded[T], error) {
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, nil
	}

	return resp.Parsed, nil
}

// Future is the result of a call started with Go.
type Future[T any] struct {
	done chan struct{}
	resp *Response[T]
	err  error
}

// Go starts call on its own goroutine and returns immediately. The call sees
// ctx, so cancelling it aborts the request.
func Go[T any](ctx context.Context, call CallFunc[T]) *Future[T] {
	future := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(future.done)

		future.resp, future.err = call(ctx)
	}()

	return future
}

// Done is closed when the call has completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await suspends until the call completes or ctx is done. It may be called
// any number of times and from several goroutines.
func (f *Future[T]) Await(ctx context.Context) (*Response[T], error) {
	select {
	case <-f.done:
		return f.resp, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Parsed is Await followed by the package-level Parsed.
func (f *Future[T]) Parsed(ctx context.Context) (*Decoded[T], error) {
	resp, err := f.Await(ctx)

	return Parsed(resp, err)
}
