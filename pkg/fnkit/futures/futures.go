package futures

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrCanceled is the error reported when a future is completed by calling Cancel.
var ErrCanceled = errors.New("future canceled")

// Func is the computation shape accepted by FromFunc.
type Func[T any] func(ctx context.Context) (T, error)

// Future represents an in-flight unit of asynchronous work. It transitions
// from pending to completed exactly once; the first completion wins and all
// later completions are silently ignored. Get may be called by any number of
// goroutines and they all observe the same outcome.
type Future[T any] struct {
	completed atomic.Bool
	done      chan struct{}

	value T
	err   error
}

func New[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// FromFunc runs do asynchronously and completes the returned future with its
// outcome.
func FromFunc[T any](ctx context.Context, do Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		v, err := do(ctx)
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(v)
	}()

	return f
}

// Complete finishes the future with a value. Ignored if already completed.
func (f *Future[T]) Complete(value T) {
	f.complete(value, nil)
}

// Fail finishes the future with an error. Ignored if already completed.
func (f *Future[T]) Fail(err error) {
	var zero T
	f.complete(zero, err)
}

// Cancel finishes the future with ErrCanceled. Ignored if already completed.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

func (f *Future[T]) complete(v T, err error) {
	if f.completed.CompareAndSwap(false, true) {
		f.value = v
		f.err = err
		close(f.done)
	}
}

// Get blocks until the future completes or the context is canceled.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
