package async

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/fnkit/pkg/fnkit"
	"github.com/ib-77/fnkit/pkg/fnkit/futures"
)

// Result wraps a deferred computation together with an optional pre-known
// error fixed at construction. The resolution cache is written at most once,
// guarded for schedulers that run awaiters on real OS threads.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time

	compute  futures.Func[T]
	knownErr error

	claimed  atomic.Bool
	resolved chan struct{}
	value    T
	err      error
}

// From wraps a deferred computation. Nothing runs until the first Await.
func From[T any](compute futures.Func[T]) *Result[T] {
	return &Result[T]{
		compute:   compute,
		resolved:  make(chan struct{}),
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of wraps an already-known value as a trivially resolvable computation.
func Of[T any](v T) *Result[T] {
	return From(func(ctx context.Context) (T, error) {
		return v, nil
	})
}

// Err constructs a result with a pre-known error. The computation slot stays
// empty; every resolution yields the error without suspending.
func Err[T any](err error) *Result[T] {
	r := From[T](nil)
	r.knownErr = err
	return r
}

// FromFuture adapts an in-flight future into an async result.
func FromFuture[T any](f *futures.Future[T]) *Result[T] {
	return From(f.Get)
}

func (r *Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Result[T]) Id() uuid.UUID {
	return r.id
}

// Err returns the pre-known error, if any was set at construction.
func (r *Result[T]) Err() error {
	return r.knownErr
}

func (r *Result[T]) IsErr() bool {
	return r.knownErr != nil
}

// Resolved reports whether the computation has already run to completion.
func (r *Result[T]) Resolved() bool {
	select {
	case <-r.resolved:
		return true
	default:
		return false
	}
}

// Await drives the computation to completion and caches the outcome. The
// transition from pending to resolved happens exactly once: concurrent
// awaiters block until the winner has stored the result, then share it.
// A pre-known error resolves immediately without running the computation.
// A panic inside the computation is captured as the resolved error.
func (r *Result[T]) Await(ctx context.Context) (T, error) {
	if r.knownErr != nil {
		var zero T
		return zero, r.knownErr
	}

	if r.claimed.CompareAndSwap(false, true) {
		r.value, r.err = r.run(ctx)
		close(r.resolved)
		return r.value, r.err
	}

	select {
	case <-r.resolved:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (r *Result[T]) run(ctx context.Context) (value T, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero T
			value = zero
			err = fnkit.PanicAsError(p)
		}
	}()
	return r.compute(ctx)
}

// Unwrap fails with the pre-known error when one is set, otherwise resolves
// and returns the value.
func (r *Result[T]) Unwrap(ctx context.Context) (T, error) {
	if r.knownErr != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", fnkit.ErrUnwrapOnError, r.knownErr)
	}
	return r.Await(ctx)
}

// Expect behaves like Unwrap with a caller-supplied diagnostic attached.
func (r *Result[T]) Expect(ctx context.Context, msg string) (T, error) {
	if r.knownErr != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", msg, r.knownErr)
	}
	v, err := r.Await(ctx)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", msg, err)
	}
	return v, nil
}

// MapErr transforms a pre-known error; without one the result passes through
// untouched.
func (r *Result[T]) MapErr(f func(error) error) *Result[T] {
	if r.knownErr == nil {
		return r
	}
	return Err[T](f(r.knownErr))
}

// OrElse evaluates the asynchronous fallback when a pre-known error is set,
// otherwise passes the result through.
func (r *Result[T]) OrElse(fallback func() *Result[T]) *Result[T] {
	if r.knownErr != nil {
		return fallback()
	}
	return r
}

// Map composes f onto the eventual value. With a pre-known error set the
// output is a pending wrapper that resolves to that error without suspending
// on the input. A panic inside f is captured into the output's error slot.
func Map[In, Out any](r *Result[In], f func(In) Out) *Result[Out] {
	if r.knownErr != nil {
		return Err[Out](r.knownErr)
	}
	return From(func(ctx context.Context) (out Out, err error) {
		v, err := r.Await(ctx)
		if err != nil {
			var zero Out
			return zero, err
		}
		defer func() {
			if p := recover(); p != nil {
				var zero Out
				out = zero
				err = fnkit.PanicAsError(p)
			}
		}()
		return f(v), nil
	})
}

// MapAsync is the suspension-aware variant of Map: f itself produces an
// asynchronous result, which is awaited before wrapping.
func MapAsync[In, Out any](r *Result[In], f func(context.Context, In) *Result[Out]) *Result[Out] {
	if r.knownErr != nil {
		return Err[Out](r.knownErr)
	}
	return From(func(ctx context.Context) (out Out, err error) {
		v, err := r.Await(ctx)
		if err != nil {
			var zero Out
			return zero, err
		}
		defer func() {
			if p := recover(); p != nil {
				var zero Out
				out = zero
				err = fnkit.PanicAsError(p)
			}
		}()
		return f(ctx, v).Await(ctx)
	})
}
