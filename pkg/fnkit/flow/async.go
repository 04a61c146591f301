package flow

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/ib-77/fnkit/pkg/fnkit"
	"github.com/ib-77/fnkit/pkg/fnkit/async"
	"github.com/ib-77/fnkit/pkg/fnkit/futures"
	"github.com/ib-77/fnkit/pkg/fnkit/multi"
)

// Parallel awaits all computations concurrently and collects their values in
// input order, regardless of completion timing. Failure policy is collect-all:
// every computation runs to completion, and when any fail the aggregate
// failure is a MultiError carrying each failure in input order.
func Parallel[T any](comps []*async.Result[T]) *async.Result[[]T] {
	return async.From(func(ctx context.Context) ([]T, error) {
		fs := make([]*futures.Future[T], len(comps))
		for i, c := range comps {
			fs[i] = futures.FromFunc(ctx, c.Await)
		}
		return collect(ctx, fs)
	})
}

// ParallelN behaves like Parallel with at most limit computations in flight
// at a time.
func ParallelN[T any](limit int64, comps []*async.Result[T]) *async.Result[[]T] {
	return async.From(func(ctx context.Context) ([]T, error) {
		sem := semaphore.NewWeighted(limit)
		fs := make([]*futures.Future[T], len(comps))
		for i, c := range comps {
			fs[i] = futures.FromFunc(ctx, func(ctx context.Context) (T, error) {
				if err := sem.Acquire(ctx, 1); err != nil {
					var zero T
					return zero, err
				}
				defer sem.Release(1)
				return c.Await(ctx)
			})
		}
		return collect(ctx, fs)
	})
}

func collect[T any](ctx context.Context, fs []*futures.Future[T]) ([]T, error) {
	results, err := futures.ResolveAll(ctx, fs)
	if err != nil {
		return nil, err
	}

	values := make([]T, 0, len(results))
	errs := make([]error, 0)
	for _, r := range results {
		if r.IsErr() {
			errs = append(errs, r.Err())
			continue
		}
		values = append(values, r.Value())
	}
	if len(errs) > 0 {
		return nil, &fnkit.MultiError{Errors: errs}
	}
	return values, nil
}

// Race resolves with the first computation to complete, success or failure.
// Losers are abandoned: their outcomes are never read, and cancellation of
// their suspensions is best-effort. An empty input fails with
// ErrNoCompletion.
func Race[T any](comps []*async.Result[T]) *async.Result[T] {
	if len(comps) == 0 {
		return async.Err[T](fnkit.ErrNoCompletion)
	}
	return async.From(func(ctx context.Context) (T, error) {
		fs := make([]*futures.Future[T], len(comps))
		for i, c := range comps {
			fs[i] = futures.FromFunc(ctx, c.Await)
		}
		return futures.FirstOf(ctx, fs)
	})
}

// Sequence awaits each computation in input order, one at a time: the
// resolution of computation i is fully observable before computation i+1
// begins. The first failure aborts the rest.
func Sequence[T any](comps []*async.Result[T]) *async.Result[[]T] {
	return async.From(func(ctx context.Context) ([]T, error) {
		values := make([]T, 0, len(comps))
		for _, c := range comps {
			v, err := c.Await(ctx)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	})
}

// ReduceAsync left-folds the resolved values of a non-empty sequence,
// awaiting in input order. A single computation resolves without invoking f;
// an empty input fails with ErrEmptyReduction. A panic inside f is recovered
// into the error channel.
func ReduceAsync[T any](comps []*async.Result[T], f func(T, T) T) *async.Result[T] {
	if len(comps) == 0 {
		return async.Err[T](fnkit.ErrEmptyReduction)
	}
	return async.From(func(ctx context.Context) (acc T, err error) {
		acc, err = comps[0].Await(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		defer func() {
			if p := recover(); p != nil {
				var zero T
				acc = zero
				err = fnkit.PanicAsError(p)
			}
		}()
		for _, c := range comps[1:] {
			v, err := c.Await(ctx)
			if err != nil {
				var zero T
				return zero, err
			}
			acc = f(acc, v)
		}
		return acc, nil
	})
}

// FilterAsync awaits each computation in input order and keeps the values of
// the successful ones satisfying the predicate. Failed computations are
// dropped, not propagated.
func FilterAsync[T any](comps []*async.Result[T], pred func(T) bool) *async.Result[[]T] {
	return async.From(func(ctx context.Context) ([]T, error) {
		kept := make([]T, 0, len(comps))
		for _, c := range comps {
			v, err := c.Await(ctx)
			if err != nil {
				continue
			}
			if pred(v) {
				kept = append(kept, v)
			}
		}
		return kept, nil
	})
}

// MergeAsync awaits all computations concurrently and gathers only the
// failures, in input order, as one multi-error result. Successes are
// discarded. MergeAsync suspends until every computation has completed.
func MergeAsync[T any](ctx context.Context, comps []*async.Result[T]) (multi.Result[T], error) {
	fs := make([]*futures.Future[T], len(comps))
	for i, c := range comps {
		fs[i] = futures.FromFunc(ctx, c.Await)
	}

	results, err := futures.ResolveAll(ctx, fs)
	if err != nil {
		return multi.Err[T](), err
	}
	return multi.Merge(results), nil
}
