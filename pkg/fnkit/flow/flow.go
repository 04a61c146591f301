package flow

import (
	"github.com/ib-77/fnkit/pkg/fnkit"
	"github.com/ib-77/fnkit/pkg/fnkit/async"
	"github.com/ib-77/fnkit/pkg/fnkit/chain"
	"github.com/ib-77/fnkit/pkg/fnkit/multi"
)

// Chain composes a chained-result-producing function onto a plain result.
// An errored input short-circuits without invoking f.
func Chain[In, Out any](r fnkit.Result[In], f func(In) chain.Result[Out]) chain.Result[Out] {
	return chain.Chain(chain.FromResult(r), f)
}

// MapValue maps a plain function over a successful result, lifting the
// outcome into a chained result.
func MapValue[In, Out any](r fnkit.Result[In], f func(In) Out) chain.Result[Out] {
	return chain.Map(chain.FromResult(r), f)
}

// MapError transforms the error of a failed result and lifts the outcome
// into a multi-error result. A success passes through with a clean
// collection.
func MapError[T any](r fnkit.Result[T], f func(error) error) multi.Result[T] {
	if r.IsErr() {
		return multi.Err[T](f(r.Err()))
	}
	return multi.Ok(r.Value())
}

// OrElse evaluates the fallback when the result is errored, otherwise lifts
// the success into a chained result.
func OrElse[T any](r fnkit.Result[T], fallback func() chain.Result[T]) chain.Result[T] {
	if r.IsErr() {
		return fallback()
	}
	return chain.Ok(r.Value())
}

// AddError returns a new multi-error result with one more error appended.
// The input container keeps its own collection.
func AddError[T any](r multi.Result[T], err error) multi.Result[T] {
	return r.WithError(err)
}

// HandleError collapses a result by applying the handler to the error;
// successes return their value untouched.
func HandleError[T any](r fnkit.Result[T], handler func(error) T) T {
	if r.IsErr() {
		return handler(r.Err())
	}
	return r.Value()
}

// ToChained lifts a plain result into a chained one.
func ToChained[T any](r fnkit.Result[T]) chain.Result[T] {
	return chain.FromResult(r)
}

// ToMulti lifts a plain result into a multi-error one.
func ToMulti[T any](r fnkit.Result[T]) multi.Result[T] {
	if r.IsErr() {
		return multi.Err[T](r.Err())
	}
	return multi.Ok(r.Value())
}

// ToAsync lifts a plain result into an async one: a success becomes a
// trivially resolvable computation, an error becomes a pre-known error.
func ToAsync[T any](r fnkit.Result[T]) *async.Result[T] {
	if r.IsErr() {
		return async.Err[T](r.Err())
	}
	return async.Of(r.Value())
}

// Merge collects every errored result into one multi-error collection,
// in input order, discarding successes.
func Merge[T any](results []fnkit.Result[T]) multi.Result[T] {
	return multi.Merge(results)
}

// Reduce left-folds a non-empty slice with f. A single-element slice returns
// that element without invoking f; an empty one reports ErrEmptyReduction.
// A panic inside f is recovered and reported as the fold's error.
func Reduce[T any](values []T, f func(T, T) T) (acc T, err error) {
	if len(values) == 0 {
		var zero T
		return zero, fnkit.ErrEmptyReduction
	}
	if len(values) == 1 {
		return values[0], nil
	}
	defer func() {
		if p := recover(); p != nil {
			var zero T
			acc = zero
			err = fnkit.PanicAsError(p)
		}
	}()
	acc = values[0]
	for _, v := range values[1:] {
		acc = f(acc, v)
	}
	return acc, nil
}

// ReduceErrors left-folds a non-empty slice of errors with f, with the same
// degenerate-case behavior as Reduce.
func ReduceErrors(errs []error, f func(error, error) error) (error, error) {
	return Reduce(errs, f)
}

// Filter keeps the values of successful results satisfying the predicate,
// in original order. Errored results are dropped.
func Filter[T any](results []fnkit.Result[T], pred func(T) bool) []T {
	kept := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsOk() && pred(r.Value()) {
			kept = append(kept, r.Value())
		}
	}
	return kept
}

// FilterErrors keeps the errors of failed results satisfying the predicate,
// in original order.
func FilterErrors[T any](results []fnkit.Result[T], pred func(error) bool) []error {
	kept := make([]error, 0)
	for _, r := range results {
		if r.IsErr() && pred(r.Err()) {
			kept = append(kept, r.Err())
		}
	}
	return kept
}
