package multi

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/fnkit/pkg/fnkit"
	"github.com/ib-77/fnkit/pkg/fnkit/chain"
)

// Result holds a current value slot and an order-preserving collection of
// every error gathered from a batch or chain of sub-computations.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	hasValue  bool
	errs      []error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T any](errs ...error) Result[T] {
	return Result[T]{
		errs:      append([]error(nil), errs...),
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// AddError appends to the error collection. Pure accumulation: the current
// slot is untouched.
func (r *Result[T]) AddError(err error) {
	r.errs = append(r.errs, err)
}

// WithError returns a new result with err appended to a fresh copy of the
// collection. The receiver is untouched, so results derived from one base
// never share a backing array.
func (r Result[T]) WithError(err error) Result[T] {
	return Result[T]{
		value:     r.value,
		hasValue:  r.hasValue,
		errs:      append(append([]error(nil), r.errs...), err),
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Errors returns a copy of the collection, in accumulation order.
func (r Result[T]) Errors() []error {
	return append([]error(nil), r.errs...)
}

// IsMultiErr reports whether more than one error has accumulated.
func (r Result[T]) IsMultiErr() bool {
	return len(r.errs) > 1
}

func (r Result[T]) HasErrors() bool {
	return len(r.errs) > 0
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) IsOk() bool {
	return r.hasValue && len(r.errs) == 0
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Unwrap returns the value, or a MultiError whenever the collection is
// non-empty, regardless of the current slot.
func (r Result[T]) Unwrap() (T, error) {
	if len(r.errs) > 0 {
		var zero T
		return zero, &fnkit.MultiError{Errors: r.Errors()}
	}
	return r.value, nil
}

// MapErr applies f to the entire collection at once, producing one summary
// value and leaving a fresh, empty collection behind. Without errors the
// result passes through untouched.
func (r Result[T]) MapErr(f func([]error) T) Result[T] {
	if len(r.errs) == 0 {
		return r
	}
	return Ok(f(r.Errors()))
}

// OrElse evaluates the fallback whenever the collection is non-empty.
func (r Result[T]) OrElse(fallback func() Result[T]) Result[T] {
	if len(r.errs) > 0 {
		return fallback()
	}
	return r
}

// Map applies f to the value when no errors are present, recovering a panic
// inside f into a fresh single-element collection. With errors present the
// current slot is marked failed and the collection travels on unchanged.
func Map[In, Out any](r Result[In], f func(In) Out) (out Result[Out]) {
	if len(r.errs) > 0 {
		return Result[Out]{
			errs:      r.Errors(),
			createdAt: time.Now().UTC(),
			id:        uuid.New(),
		}
	}
	defer func() {
		if p := recover(); p != nil {
			out = Err[Out](fnkit.PanicAsError(p))
		}
	}()
	return Ok(f(r.value))
}

// Merge collects every errored result in the input into one collection,
// in input order, discarding successes.
func Merge[T any](results []fnkit.Result[T]) Result[T] {
	merged := Err[T]()
	for _, r := range results {
		if r.IsErr() {
			merged.AddError(r.Err())
		}
	}
	return merged
}

// Flatten folds the trails of many chained results into one collection,
// preserving input order within and across results.
func Flatten[T any](results []chain.Result[T]) Result[T] {
	flat := Err[T]()
	for _, r := range results {
		for _, err := range r.Trail() {
			flat.AddError(err)
		}
	}
	return flat
}

// Combine partitions a batch of chained results by variant: successful values
// fold into the value slot in input order, every trail error lands in the
// collection.
func Combine[T any](results []chain.Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	errs := make([]error, 0)
	for _, r := range results {
		if r.IsOk() {
			values = append(values, r.Value())
		}
		errs = append(errs, r.Trail()...)
	}
	combined := Ok(values)
	combined.errs = errs
	return combined
}
