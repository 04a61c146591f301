package chain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/fnkit/pkg/fnkit"
)

// Result holds a current value-or-error slot plus the ordered trail of every
// error accumulated across the chain so far. When the current slot is an
// error, that error is the last element of the trail.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	trail     []error
	isOk      bool
}

var _ fnkit.WithHistory[any] = Result[any]{}

func Ok[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		trail:     []error{err},
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromResult lifts a plain result into a chained one; an error seeds the trail.
func FromResult[T any](r fnkit.Result[T]) Result[T] {
	if r.IsOk() {
		return Ok(r.Value())
	}
	return Err[T](r.Err())
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsOk() bool {
	return r.isOk
}

func (r Result[T]) IsErr() bool {
	return !r.isOk
}

// Trail returns a copy of the accumulated error trail, oldest first.
func (r Result[T]) Trail() []error {
	return append([]error(nil), r.trail...)
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Unwrap returns the value, or a ChainError carrying the full trail when the
// current slot is an error.
func (r Result[T]) Unwrap() (T, error) {
	if !r.isOk {
		var zero T
		return zero, &fnkit.ChainError{History: r.Trail()}
	}
	return r.value, nil
}

// Expect behaves like Unwrap with a caller-supplied diagnostic attached.
func (r Result[T]) Expect(msg string) (T, error) {
	if !r.isOk {
		var zero T
		return zero, fmt.Errorf("%s: %w", msg, &fnkit.ChainError{History: r.Trail()})
	}
	return r.value, nil
}

// OrElse evaluates the fallback only when the current slot is an error and
// the trail is non-empty; "no error yet" never triggers it.
func (r Result[T]) OrElse(fallback func() Result[T]) Result[T] {
	if !r.isOk && len(r.trail) > 0 {
		return fallback()
	}
	return r
}

// MapErr transforms the current error in place; the trail tail follows it.
// A successful result passes through untouched.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.isOk {
		return r
	}
	mapped := f(r.err)
	trail := r.Trail()
	if len(trail) > 0 {
		trail[len(trail)-1] = mapped
	} else {
		trail = []error{mapped}
	}
	return Result[T]{
		err:       mapped,
		trail:     trail,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Recover turns an errored chain back into a success by applying f to the
// current error. The trail is preserved: recovery never truncates history,
// so later steps still see how the chain got here.
func (r Result[T]) Recover(f func(error) T) Result[T] {
	if r.isOk {
		return r
	}
	return Result[T]{
		value:     f(r.err),
		trail:     r.Trail(),
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Then is the same-type method form of Chain.
func (r Result[T]) Then(f func(T) Result[T]) Result[T] {
	return Chain(r, f)
}

// MapValue is the same-type method form of Map.
func (r Result[T]) MapValue(f func(T) T) Result[T] {
	return Map(r, f)
}

// Chain composes f onto the chain. An errored chain short-circuits: f is
// never invoked and the same error and trail travel on. On success f runs,
// its own trail is appended to the inherited one, and a panic inside f is
// recovered into a new error state.
func Chain[In, Out any](r Result[In], f func(In) Result[Out]) (out Result[Out]) {
	if !r.isOk {
		return carryErr[Out](r.err, r.Trail())
	}
	defer func() {
		if p := recover(); p != nil {
			out = failWith[Out](fnkit.PanicAsError(p), r.Trail())
		}
	}()
	next := f(r.value)
	next.trail = append(r.Trail(), next.trail...)
	return next
}

// Map behaves like Chain but f returns a raw value; errors still
// short-circuit and a panic inside f becomes a new error state.
func Map[In, Out any](r Result[In], f func(In) Out) (out Result[Out]) {
	if !r.isOk {
		return carryErr[Out](r.err, r.Trail())
	}
	defer func() {
		if p := recover(); p != nil {
			out = failWith[Out](fnkit.PanicAsError(p), r.Trail())
		}
	}()
	mapped := Ok(f(r.value))
	mapped.trail = r.Trail()
	return mapped
}

// carryErr propagates an existing error state without growing the trail.
func carryErr[T any](err error, trail []error) Result[T] {
	return Result[T]{
		err:       err,
		trail:     trail,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// failWith records a freshly observed error, appending it to the trail.
func failWith[T any](err error, trail []error) Result[T] {
	return Result[T]{
		err:       err,
		trail:     append(trail, err),
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}
