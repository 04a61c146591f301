package fnkit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds exactly one of a success value or an error. The variant is
// fixed at construction and never inferred from the payload.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isOk      bool
}

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
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
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

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Unwrap returns the success value, or ErrUnwrapOnError carrying the
// contained error when the result is in error state.
func (r Result[T]) Unwrap() (T, error) {
	if !r.isOk {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrUnwrapOnError, r.err)
	}
	return r.value, nil
}

// Expect behaves like Unwrap but attaches the caller-supplied diagnostic
// message to the failure.
func (r Result[T]) Expect(msg string) (T, error) {
	if !r.isOk {
		var zero T
		return zero, fmt.Errorf("%s: %w: %w", msg, ErrUnwrapOnError, r.err)
	}
	return r.value, nil
}

// OrElse returns the value if the result is Ok, otherwise evaluates the
// fallback. The fallback is lazy and runs only on error.
func (r Result[T]) OrElse(fallback func() T) T {
	if r.isOk {
		return r.value
	}
	return fallback()
}

func (r Result[T]) GetOrDefault(d T) T {
	if r.isOk {
		return r.value
	}
	return d
}

// MapErr transforms the error; an Ok result passes through untouched.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.isOk {
		return r
	}
	return Err[T](f(r.err))
}

// Map applies f to the success value only; errors pass through untouched and
// f is never invoked on an error state. A panic inside f is recovered and
// converted into the error channel.
func Map[In, Out any](r Result[In], f func(In) Out) (out Result[Out]) {
	if !r.isOk {
		return Err[Out](r.err)
	}
	defer func() {
		if p := recover(); p != nil {
			out = Err[Out](PanicAsError(p))
		}
	}()
	return Ok(f(r.value))
}
