package choice

import (
	"fmt"

	"github.com/ib-77/fnkit/pkg/fnkit"
)

type state uint8

const (
	absent state = iota
	some
	fault
)

// Choice holds exactly one of a value, an error, or absence. The state is an
// explicit discriminant fixed at construction. The zero value is Absent.
type Choice[T any] struct {
	st    state
	value T
	err   error
}

func Some[T any](v T) Choice[T] {
	return Choice[T]{st: some, value: v}
}

func Err[T any](err error) Choice[T] {
	return Choice[T]{st: fault, err: err}
}

func Absent[T any]() Choice[T] {
	return Choice[T]{}
}

func (c Choice[T]) IsSome() bool {
	return c.st == some
}

func (c Choice[T]) IsErr() bool {
	return c.st == fault
}

func (c Choice[T]) IsAbsent() bool {
	return c.st == absent
}

func (c Choice[T]) Err() error {
	return c.err
}

// Unwrap returns the value; it fails with ErrUnwrapOnError on an error state
// and ErrEmptyValue on absence.
func (c Choice[T]) Unwrap() (T, error) {
	switch c.st {
	case some:
		return c.value, nil
	case fault:
		var zero T
		return zero, fmt.Errorf("%w: %w", fnkit.ErrUnwrapOnError, c.err)
	default:
		var zero T
		return zero, fnkit.ErrEmptyValue
	}
}

// Expect behaves like Unwrap with a caller-supplied diagnostic attached.
func (c Choice[T]) Expect(msg string) (T, error) {
	v, err := c.Unwrap()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", msg, err)
	}
	return v, nil
}

// MapErr transforms the error state; value and absence pass through.
func (c Choice[T]) MapErr(f func(error) error) Choice[T] {
	if c.st != fault {
		return c
	}
	return Err[T](f(c.err))
}

// OrElse returns the value when present, otherwise evaluates the fallback
// for both the error and absent states.
func (c Choice[T]) OrElse(fallback func() T) T {
	if c.st == some {
		return c.value
	}
	return fallback()
}

func (c Choice[T]) GetOrDefault(d T) T {
	if c.st == some {
		return c.value
	}
	return d
}

// Map applies f only when a value is present; error and absence pass through
// unchanged.
func Map[In, Out any](c Choice[In], f func(In) Out) Choice[Out] {
	switch c.st {
	case some:
		return Some(f(c.value))
	case fault:
		return Err[Out](c.err)
	default:
		return Absent[Out]()
	}
}

// AndThen chains a dependent Choice-producing step; anything but a present
// value collapses to absence, matching the optional chaining contract.
func AndThen[In, Out any](c Choice[In], f func(In) Choice[Out]) Choice[Out] {
	if c.st == some {
		return f(c.value)
	}
	return Absent[Out]()
}
