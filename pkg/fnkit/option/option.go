package option

import (
	"iter"

	"github.com/ib-77/fnkit/pkg/fnkit"
)

// Option holds a value or absence. The zero value is Absent, so Options can
// be embedded safely.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func Absent[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr lifts a possibly-nil pointer into an Option, mirroring the common
// "value or nil" producer shape.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Absent[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsAbsent() bool {
	return !o.some
}

// Unwrap returns the contained value, or ErrEmptyValue on absence.
func (o Option[T]) Unwrap() (T, error) {
	if !o.some {
		var zero T
		return zero, fnkit.ErrEmptyValue
	}
	return o.value, nil
}

// Filter demotes a present value to absence when the predicate rejects it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return Absent[T]()
}

// OrElse returns the contained value, or evaluates the fallback on absence.
func (o Option[T]) OrElse(fallback func() T) T {
	if o.some {
		return o.value
	}
	return fallback()
}

func (o Option[T]) GetOrDefault(d T) T {
	if o.some {
		return o.value
	}
	return d
}

// Contains reports whether the option holds a value structurally equal to v.
// Always false on absence.
func (o Option[T]) Contains(v T) bool {
	return o.some && fnkit.DeepEqual(o.value, v)
}

// Iter yields the contained value if present, nothing otherwise.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

// Map applies f only when a value is present, otherwise the absent instance
// passes through unchanged. f is never called on absence.
func Map[In, Out any](o Option[In], f func(In) Out) Option[Out] {
	if !o.some {
		return Absent[Out]()
	}
	return Some(f(o.value))
}

// FlatMap sequences a dependent optional computation without double-wrapping.
func FlatMap[In, Out any](o Option[In], f func(In) Option[Out]) Option[Out] {
	if !o.some {
		return Absent[Out]()
	}
	return f(o.value)
}

// AndThen chains a dependent Option-producing step. Alias of FlatMap.
func AndThen[In, Out any](o Option[In], f func(In) Option[Out]) Option[Out] {
	return FlatMap(o, f)
}
