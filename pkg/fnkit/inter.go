package fnkit

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for containers that hold a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the computation failed
	Err() error
	// IsOk returns true if the computation succeeded
	IsOk() bool
}

// WithHistory extends WithError with an accumulated error trail
type WithHistory[T any] interface {
	WithError[T]
	// Trail returns every error accumulated so far, oldest first
	Trail() []error
}

var _ WithError[any] = Result[any]{}
