package fnkit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyValue is reported when unwrapping an absent optional value.
	ErrEmptyValue = errors.New("cannot unwrap an empty value")
	// ErrUnwrapOnError is reported when unwrapping a result in error state.
	ErrUnwrapOnError = errors.New("cannot unwrap an error value")
	// ErrNoCompletion is reported by a race over an empty input sequence.
	ErrNoCompletion = errors.New("no completion")
	// ErrEmptyReduction is reported by a reduction over an empty input sequence.
	ErrEmptyReduction = errors.New("empty reduction")
)

// ChainError is the failure reported when unwrapping a chained result that
// carries a non-empty error trail. It keeps the full history, not just the
// error that terminated the chain.
type ChainError struct {
	History []error
}

func (e *ChainError) Error() string {
	return "chain failed: " + joinMessages(e.History)
}

func (e *ChainError) Unwrap() []error {
	return e.History
}

// MultiError is the failure reported when unwrapping a multi-error result
// with one or more accumulated errors. It is also the aggregate failure of
// collect-all combinators such as Parallel.
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	return fmt.Sprintf("%d error(s): %s", len(e.Errors), joinMessages(e.Errors))
}

func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// PanicError wraps a value recovered from a panicking user transform.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// PanicAsError converts a recovered panic value into an error suitable for a
// container's error channel.
func PanicAsError(p any) error {
	return &PanicError{Value: p}
}

func joinMessages(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	return strings.Join(msgs, "; ")
}
