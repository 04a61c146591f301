package fnkit

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// DeepEqual reports structural equality of two contained values. It never
// panics, which keeps the operations built on it total.
func DeepEqual(a, b any) bool {
	if IsNil(a) && IsNil(b) {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// GetErrors flattens an error into its component errors, unwrapping
// aggregates such as ChainError, MultiError and errors.Join values.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
