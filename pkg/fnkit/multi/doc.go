// Package multi provides a Result[T] variant whose error channel is a
// collection, built for fan-in of independent sub-computations.
//
// Errors accumulate in input order, duplicates allowed. A result counts as
// multi-errored only when the collection holds more than one element; zero or
// one error is "clean" by that predicate, but Unwrap fails whenever the
// collection is non-empty.
//
// Key operations:
// - Ok/Err: construct a multi-error Result[T]
// - AddError: append to the collection, independent of the current slot
// - Map: transform the value, failing over when errors are present
// - MapErr: summarize the whole collection at once, clearing it
// - OrElse: fall back whenever the collection is non-empty
// - Merge/Flatten/Combine: batch reducers over many results
package multi
