// Package chain provides a Result[T] variant that remembers the trail of
// errors met across a sequence of operations while exposing a single current
// value/error slot.
//
// An errored chain short-circuits: chained functions are never invoked once
// the current slot is an error, but the accumulated trail travels with every
// derived result. The trail only grows; a success never truncates it.
//
// Key operations:
// - Ok/Err: construct a chained Result[T]
// - Chain: compose a function returning a new chained result (type-changing)
// - Map: transform the successful value (type-changing)
// - Then/MapValue: same-type method forms of Chain and Map
// - MapErr: transform the current error in place
// - OrElse: fall back only when errored with a non-empty trail
// - Unwrap/Expect: extract the value or fail with the full ChainError trail
package chain
