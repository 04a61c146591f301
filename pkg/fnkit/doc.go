// Package fnkit defines the core Result[T] value and the typed failure
// vocabulary shared by the richer containers (option, chain, multi, async).
//
// A Result[T] holds exactly one of a success value or an error, decided at
// construction. Combinators never mutate a result; every transformation
// produces a fresh instance.
//
// Key operations:
// - Ok/Err: construct a Result[T]
// - Map: transform the successful value (In -> Out)
// - MapErr: transform the error, successes pass through
// - OrElse/GetOrDefault: lazy and eager fallbacks
// - Unwrap/Expect: extract the value or report a typed failure
//
// Failures raised inside user-supplied transforms are recovered at the
// combinator boundary and converted into the error channel; nothing
// propagates past a combinator uncaught.
package fnkit
