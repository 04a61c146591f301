// Package async provides Result[T], the asynchronous projection of a result:
// a pending computation paired with an optional pre-known error, resolved at
// most once.
//
// Await is the sole suspension point. Resolution is memoized: the first Await
// drives the computation and caches the outcome, later Awaits return the
// cache without recomputation. A pre-known error always wins: the computation
// is never run once the error slot is set at construction.
//
// Key operations:
// - From/Of/Err/FromFuture: construct an async Result[T]
// - Await: drive the computation to completion and cache the outcome
// - Map/MapAsync: transform the eventual value (type-changing)
// - MapErr: transform a pre-known error, no-op otherwise
// - OrElse: fall back to another async result on a pre-known error
// - Unwrap/Expect: fail on a pre-known error, resolve otherwise
package async
