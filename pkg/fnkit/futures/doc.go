// Package futures provides the task primitive used by the asynchronous
// combinators: a one-shot Future[T] that can be completed exactly once and
// read by many waiters.
//
// Key operations:
// - New/FromFunc: create a Future, optionally running a function to completion
// - Complete/Fail/Cancel: finish the future; the first completion wins
// - Get: block for the outcome, honoring context cancellation
// - ResolveAll: await every future, collecting outcomes in input order
// - FirstOf: await only the first completion, abandoning the rest
package futures
