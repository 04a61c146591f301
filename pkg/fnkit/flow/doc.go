// Package flow contains the stateless combinator layer that operates across
// the container family, handling slices of results and computations
// uniformly.
//
// Synchronous: Chain, MapValue, MapError, OrElse, HandleError, Reduce,
// ReduceErrors, Filter, FilterErrors, Merge, plus lifts into the richer
// containers (ToChained, ToMulti, ToAsync).
//
// Asynchronous: Parallel/ParallelN (await all, output order = input order,
// collect-all failure policy), Race (first completion wins, losers
// abandoned), Sequence (strict left-to-right resolution), ReduceAsync,
// FilterAsync, MergeAsync (failures only, as a multi-error result).
package flow
