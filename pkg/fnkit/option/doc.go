// Package option provides Option[T], a container holding a value or absence.
// Unlike the result family there is no error channel: an Option is either
// Some or Absent, decided at construction.
//
// Key operations:
// - Some/Absent/FromPtr: construct an Option[T]
// - Map/FlatMap/AndThen: transform or sequence dependent optional steps
// - Filter: demote a present value that fails a predicate
// - OrElse/GetOrDefault: lazy and eager fallbacks
// - Contains: structural equality against the held value
// - Unwrap: extract the value, failing with ErrEmptyValue on absence
//
// Every transformation is total; only Unwrap can fail, and only on absence.
package option
