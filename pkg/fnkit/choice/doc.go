// Package choice provides Choice[T], a three-state container holding a
// value, an error, or absence. It bridges the option and result families for
// call sites where both "failed" and "nothing there" are meaningful answers.
package choice
