// Package runindex provides a deterministic three-level keyed index over
// (subject, run, condition) keys, used to address per-subject artifacts
// such as extracted signals or first-level statistics.
//
// The index replaces variadic, dynamically shaped nested mappings with
// explicit presence/absence semantics. A level key may be the empty
// string, meaning "unscoped": an entry stored unscoped at some level
// answers queries for any concrete key at that level when no concrete
// entry exists. Collapsing is likewise explicit — Collapse returns the
// value only when exactly one entry exists — instead of an implicit
// singleton transparency rule.
//
// Iteration order is insertion order throughout, so every operation is
// reproducible.
package runindex
