// Package covtable assembles a subject-indexed covariate table from a raw
// loaded table and the model's variable declarations.
//
// Building a table normalizes subject identifiers (a uniform "sub-" prefix
// is stripped), casts columns to their declared kinds, restricts rows to
// the requested subject list, and fixes both row order (the requested
// subject order) and column order (categorical columns first, continuous
// columns next, each kind in declaration order). The result is immutable
// and feeds the model expansion in package design.
package covtable
