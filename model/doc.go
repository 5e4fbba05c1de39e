// Package model defines the declarative records consumed by the design
// pipeline: variable declarations, contrast declarations, and the raw
// subject-indexed covariate table produced by a loading collaborator.
//
// The records here are plain data. Structural validation happens in the
// loading layer (see package modelfile); the pipeline assumes declarations
// are well-formed and only enforces the contracts it depends on (a single
// id variable, known variable names).
package model
