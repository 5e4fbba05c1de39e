// Package design expands a covariate table into a numeric design matrix.
//
// Expansion is deliberately explicit: there is no symbolic formula
// algebra. Each model term is an ordered list of FactorEncoder strategies
// (continuous pass-through, categorical baseline dummy coding, the
// constant intercept), and the design matrix is the concatenation of the
// per-term encoded blocks, with a contiguous column range recorded per
// term. The same fitted encoders are reused by package contrast to encode
// the least-squares-means reference grid, so the two matrices share one
// encoding convention by construction.
//
// The package also provides the advisory collinearity check: singular
// values and numeric rank of the design, never altering the model.
package design
