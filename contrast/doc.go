// Package contrast derives the hypothesis contrasts for a fitted design:
// automatic per-term baseline contrasts, least-squares-means contrasts for
// declared comparisons, and the grouping of multi-row blocks into joint
// F-tests.
//
// Least-squares means are computed against a reference grid — the
// cross-product of one representative value per covariate (0.0 for
// continuous, every observed level for categorical) — encoded with the
// very same fitted encoders as the design matrix, so every contrast
// vector is expressed over exactly the design's column names, in the
// design's column order.
package contrast
