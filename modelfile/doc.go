// Package modelfile implements the loading collaborators in front of the
// design pipeline: delimited covariate tables (TSV or CSV, chosen by file
// extension) and YAML model files declaring variables, contrasts, and the
// subject list.
//
// Structural validation of the declarations happens here, so the core
// packages can assume well-formed records: exactly one id variable, known
// variable and contrast types, t-contrasts over exactly one variable with
// a non-empty weight map.
package modelfile
