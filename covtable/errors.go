package covtable

import "errors"

var (
	// ErrNoIDVariable indicates the declarations contain no id-type variable.
	ErrNoIDVariable = errors.New("covtable: missing id variable, cannot specify model")
	// ErrSubjectMissing indicates a requested subject id is absent from the table.
	ErrSubjectMissing = errors.New("covtable: requested subject not present in table")
	// ErrBadNumericValue indicates a continuous cell could not be parsed.
	ErrBadNumericValue = errors.New("covtable: continuous column holds a non-numeric value")
)
