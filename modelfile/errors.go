package modelfile

import "errors"

var (
	// ErrMissingIDColumn indicates the table header lacks the id column.
	ErrMissingIDColumn = errors.New("modelfile: id column not present in table header")
	// ErrDuplicateSubject indicates two table rows share a subject id.
	ErrDuplicateSubject = errors.New("modelfile: duplicate subject id in table")
	// ErrInvalidModel indicates a structurally invalid model declaration.
	ErrInvalidModel = errors.New("modelfile: invalid model declaration")
)
