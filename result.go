package groupdesign

import (
	"groupdesign/contrast"
	"groupdesign/design"
)

// RegressorTable maps each design column name to its ordered per-subject
// values, in the exact input subject order. Columns preserves the design
// matrix's column order.
type RegressorTable struct {
	Columns []string             `json:"columns"`
	Values  map[string][]float64 `json:"values"`
}

// Result is the complete, consistent output of a GroupDesign run.
// Contrasts, ContrastNumbers and ContrastNames are positionally aligned
// over the externally visible contrasts: each stand-alone T entry and
// each F group as a whole.
type Result struct {
	Regressors      RegressorTable      `json:"regressors"`
	Contrasts       []contrast.Contrast `json:"contrasts"`
	ContrastNumbers []string            `json:"contrast_numbers"`
	ContrastNames   []string            `json:"contrast_names"`
	Collinearity    design.Report       `json:"-"`
	Warnings        []string            `json:"-"`
}
