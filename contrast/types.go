package contrast

// Contrast kinds, as consumed by the downstream general-linear-model
// fitter.
const (
	// TypeT is a single linear combination of design columns.
	TypeT = "T"
	// TypeF is a joint test over several T-contrasts, referenced by name.
	TypeF = "F"
)

// Contrast is one entry of the hand-off list. T entries carry Columns and
// Weights over exactly the design's column names in design order; F
// entries carry only the names of their constituent T-contrasts.
type Contrast struct {
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Columns      []string  `json:"columns,omitempty"`
	Weights      []float64 `json:"weights,omitempty"`
	Constituents []string  `json:"constituents,omitempty"`
}

// block is a named multi-row coefficient block before grouping. Row
// vectors are indexed by design column.
type block struct {
	name string
	rows [][]float64
}
