package design

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"groupdesign/covtable"
	"groupdesign/model"
)

// ErrMissingValue indicates a modeled continuous covariate has no value
// for a requested subject. Missing cells in zero-variance covariates are
// tolerated, as the filter removes those columns before this check.
var ErrMissingValue = errors.New("design: missing value for modeled covariate")

// TermRange records the contiguous half-open column range [Start, End)
// occupied by one term of the design matrix.
type TermRange struct {
	Term       string
	Start, End int
}

// Matrix is the numeric design matrix: ordered column names, one row per
// subject in input order, and the fitted terms with their column ranges.
type Matrix struct {
	Columns []string
	Values  *mat.Dense
	Terms   TermList
	Ranges  []TermRange
}

// NumRows returns the number of subject rows.
func (m *Matrix) NumRows() int {
	r, _ := m.Values.Dims()

	return r
}

// NumCols returns the number of design columns.
func (m *Matrix) NumCols() int { return len(m.Columns) }

// FilterZeroVariance returns the table without covariates that hold at
// most one distinct observed value, with one warning per dropped column.
// Missing cells are ignored when counting.
func FilterZeroVariance(t *covtable.Table) (*covtable.Table, []string) {
	var dropped []string
	var warnings []string
	for i := range t.Columns {
		if t.Columns[i].DistinctObserved() <= 1 {
			dropped = append(dropped, t.Columns[i].Name)
			warnings = append(warnings,
				fmt.Sprintf("removing covariate %q from the model because it has zero variance", t.Columns[i].Name))
		}
	}
	if len(dropped) == 0 {
		return t, nil
	}

	return t.Drop(dropped...), warnings
}

// Expand runs the model expansion: zero-variance filtering, term
// construction, and encoding. It returns the design matrix and the
// filtered covariate table (which downstream contrast construction reuses
// for its reference grid), plus the recorded warnings.
func Expand(t *covtable.Table, contrasts []model.ContrastSpec) (*Matrix, *covtable.Table, []string, error) {
	filtered, warnings := FilterZeroVariance(t)

	if err := checkComplete(filtered); err != nil {
		return nil, nil, nil, err
	}

	terms, termWarnings, err := BuildTerms(filtered, t, contrasts)
	if err != nil {
		return nil, nil, nil, err
	}
	warnings = append(warnings, termWarnings...)

	m := EncodeSource(terms, TableSource(filtered))

	return m, filtered, warnings, nil
}

// EncodeSource applies a fitted term list to any value source, producing
// the encoded matrix with per-term column ranges. The fitted design and
// the reference design are both built through here.
func EncodeSource(terms TermList, src Source) *Matrix {
	m := &Matrix{Terms: terms}
	for _, t := range terms {
		start := len(m.Columns)
		m.Columns = append(m.Columns, t.ColumnNames()...)
		m.Ranges = append(m.Ranges, TermRange{Term: t.Name, Start: start, End: len(m.Columns)})
	}

	rows := src.NumRows()
	m.Values = mat.NewDense(rows, len(m.Columns), nil)
	for i := 0; i < rows; i++ {
		j := 0
		for _, t := range terms {
			for _, e := range t.Encoders {
				var v Value
				if e.Factor() != "" {
					v = src.Value(e.Factor(), i)
				}
				for _, x := range e.Encode(v) {
					m.Values.Set(i, j, x)
					j++
				}
			}
		}
	}

	return m
}

// checkComplete rejects retained continuous covariates with missing
// cells: a NaN regressor has no defined hand-off form and breaks the
// numeric checks downstream. Missing categorical cells encode as the
// baseline and need no guard.
func checkComplete(t *covtable.Table) error {
	for i := range t.Columns {
		col := &t.Columns[i]
		if col.Type != model.Continuous {
			continue
		}
		for row, v := range col.Floats {
			if math.IsNaN(v) {
				return fmt.Errorf("%w: variable %q, subject %q", ErrMissingValue, col.Name, t.Subjects[row])
			}
		}
	}

	return nil
}

// tableSource adapts a covariate table to the Source interface.
type tableSource struct {
	t *covtable.Table
}

// TableSource exposes a covariate table as an encoder Source.
func TableSource(t *covtable.Table) Source { return tableSource{t: t} }

func (s tableSource) NumRows() int { return s.t.NumRows() }

func (s tableSource) Value(variable string, row int) Value {
	col, ok := s.t.Column(variable)
	if !ok {
		return Value{}
	}
	if col.Type == model.Continuous {
		return Value{Float: col.Floats[row]}
	}

	return Value{Level: col.Cells[row]}
}
