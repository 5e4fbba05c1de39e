package covtable

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"groupdesign/model"
)

// SubjectPrefix is the conventional subject-id prefix stripped during
// normalization when every id in the raw table carries it.
const SubjectPrefix = "sub-"

// Column is one typed covariate column. Continuous columns populate
// Floats (NaN marks a missing cell); categorical columns populate Cells
// ("" marks a missing cell) and Levels, the observed level set in
// first-encountered order.
type Column struct {
	Name   string
	Type   model.VariableType
	Floats []float64
	Cells  []string
	Levels []string
}

// DistinctObserved returns the number of distinct observed values in the
// column, ignoring missing cells.
func (c *Column) DistinctObserved() int {
	switch c.Type {
	case model.Continuous:
		seen := make(map[float64]struct{}, len(c.Floats))
		for _, v := range c.Floats {
			if math.IsNaN(v) {
				continue
			}
			seen[v] = struct{}{}
		}

		return len(seen)
	case model.Categorical:
		return len(c.Levels)
	default:
		return 0
	}
}

// Table is an immutable covariate table: rows in requested subject order,
// categorical columns first and continuous columns next, each kind in
// declaration order.
type Table struct {
	Subjects []string
	Columns  []Column
}

// NumRows returns the number of subject rows.
func (t *Table) NumRows() int { return len(t.Subjects) }

// Column returns the named column, or false when absent.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}

	return nil, false
}

// Drop returns a copy of the table without the named columns. Subject rows
// are shared, never copied; tables are treated as immutable throughout.
func (t *Table) Drop(names ...string) *Table {
	dropped := make(map[string]struct{}, len(names))
	for _, n := range names {
		dropped[n] = struct{}{}
	}
	out := &Table{Subjects: t.Subjects}
	for _, c := range t.Columns {
		if _, ok := dropped[c.Name]; ok {
			continue
		}
		out.Columns = append(out.Columns, c)
	}

	return out
}

// Build assembles the covariate table for the requested subjects.
//
// The declarations must contain an id-type variable (ErrNoIDVariable
// otherwise). Raw subject ids are normalized: when every id starts with
// SubjectPrefix the prefix is stripped uniformly. Every requested subject
// must be present after normalization (ErrSubjectMissing). Continuous
// cells must parse as floats (ErrBadNumericValue); empty or absent cells
// are missing.
func Build(raw model.RawTable, variables []model.VariableSpec, subjects []string) (*Table, error) {
	hasID := false
	for _, v := range variables {
		if v.Type == model.ID {
			hasID = true
			break
		}
	}
	if !hasID {
		return nil, ErrNoIDVariable
	}

	rows := normalizeIDs(raw)

	for _, s := range subjects {
		if _, ok := rows[s]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrSubjectMissing, s)
		}
	}

	// Categorical columns first, continuous columns next, each kind in
	// declaration order.
	t := &Table{Subjects: subjects}
	for _, v := range variables {
		if v.Type != model.Categorical {
			continue
		}
		t.Columns = append(t.Columns, buildCategorical(v.Name, rows, subjects))
	}
	for _, v := range variables {
		if v.Type != model.Continuous {
			continue
		}
		col, err := buildContinuous(v.Name, rows, subjects)
		if err != nil {
			return nil, err
		}
		t.Columns = append(t.Columns, col)
	}

	return t, nil
}

func buildContinuous(name string, rows model.RawTable, subjects []string) (Column, error) {
	col := Column{Name: name, Type: model.Continuous, Floats: make([]float64, len(subjects))}
	for i, s := range subjects {
		cell := rows[s][name]
		if cell == "" {
			col.Floats[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return Column{}, fmt.Errorf("%w: column %q, subject %q, value %q", ErrBadNumericValue, name, s, cell)
		}
		col.Floats[i] = f
	}

	return col, nil
}

func buildCategorical(name string, rows model.RawTable, subjects []string) Column {
	col := Column{Name: name, Type: model.Categorical, Cells: make([]string, len(subjects))}
	seen := make(map[string]struct{})
	for i, s := range subjects {
		cell := rows[s][name]
		col.Cells[i] = cell
		if cell == "" {
			continue
		}
		if _, ok := seen[cell]; !ok {
			seen[cell] = struct{}{}
			col.Levels = append(col.Levels, cell)
		}
	}

	return col
}

// normalizeIDs strips the conventional subject prefix when every raw id
// carries it; otherwise ids pass through unchanged.
func normalizeIDs(raw model.RawTable) model.RawTable {
	all := len(raw) > 0
	for id := range raw {
		if !strings.HasPrefix(id, SubjectPrefix) {
			all = false
			break
		}
	}
	if !all {
		return raw
	}
	out := make(model.RawTable, len(raw))
	for id, row := range raw {
		out[strings.TrimPrefix(id, SubjectPrefix)] = row
	}

	return out
}
