package design

import (
	"fmt"

	"groupdesign/covtable"
	"groupdesign/model"
)

// InterceptColumn is the name of the constant column and its term.
const InterceptColumn = "Intercept"

// Value is one covariate cell as seen by an encoder: Float carries a
// continuous value, Level a categorical level. Only the field matching
// the encoder's kind is read.
type Value struct {
	Float float64
	Level string
}

// Source provides covariate values addressable by variable name and row
// index. Both the fitted covariate table and the least-squares-means
// reference grid satisfy it.
type Source interface {
	NumRows() int
	Value(variable string, row int) Value
}

// FactorEncoder maps one covariate cell into its design-matrix columns.
// Encoders are fitted once, against the covariate table, and then applied
// unchanged to any Source, which keeps the fitted design and the
// reference design on the same encoding convention.
type FactorEncoder interface {
	// Factor returns the source variable name, or "" for the intercept.
	Factor() string
	// ColumnNames returns the encoder's output column names in order.
	ColumnNames() []string
	// Encode returns the encoded values for one cell, one per column.
	Encode(v Value) []float64
}

// NewEncoder fits an encoder to a covariate column: continuous columns
// pass through as a single column, categorical columns are dummy-coded
// against their first observed level.
func NewEncoder(col *covtable.Column) FactorEncoder {
	if col.Type == model.Continuous {
		return continuousEncoder{name: col.Name}
	}
	enc := categoricalEncoder{name: col.Name}
	if len(col.Levels) > 0 {
		enc.rest = col.Levels[1:]
	}
	for _, level := range enc.rest {
		enc.columns = append(enc.columns, fmt.Sprintf("%s[T.%s]", col.Name, level))
	}

	return enc
}

// interceptEncoder emits the constant column.
type interceptEncoder struct{}

func (interceptEncoder) Factor() string         { return "" }
func (interceptEncoder) ColumnNames() []string  { return []string{InterceptColumn} }
func (interceptEncoder) Encode(Value) []float64 { return []float64{1} }

// continuousEncoder passes a numeric covariate through unchanged.
type continuousEncoder struct {
	name string
}

func (e continuousEncoder) Factor() string        { return e.name }
func (e continuousEncoder) ColumnNames() []string { return []string{e.name} }
func (e continuousEncoder) Encode(v Value) []float64 {
	return []float64{v.Float}
}

// categoricalEncoder dummy-codes a factor against its baseline level: one
// indicator column per non-baseline level. A missing or unknown level
// encodes as all zeros, indistinguishable from the baseline.
type categoricalEncoder struct {
	name    string
	rest    []string
	columns []string
}

func (e categoricalEncoder) Factor() string        { return e.name }
func (e categoricalEncoder) ColumnNames() []string { return e.columns }
func (e categoricalEncoder) Encode(v Value) []float64 {
	out := make([]float64, len(e.rest))
	for i, level := range e.rest {
		if v.Level == level {
			out[i] = 1
		}
	}

	return out
}
