package design

import (
	"errors"
	"fmt"
	"strings"

	"groupdesign/covtable"
	"groupdesign/model"
)

// ErrUnknownVariable indicates an infer contrast names a variable that was
// never declared. Declarations are pre-validated upstream; this guards the
// contract.
var ErrUnknownVariable = errors.New("design: contrast references an undeclared variable")

// Term is a named model effect: an ordered list of factor encoders whose
// encoded blocks occupy one contiguous range of design columns.
type Term struct {
	Name     string
	Encoders []FactorEncoder
}

// ColumnNames returns the term's design column names in order.
func (t Term) ColumnNames() []string {
	var names []string
	for _, e := range t.Encoders {
		names = append(names, e.ColumnNames()...)
	}

	return names
}

// TermList is the ordered list of model terms, intercept first.
type TermList []Term

// BuildTerms constructs the term list: the mandatory intercept, then one
// main-effect term per retained covariate, in table column order.
//
// Infer contrasts do not introduce terms of their own; every retained
// covariate is modeled. They are checked instead: an infer naming a
// variable dropped by the zero-variance filter records a warning (full
// holds the pre-filter table, so dropped and undeclared variables are
// told apart), and an undeclared variable is a hard ErrUnknownVariable.
// An infer naming several variables asks for an interaction term, which
// is not modeled; that is recorded as a warning as well.
func BuildTerms(filtered, full *covtable.Table, contrasts []model.ContrastSpec) (TermList, []string, error) {
	terms := TermList{{Name: InterceptColumn, Encoders: []FactorEncoder{interceptEncoder{}}}}
	for i := range filtered.Columns {
		col := &filtered.Columns[i]
		terms = append(terms, Term{Name: col.Name, Encoders: []FactorEncoder{NewEncoder(col)}})
	}

	var warnings []string
	for _, c := range contrasts {
		if c.Type != model.Infer {
			continue
		}
		if len(c.Variables) > 1 {
			warnings = append(warnings,
				fmt.Sprintf("not adding an interaction of %s to the design matrix; covariates are modeled as main effects only",
					strings.Join(c.Variables, ", ")))
		}
		for _, v := range c.Variables {
			if _, ok := filtered.Column(v); ok {
				continue
			}
			if _, wasThere := full.Column(v); wasThere {
				warnings = append(warnings,
					fmt.Sprintf("not adding term %q to design matrix because it has zero variance", v))
				continue
			}

			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownVariable, v)
		}
	}

	return terms, warnings, nil
}
