package groupdesign

import (
	"log/slog"

	"groupdesign/contrast"
	"groupdesign/covtable"
	"groupdesign/design"
	"groupdesign/model"
)

// interceptColumn is the lower-case column name of the fallback design.
const interceptColumn = "intercept"

// GroupDesign builds the design matrix and hypothesis contrasts for a
// group-level analysis.
//
// raw is the loading collaborator's subject-indexed table; variables and
// contrasts are the pre-validated declarations; subjects fixes the row
// order of every output. opts may be nil for defaults.
//
// Hard failures (no id variable, a requested subject missing from the
// table, an unparsable or missing continuous cell in a modeled
// covariate, an undeclared variable in a contrast) abort before any
// output. Everything else is a recoverable
// warning: zero-variance covariates are dropped, contrasts over dropped
// covariates are skipped, multicollinearity is reported but never acted
// on, and a degenerate design (columns >= subjects) is replaced by the
// intercept-only model.
func GroupDesign(raw model.RawTable, variables []model.VariableSpec, contrasts []model.ContrastSpec, subjects []string, opts *Options) (*Result, error) {
	var logger *slog.Logger
	if opts != nil {
		logger = opts.Logger
	}

	table, err := covtable.Build(raw, variables, subjects)
	if err != nil {
		return nil, err
	}

	// A design always has at least the intercept column, so zero subjects
	// can only ever be the degenerate model.
	if len(subjects) == 0 {
		warnings := []string{"reverting to intercept-only design because no subjects were requested"}
		res := InterceptOnlyDesign(0)
		res.Warnings = warnings
		logWarnings(logger, warnings)

		return res, nil
	}

	m, filtered, warnings, err := design.Expand(table, contrasts)
	if err != nil {
		return nil, err
	}

	report, err := design.CheckCollinearity(m.Values)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Info("checked for multicollinearity in the model",
			"max_singular", report.MaxSingular,
			"min_singular", report.MinSingular,
			"rank", report.Rank)
	}
	if report.Degenerate {
		warnings = append(warnings,
			"detected multicollinearity in the computed group-level analysis model, please double-check your model design")
	}

	cons, numbers, names, cwarnings := contrast.Build(m, contrasts, filtered)
	warnings = append(warnings, cwarnings...)

	if m.NumCols() >= m.NumRows() {
		warnings = append(warnings, "reverting to intercept-only design because the model has at least as many columns as subjects")
		res := InterceptOnlyDesign(len(subjects))
		res.Collinearity = report
		res.Warnings = warnings
		logWarnings(logger, warnings)

		return res, nil
	}

	res := &Result{
		Regressors:      regressorTable(m),
		Contrasts:       cons,
		ContrastNumbers: numbers,
		ContrastNames:   names,
		Collinearity:    report,
		Warnings:        warnings,
	}
	logWarnings(logger, warnings)

	return res, nil
}

// InterceptOnlyDesign is the degenerate-model fallback: a single constant
// regressor with one T-contrast over it, for n subjects.
func InterceptOnlyDesign(n int) *Result {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1.0
	}

	return &Result{
		Regressors: RegressorTable{
			Columns: []string{interceptColumn},
			Values:  map[string][]float64{interceptColumn: ones},
		},
		Contrasts: []contrast.Contrast{{
			Name:    interceptColumn,
			Type:    contrast.TypeT,
			Columns: []string{interceptColumn},
			Weights: []float64{1},
		}},
		ContrastNumbers: []string{"01"},
		ContrastNames:   []string{interceptColumn},
	}
}

// regressorTable converts the design matrix into the column-keyed
// hand-off form, preserving column order.
func regressorTable(m *design.Matrix) RegressorTable {
	rt := RegressorTable{
		Columns: m.Columns,
		Values:  make(map[string][]float64, len(m.Columns)),
	}
	rows := m.NumRows()
	for j, name := range m.Columns {
		col := make([]float64, rows)
		for i := 0; i < rows; i++ {
			col[i] = m.Values.At(i, j)
		}
		rt.Values[name] = col
	}

	return rt
}

func logWarnings(logger *slog.Logger, warnings []string) {
	if logger == nil {
		return
	}
	for _, w := range warnings {
		logger.Warn(w)
	}
}
