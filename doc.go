// Package groupdesign builds the numeric statistical design and the
// associated hypothesis contrasts for group-level analysis from a table
// of per-subject covariates and a declarative list of requested
// comparisons.
//
// The pipeline is strictly sequential: assemble the covariate table
// (covtable), expand the symbolic model into a numeric design matrix
// (design), run the advisory collinearity check, derive baseline and
// least-squares-means contrasts (contrast), and finally fall back to an
// intercept-only model when the design has at least as many columns as
// subjects. Identical inputs always produce bit-identical outputs; the
// computation is a pure function of the covariate table, the variable and
// contrast declarations, and the subject order.
//
// Subpackages:
//
//	model/     — variable and contrast declaration records
//	covtable/  — covariate table assembly
//	design/    — factor encoding, model expansion, collinearity check
//	contrast/  — baseline, least-squares-means, and joint-test contrasts
//	runindex/  — (subject, run, condition) keyed index utility
//	modelfile/ — loading collaborators: delimited tables, YAML model files
//
// Quick example:
//
//	variables := []model.VariableSpec{
//	  {Name: "Sub", Type: model.ID},
//	  {Name: "Age", Type: model.Continuous},
//	  {Name: "Group", Type: model.Categorical},
//	}
//	contrasts := []model.ContrastSpec{
//	  {Type: model.Infer, Variables: model.VariableList{"Age"}},
//	  {Name: "patientVsControl", Type: model.T,
//	    Variables: model.VariableList{"Group"},
//	    Values:    map[string]float64{"patient": 1, "control": -1}},
//	}
//	res, err := groupdesign.GroupDesign(raw, variables, contrasts, subjects, nil)
//
// The resulting (Regressors, Contrasts, ContrastNumbers, ContrastNames)
// quadruple is the sole hand-off contract to the downstream
// general-linear-model fitter.
package groupdesign
