package model

import "gopkg.in/yaml.v3"

// VariableType classifies a declared covariate.
type VariableType string

const (
	// ID marks the column holding subject identifiers. Exactly one id
	// variable must be declared per model.
	ID VariableType = "id"
	// Continuous marks a numeric covariate, kept as a single design column.
	Continuous VariableType = "continuous"
	// Categorical marks a factor covariate, dummy-coded against a baseline.
	Categorical VariableType = "categorical"
)

// ContrastType classifies a requested comparison.
type ContrastType string

const (
	// T requests a least-squares-means contrast over one categorical
	// variable, weighted per level.
	T ContrastType = "t"
	// Infer requests that the named variable(s) be modeled as a main
	// effect; it adds no contrast entry of its own.
	Infer ContrastType = "infer"
)

// VariableSpec declares one covariate of the model.
//
// Levels optionally records the declared level order of a categorical
// variable. The pipeline keys off observed levels; Levels is carried for
// upstream validation and display.
type VariableSpec struct {
	Name   string       `yaml:"name" json:"name"`
	Type   VariableType `yaml:"type" json:"type"`
	Levels []string     `yaml:"levels,omitempty" json:"levels,omitempty"`
}

// ContrastSpec declares one requested comparison.
//
// Variables names the covariates the contrast concerns: exactly one for
// type T, one or more for type Infer. Values maps factor levels to
// contrast weights and is only meaningful for type T.
type ContrastSpec struct {
	Name      string             `yaml:"name,omitempty" json:"name,omitempty"`
	Type      ContrastType       `yaml:"type" json:"type"`
	Variables VariableList       `yaml:"variable" json:"variable"`
	Values    map[string]float64 `yaml:"values,omitempty" json:"values,omitempty"`
}

// VariableList is a list of variable names that unmarshals from either a
// YAML scalar ("Age") or a sequence (["Age", "Group"]).
type VariableList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *VariableList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*v = VariableList{s}

		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*v = list

	return nil
}

// RawTable is the loading collaborator's hand-off: subject id → variable
// name → raw cell value. Absent keys are missing cells.
type RawTable map[string]map[string]string
