package contrast_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupdesign/contrast"
	"groupdesign/covtable"
	"groupdesign/design"
	"groupdesign/model"
)

// fitScenario builds and expands the ten-subject Age+Group scenario.
func fitScenario(t *testing.T, specs []model.ContrastSpec) (*design.Matrix, *covtable.Table) {
	t.Helper()

	vars := []model.VariableSpec{
		{Name: "Sub", Type: model.ID},
		{Name: "Age", Type: model.Continuous},
		{Name: "Group", Type: model.Categorical},
	}
	raw := make(model.RawTable, 10)
	var subjects []string
	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("%02d", i)
		group := "patient"
		if i%2 == 0 {
			group = "control"
		}
		raw[id] = map[string]string{"Age": fmt.Sprintf("%d", 20+i), "Group": group}
		subjects = append(subjects, id)
	}
	table, err := covtable.Build(raw, vars, subjects)
	require.NoError(t, err)

	m, filtered, _, err := design.Expand(table, specs)
	require.NoError(t, err)

	return m, filtered
}

// TestBuild_BaselineContrasts verifies one baseline contrast per term,
// with the intercept named lower case and every T entry spanning exactly
// the design's columns in design order.
func TestBuild_BaselineContrasts(t *testing.T) {
	m, table := fitScenario(t, nil)

	contrasts, numbers, names, warnings := contrast.Build(m, nil, table)
	assert.Empty(t, warnings)

	assert.Equal(t, []string{"intercept", "Group", "Age"}, names)
	assert.Equal(t, []string{"01", "02", "03"}, numbers)
	require.Len(t, contrasts, 3)

	for _, c := range contrasts {
		assert.Equal(t, contrast.TypeT, c.Type)
		assert.Equal(t, m.Columns, c.Columns, "contrast columns must equal design columns in order")
		assert.Len(t, c.Weights, m.NumCols())
	}

	// The intercept baseline tests the first column only.
	assert.Equal(t, []float64{1, 0, 0}, contrasts[0].Weights)
	// The Group baseline tests the indicator column.
	assert.Equal(t, []float64{0, 1, 0}, contrasts[1].Weights)
}

// TestBuild_LSMeansDifference verifies the least-squares-means contrast
// for a two-level factor with weights {patient: 1, control: -1}: the
// vector equals patient's mean reference row minus control's, within
// 1e-8.
func TestBuild_LSMeansDifference(t *testing.T) {
	specs := []model.ContrastSpec{
		{
			Name:      "patientVsControl",
			Type:      model.T,
			Variables: model.VariableList{"Group"},
			Values:    map[string]float64{"patient": 1, "control": -1},
		},
	}
	m, table := fitScenario(t, specs)

	contrasts, numbers, names, warnings := contrast.Build(m, specs, table)
	assert.Empty(t, warnings)

	assert.Equal(t, []string{"intercept", "Group", "Age", "Patientvscontrol"}, names)
	assert.Equal(t, []string{"01", "02", "03", "04"}, numbers)
	require.Len(t, contrasts, 4)

	// Reference grid at Age=0: patient row encodes [1, 0, 0], control row
	// [1, 1, 0]; each level matches exactly one grid row, so the means are
	// the rows themselves.
	lsm := contrasts[3]
	assert.Equal(t, contrast.TypeT, lsm.Type)
	expected := []float64{0, -1, 0}
	require.Len(t, lsm.Weights, len(expected))
	for j := range expected {
		assert.InDelta(t, expected[j], lsm.Weights[j], 1e-8)
	}
}

// TestBuild_FGroupLayout verifies that a multi-row baseline block expands
// into its constituent T-contrasts immediately followed by one F-contrast
// naming exactly them, and that numbering advances once per group.
func TestBuild_FGroupLayout(t *testing.T) {
	vars := []model.VariableSpec{
		{Name: "Sub", Type: model.ID},
		{Name: "Site", Type: model.Categorical},
	}
	raw := model.RawTable{
		"01": {"Site": "a"},
		"02": {"Site": "b"},
		"03": {"Site": "c"},
		"04": {"Site": "a"},
		"05": {"Site": "b"},
		"06": {"Site": "c"},
	}
	table, err := covtable.Build(raw, vars, []string{"01", "02", "03", "04", "05", "06"})
	require.NoError(t, err)
	m, filtered, _, err := design.Expand(table, nil)
	require.NoError(t, err)

	contrasts, numbers, names, _ := contrast.Build(m, nil, filtered)

	// intercept (T), then Site_0, Site_1, Site (F).
	require.Len(t, contrasts, 4)
	assert.Equal(t, "intercept", contrasts[0].Name)
	assert.Equal(t, contrast.TypeT, contrasts[0].Type)
	assert.Equal(t, "Site_0", contrasts[1].Name)
	assert.Equal(t, "Site_1", contrasts[2].Name)
	assert.Equal(t, contrast.TypeT, contrasts[1].Type)
	assert.Equal(t, contrast.TypeT, contrasts[2].Type)

	f := contrasts[3]
	assert.Equal(t, "Site", f.Name)
	assert.Equal(t, contrast.TypeF, f.Type)
	assert.Equal(t, []string{"Site_0", "Site_1"}, f.Constituents)
	assert.Empty(t, f.Columns)
	assert.Empty(t, f.Weights)

	// Externally visible: intercept and the Site group as a whole.
	assert.Equal(t, []string{"intercept", "Site"}, names)
	assert.Equal(t, []string{"01", "02"}, numbers)
}

// TestBuild_SkipsTContrastOnMissingVariable verifies the recoverable
// warning for a t-contrast over a variable not part of the model.
func TestBuild_SkipsTContrastOnMissingVariable(t *testing.T) {
	m, table := fitScenario(t, nil)

	specs := []model.ContrastSpec{
		{
			Name:      "siteEffect",
			Type:      model.T,
			Variables: model.VariableList{"Site"},
			Values:    map[string]float64{"a": 1},
		},
	}
	contrasts, _, names, warnings := contrast.Build(m, specs, table)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "siteEffect")
	assert.Equal(t, []string{"intercept", "Group", "Age"}, names)
	assert.Len(t, contrasts, 3)
}

// TestBuild_IgnoresUnobservedWeightLevels verifies that weight entries
// naming levels never observed contribute nothing.
func TestBuild_IgnoresUnobservedWeightLevels(t *testing.T) {
	specs := []model.ContrastSpec{
		{
			Name:      "patientOnly",
			Type:      model.T,
			Variables: model.VariableList{"Group"},
			Values:    map[string]float64{"patient": 1, "ghost": 5},
		},
	}
	m, table := fitScenario(t, specs)

	contrasts, _, _, warnings := contrast.Build(m, specs, table)
	assert.Empty(t, warnings)

	lsm := contrasts[len(contrasts)-1]
	// Patient's mean reference row is [1, 0, 0]; "ghost" is ignored.
	expected := []float64{1, 0, 0}
	for j := range expected {
		assert.InDelta(t, expected[j], lsm.Weights[j], 1e-8)
	}
}
