package groupdesign_test

import (
	"fmt"

	"groupdesign"
	"groupdesign/model"
)

// ExampleGroupDesign builds a small two-group design with an age
// covariate and a least-squares-means comparison between the groups.
func ExampleGroupDesign() {
	raw := model.RawTable{
		"sub-01": {"Age": "31", "Group": "patient"},
		"sub-02": {"Age": "27", "Group": "control"},
		"sub-03": {"Age": "45", "Group": "patient"},
		"sub-04": {"Age": "38", "Group": "control"},
		"sub-05": {"Age": "29", "Group": "patient"},
		"sub-06": {"Age": "33", "Group": "control"},
	}
	variables := []model.VariableSpec{
		{Name: "Sub", Type: model.ID},
		{Name: "Age", Type: model.Continuous},
		{Name: "Group", Type: model.Categorical},
	}
	contrasts := []model.ContrastSpec{
		{Type: model.Infer, Variables: model.VariableList{"Age"}},
		{Name: "patientVsControl", Type: model.T,
			Variables: model.VariableList{"Group"},
			Values:    map[string]float64{"patient": 1, "control": -1}},
	}
	subjects := []string{"01", "02", "03", "04", "05", "06"}

	res, err := groupdesign.GroupDesign(raw, variables, contrasts, subjects, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("columns:", res.Regressors.Columns)
	fmt.Println("names:  ", res.ContrastNames)
	fmt.Println("numbers:", res.ContrastNumbers)
	// Output:
	// columns: [Intercept Group[T.control] Age]
	// names:   [intercept Group Age Patientvscontrol]
	// numbers: [01 02 03 04]
}
