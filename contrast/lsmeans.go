package contrast

import (
	"fmt"

	"groupdesign/covtable"
	"groupdesign/design"
	"groupdesign/model"
)

// refGrid is the least-squares-means reference grid: the cross-product of
// one representative value per covariate. It satisfies design.Source so
// it can be encoded with the fitted term list.
type refGrid struct {
	colIndex map[string]int
	rows     [][]design.Value
}

// referenceGrid builds the grid over the table's columns: a single fixed
// 0.0 for continuous covariates, every observed level for categorical
// ones. Rows enumerate the cross-product with the rightmost column
// varying fastest.
func referenceGrid(t *covtable.Table) *refGrid {
	g := &refGrid{colIndex: make(map[string]int, len(t.Columns))}

	choices := make([][]design.Value, len(t.Columns))
	total := 1
	for i := range t.Columns {
		col := &t.Columns[i]
		g.colIndex[col.Name] = i
		if col.Type == model.Continuous {
			choices[i] = []design.Value{{Float: 0.0}}
		} else {
			choices[i] = make([]design.Value, 0, len(col.Levels))
			for _, level := range col.Levels {
				choices[i] = append(choices[i], design.Value{Level: level})
			}
		}
		total *= len(choices[i])
	}
	if len(t.Columns) == 0 {
		total = 0
	}

	for r := 0; r < total; r++ {
		row := make([]design.Value, len(choices))
		rem := r
		for i := len(choices) - 1; i >= 0; i-- {
			n := len(choices[i])
			row[i] = choices[i][rem%n]
			rem /= n
		}
		g.rows = append(g.rows, row)
	}

	return g
}

func (g *refGrid) NumRows() int { return len(g.rows) }

func (g *refGrid) Value(variable string, row int) design.Value {
	i, ok := g.colIndex[variable]
	if !ok {
		return design.Value{}
	}

	return g.rows[row][i]
}

// lsmeansBlocks derives one single-row contrast block per declared
// t-contrast. The block's vector is the weighted sum, over the levels
// named in the spec's weight map, of the level's least-squares mean: the
// elementwise average of the encoded reference rows matching that level.
//
// Levels are visited in observed order, so the floating-point sum is
// deterministic. Weighted levels never observed are ignored, as are
// observed levels the weight map does not name. A t-contrast on a dropped
// or non-categorical variable is skipped with a warning.
func lsmeansBlocks(m *design.Matrix, specs []model.ContrastSpec, t *covtable.Table) ([]block, []string) {
	var blocks []block
	var warnings []string

	grid := referenceGrid(t)
	var refM *design.Matrix

	for _, spec := range specs {
		if spec.Type != model.T {
			continue
		}
		if len(spec.Variables) != 1 {
			warnings = append(warnings,
				fmt.Sprintf("skipping contrast %q because it does not name exactly one variable", spec.Name))
			continue
		}
		variable := spec.Variables[0]
		col, ok := t.Column(variable)
		if !ok {
			warnings = append(warnings,
				fmt.Sprintf("skipping contrast %q because variable %q is not part of the model", spec.Name, variable))
			continue
		}
		if col.Type != model.Categorical {
			warnings = append(warnings,
				fmt.Sprintf("skipping contrast %q because variable %q is not categorical", spec.Name, variable))
			continue
		}

		// Encode the grid lazily; most models declare no t-contrasts.
		if refM == nil {
			refM = design.EncodeSource(m.Terms, grid)
		}

		vector := make([]float64, m.NumCols())
		for _, level := range col.Levels {
			weight, named := spec.Values[level]
			if !named {
				continue
			}
			mean := levelMean(refM, grid, variable, level)
			for j := range vector {
				vector[j] += weight * mean[j]
			}
		}
		blocks = append(blocks, block{name: spec.Name, rows: [][]float64{vector}})
	}

	return blocks, warnings
}

// levelMean averages the encoded reference rows whose grid value for the
// variable equals the level.
func levelMean(refM *design.Matrix, grid *refGrid, variable, level string) []float64 {
	mean := make([]float64, refM.NumCols())
	n := 0
	for r := 0; r < grid.NumRows(); r++ {
		if grid.Value(variable, r).Level != level {
			continue
		}
		for j := range mean {
			mean[j] += refM.Values.At(r, j)
		}
		n++
	}
	if n > 0 {
		for j := range mean {
			mean[j] /= float64(n)
		}
	}

	return mean
}
