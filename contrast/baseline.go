package contrast

import (
	"strings"

	"groupdesign/design"
)

// interceptName is the display name of the intercept's baseline contrast,
// kept lower case while every other contrast name is capitalized.
const interceptName = "intercept"

// baselineBlocks builds one contrast block per retained term: the
// identity over the term's own column range, zero elsewhere. The block
// tests whether the term's coefficients are jointly non-zero.
func baselineBlocks(m *design.Matrix) []block {
	blocks := make([]block, 0, len(m.Ranges))
	for _, tr := range m.Ranges {
		name := tr.Term
		if name == design.InterceptColumn {
			name = interceptName
		}
		b := block{name: name}
		for col := tr.Start; col < tr.End; col++ {
			row := make([]float64, m.NumCols())
			row[col] = 1
			b.rows = append(b.rows, row)
		}
		blocks = append(blocks, b)
	}

	return blocks
}

// capitalize upper-cases the first rune and lower-cases the remainder,
// matching the naming convention of the downstream fitter.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)

	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
