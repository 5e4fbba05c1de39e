package contrast

import (
	"fmt"

	"groupdesign/covtable"
	"groupdesign/design"
	"groupdesign/model"
)

// Build derives all contrasts for the fitted design: per-term baseline
// contrasts, then least-squares-means contrasts for the declared
// t-contrasts, grouped into the hand-off form.
//
// The returned slices are positionally aligned: numbers and names have
// one entry per externally visible contrast (each stand-alone T entry,
// each F group as a whole), in the exact order the downstream fitter
// expects. The warnings record skipped t-contrasts.
func Build(m *design.Matrix, specs []model.ContrastSpec, t *covtable.Table) (contrasts []Contrast, numbers, names, warnings []string) {
	blocks := baselineBlocks(m)

	lsm, warnings := lsmeansBlocks(m, specs, t)
	blocks = append(blocks, lsm...)

	contrasts, numbers, names = group(blocks, m.Columns)

	return contrasts, numbers, names, warnings
}

// group turns named coefficient blocks into the ordered contrast list.
// Single-row blocks come first, each as one T entry; multi-row blocks
// follow, each expanded into one T entry per row immediately followed by
// one F entry naming exactly those rows. Two-digit numbers advance once
// per externally visible entry (a whole F group counts once).
func group(blocks []block, columns []string) ([]Contrast, []string, []string) {
	var contrasts []Contrast
	var names []string

	for _, b := range blocks { // t contrasts
		if len(b.rows) != 1 {
			continue
		}
		name := displayName(b.name)
		contrasts = append(contrasts, Contrast{
			Name:    name,
			Type:    TypeT,
			Columns: columns,
			Weights: b.rows[0],
		})
		names = append(names, name)
	}

	for _, b := range blocks { // f contrasts
		if len(b.rows) <= 1 {
			continue
		}
		name := displayName(b.name)
		constituents := make([]string, 0, len(b.rows))
		for i, row := range b.rows {
			tname := fmt.Sprintf("%s_%d", name, i)
			contrasts = append(contrasts, Contrast{
				Name:    tname,
				Type:    TypeT,
				Columns: columns,
				Weights: row,
			})
			constituents = append(constituents, tname)
		}
		contrasts = append(contrasts, Contrast{
			Name:         name,
			Type:         TypeF,
			Constituents: constituents,
		})
		names = append(names, name) // only the joint test is externally visible
	}

	numbers := make([]string, len(names))
	for i := range names {
		numbers[i] = fmt.Sprintf("%02d", i+1)
	}

	return contrasts, numbers, names
}

// displayName capitalizes a contrast's base name, keeping the intercept
// lower case.
func displayName(name string) string {
	if name == interceptName {
		return name
	}

	return capitalize(name)
}
