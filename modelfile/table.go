package modelfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"groupdesign/model"
)

// LoadTable reads a delimited covariate table. Files ending in .tsv or
// .txt are tab-separated, everything else comma-separated. The first row
// is the header; idColumn names the column holding subject ids.
//
// It returns the subject-indexed raw table together with the subject ids
// in file order, which callers use as the default subject list.
func LoadTable(path, idColumn string) (model.RawTable, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("modelfile: open table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".tsv" || ext == ".txt" {
		r.Comma = '\t'
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("modelfile: read table: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: %q", ErrMissingIDColumn, idColumn)
	}

	header := records[0]
	idIdx := -1
	for i, name := range header {
		if name == idColumn {
			idIdx = i
			break
		}
	}
	if idIdx < 0 {
		return nil, nil, fmt.Errorf("%w: %q", ErrMissingIDColumn, idColumn)
	}

	raw := make(model.RawTable, len(records)-1)
	var order []string
	for _, rec := range records[1:] {
		id := rec[idIdx]
		if _, ok := raw[id]; ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateSubject, id)
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i == idIdx {
				continue
			}
			row[name] = rec[i]
		}
		raw[id] = row
		order = append(order, id)
	}

	return raw, order, nil
}
