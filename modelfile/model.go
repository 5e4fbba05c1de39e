package modelfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"groupdesign/model"
)

// File is a complete YAML model declaration: variables, contrasts, and an
// optional explicit subject list (table order is used when empty).
type File struct {
	Variables []model.VariableSpec `yaml:"variables"`
	Contrasts []model.ContrastSpec `yaml:"contrasts"`
	Subjects  []string             `yaml:"subjects,omitempty"`
}

// Load reads and validates a YAML model file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modelfile: open model: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("modelfile: parse model: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// IDColumn returns the name of the declared id variable.
func (f *File) IDColumn() (string, bool) {
	for _, v := range f.Variables {
		if v.Type == model.ID {
			return v.Name, true
		}
	}

	return "", false
}

// Validate performs the structural validation the core packages assume:
// exactly one id variable, known variable and contrast types, declared
// contrast variables, t-contrasts over exactly one variable with a
// non-empty weight map.
func (f *File) Validate() error {
	declared := make(map[string]model.VariableType, len(f.Variables))
	ids := 0
	for _, v := range f.Variables {
		if v.Name == "" {
			return fmt.Errorf("%w: variable with empty name", ErrInvalidModel)
		}
		if _, dup := declared[v.Name]; dup {
			return fmt.Errorf("%w: variable %q declared twice", ErrInvalidModel, v.Name)
		}
		switch v.Type {
		case model.ID:
			ids++
		case model.Continuous, model.Categorical:
		default:
			return fmt.Errorf("%w: variable %q has unknown type %q", ErrInvalidModel, v.Name, v.Type)
		}
		declared[v.Name] = v.Type
	}
	if ids != 1 {
		return fmt.Errorf("%w: exactly one id variable required, found %d", ErrInvalidModel, ids)
	}

	for _, c := range f.Contrasts {
		if len(c.Variables) == 0 {
			return fmt.Errorf("%w: contrast %q names no variable", ErrInvalidModel, c.Name)
		}
		for _, name := range c.Variables {
			t, ok := declared[name]
			if !ok {
				return fmt.Errorf("%w: contrast %q references undeclared variable %q", ErrInvalidModel, c.Name, name)
			}
			if t == model.ID {
				return fmt.Errorf("%w: contrast %q references the id variable", ErrInvalidModel, c.Name)
			}
		}
		switch c.Type {
		case model.Infer:
		case model.T:
			if len(c.Variables) != 1 {
				return fmt.Errorf("%w: t-contrast %q must name exactly one variable", ErrInvalidModel, c.Name)
			}
			if declared[c.Variables[0]] != model.Categorical {
				return fmt.Errorf("%w: t-contrast %q requires a categorical variable", ErrInvalidModel, c.Name)
			}
			if len(c.Values) == 0 {
				return fmt.Errorf("%w: t-contrast %q has no level weights", ErrInvalidModel, c.Name)
			}
		default:
			return fmt.Errorf("%w: contrast %q has unknown type %q", ErrInvalidModel, c.Name, c.Type)
		}
	}

	return nil
}
