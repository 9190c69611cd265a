// Package config provides the table specifications that drive the report:
// the built-in median and mean variants, and YAML files describing custom
// tables.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
)

// File is the on-disk layout of a table configuration.
//
//	tables:
//	  - name: Table_B
//	    sources: [companion_animal.xlsx, equine.xlsx]
//	    source_columns: [Subquestion, pval_corrected]
//	    columns: [Item, P value]
//	    p_value_column: P value
type File struct {
	Tables []models.TableSpec `yaml:"tables" validate:"required,min=1,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads table specs from a YAML file and validates them.
// If the file does not exist, the error wraps ErrConfigNotFound.
func Load(path string) ([]models.TableSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := Validate(cf.Tables); err != nil {
		return nil, err
	}
	return cf.Tables, nil
}

// Validate checks required fields, unique table names, and that every
// spec's source and destination columns line up. A column count mismatch is
// reported as a SchemaMismatchError.
func Validate(specs []models.TableSpec) error {
	if err := validate.Struct(File{Tables: specs}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		if seen[spec.Name] {
			return fmt.Errorf("%w: duplicate table name %q", ErrInvalidConfig, spec.Name)
		}
		seen[spec.Name] = true

		if len(spec.SourceColumns) != len(spec.Columns) {
			return models.NewSchemaMismatchError(spec.Name,
				"%d source columns but %d destination names", len(spec.SourceColumns), len(spec.Columns))
		}

		if !slices.Contains(spec.Columns, spec.PValueColumn) || slices.Contains(spec.Drop, spec.PValueColumn) {
			return fmt.Errorf("%w: table %q has no p-value column %q", ErrInvalidConfig, spec.Name, spec.PValueColumn)
		}
		for _, col := range spec.FixedColumns {
			if !slices.Contains(spec.Columns, col) || slices.Contains(spec.Drop, col) {
				return fmt.Errorf("%w: table %q cannot format missing column %q", ErrInvalidConfig, spec.Name, col)
			}
		}
	}
	return nil
}
