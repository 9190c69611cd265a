// Package frame implements the column operations used to build report
// tables: concatenation with projection and rename, column drop, stable
// ranking by p-value, truncation, and display formatting.
package frame

import (
	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
)

// Assemble concatenates datasets into one table named spec.Name.
//
// Datasets are appended in the order given. From each one exactly
// spec.SourceColumns are kept, in that order, and relabeled by position to
// spec.Columns.
func Assemble(spec models.TableSpec, datasets []models.Dataset) (*models.Table, error) {
	if len(spec.SourceColumns) != len(spec.Columns) {
		return nil, models.NewSchemaMismatchError(spec.Name,
			"%d source columns but %d destination names", len(spec.SourceColumns), len(spec.Columns))
	}

	table := &models.Table{
		Name:    spec.Name,
		Columns: append([]string(nil), spec.Columns...),
	}

	for _, ds := range datasets {
		indexes := make([]int, len(spec.SourceColumns))
		for i, col := range spec.SourceColumns {
			idx := ds.ColumnIndex(col)
			if idx < 0 {
				return nil, models.NewMalformedSheetError(ds.Workbook, ds.Sheet, col)
			}
			indexes[i] = idx
		}

		for _, row := range ds.Rows {
			out := make([]models.Value, len(indexes))
			for i, idx := range indexes {
				if idx < len(row) {
					out[i] = row[idx]
				}
			}
			table.Rows = append(table.Rows, out)
		}
	}

	return table, nil
}

// Drop removes the named columns from t in place.
func Drop(t *models.Table, columns ...string) error {
	for _, col := range columns {
		idx := t.ColumnIndex(col)
		if idx < 0 {
			return models.NewSchemaMismatchError(t.Name, "cannot drop unknown column %q", col)
		}
		t.Columns = append(t.Columns[:idx:idx], t.Columns[idx+1:]...)
		for i, row := range t.Rows {
			t.Rows[i] = append(row[:idx:idx], row[idx+1:]...)
		}
	}
	return nil
}
