package frame

import (
	"fmt"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
)

// FormatScientific renders a column as scientific notation with three
// decimals, e.g. 0.0000456 becomes "4.560e-05". Empty and NaN cells render as "nan".
func FormatScientific(t *models.Table, column string) error {
	return formatColumn(t, column, "%.3e")
}

// FormatFixed renders each column with two decimals.
func FormatFixed(t *models.Table, columns ...string) error {
	for _, col := range columns {
		if err := formatColumn(t, col, "%.2f"); err != nil {
			return err
		}
	}
	return nil
}

func formatColumn(t *models.Table, column, verb string) error {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return models.NewSchemaMismatchError(t.Name, "no column %q to format", column)
	}

	for i, row := range t.Rows {
		v := row[idx]
		if models.Missing(v) {
			row[idx] = "nan"
			continue
		}
		f, ok := models.Float(v)
		if !ok {
			return models.NewFormatConversionError(t.Name, column, i, v)
		}
		row[idx] = fmt.Sprintf(verb, f)
	}
	return nil
}
