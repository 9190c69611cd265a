package frame

import (
	"sort"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
)

// Rank sorts t in place by the p-value column, smallest first.
// Equal p-values keep their original order, and empty or NaN p-values go last.
func Rank(t *models.Table, pvalueColumn string) error {
	idx := t.ColumnIndex(pvalueColumn)
	if idx < 0 {
		return models.NewSchemaMismatchError(t.Name, "no p-value column %q", pvalueColumn)
	}

	keys := make([]float64, len(t.Rows))
	missing := make([]bool, len(t.Rows))
	for i, row := range t.Rows {
		v := row[idx]
		if models.Missing(v) {
			missing[i] = true
			continue
		}
		p, ok := models.Float(v)
		if !ok {
			return models.NewFormatConversionError(t.Name, pvalueColumn, i, v)
		}
		keys[i] = p
	}

	order := make([]int, len(t.Rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if missing[ia] || missing[ib] {
			return !missing[ia] && missing[ib]
		}
		return keys[ia] < keys[ib]
	})

	rows := make([][]models.Value, len(t.Rows))
	for i, src := range order {
		rows[i] = t.Rows[src]
	}
	t.Rows = rows
	return nil
}

// Truncate keeps the first n rows of t when n is positive.
// When n is zero or negative t is left unchanged.
func Truncate(t *models.Table, n int) {
	if n > 0 && n < len(t.Rows) {
		t.Rows = t.Rows[:n]
	}
}
