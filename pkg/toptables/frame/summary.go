package frame

import (
	"github.com/montanaflynn/stats"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
)

// Summarize computes the p-value distribution of t.
// Call it before formatting, while the p-value column is still numeric.
func Summarize(t *models.Table, pvalueColumn string) (models.Summary, error) {
	summary := models.Summary{Table: t.Name, Rows: t.Len()}

	idx := t.ColumnIndex(pvalueColumn)
	if idx < 0 {
		return summary, models.NewSchemaMismatchError(t.Name, "no p-value column %q", pvalueColumn)
	}

	var data stats.Float64Data
	for i, row := range t.Rows {
		if models.Missing(row[idx]) {
			summary.Missing++
			continue
		}
		p, ok := models.Float(row[idx])
		if !ok {
			return summary, models.NewFormatConversionError(t.Name, pvalueColumn, i, row[idx])
		}
		data = append(data, p)
	}
	if len(data) == 0 {
		return summary, nil
	}

	var err error
	if summary.MinP, err = data.Min(); err != nil {
		return summary, err
	}
	if summary.MedianP, err = data.Median(); err != nil {
		return summary, err
	}
	if summary.MaxP, err = data.Max(); err != nil {
		return summary, err
	}
	return summary, nil
}
