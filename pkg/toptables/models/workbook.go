package models

// EmphasisAreaColumn is the column every loaded dataset is tagged with.
const EmphasisAreaColumn = "Emphasis Area"

// Dataset represents the tabular contents of one worksheet.
type Dataset struct {
	// Workbook is the workbook file name (no path).
	Workbook string `json:"workbook"`
	// Sheet is the worksheet name.
	Sheet string `json:"sheet"`
	// EmphasisArea is the label derived from the workbook name.
	EmphasisArea string `json:"emphasis_area"`
	// Headers are the column names taken from the header row.
	Headers []string `json:"headers"`
	// Rows holds one slice of values per data row, aligned with Headers.
	Rows [][]Value `json:"rows,omitempty"`
}

// ColumnIndex returns the position of the named column, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, h := range d.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// SetColumn sets every row's value for the named column, appending the
// column when it does not exist yet.
func (d *Dataset) SetColumn(name string, v Value) {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		d.Headers = append(d.Headers, name)
		idx = len(d.Headers) - 1
	}
	for i, row := range d.Rows {
		for len(row) <= idx {
			row = append(row, nil)
		}
		row[idx] = v
		d.Rows[i] = row
	}
}
