package models

// Report is the ordered collection of tables written to one workbook.
type Report struct {
	// Tables are written as sheets in this order.
	Tables []*Table `json:"tables"`
	// Summaries holds one p-value summary per table, in the same order.
	Summaries []Summary `json:"summaries,omitempty"`
}

// Summary describes the p-value distribution of a ranked table.
type Summary struct {
	// Table is the table name.
	Table string `json:"table"`
	// Rows is the row count before truncation.
	Rows int `json:"rows"`
	// Missing counts rows with an empty p-value.
	Missing int `json:"missing"`
	// MinP is the smallest p-value.
	MinP float64 `json:"min_p"`
	// MedianP is the median p-value.
	MedianP float64 `json:"median_p"`
	// MaxP is the largest p-value.
	MaxP float64 `json:"max_p"`
}
