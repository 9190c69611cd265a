package models

// Table is an ordered sequence of rows sharing one column schema.
// Every row has exactly len(Columns) values.
type Table struct {
	// Name is the output sheet name (e.g. "Table_B").
	Name string `json:"name"`
	// Columns are the destination column names, in output order.
	Columns []string `json:"columns"`
	// Rows holds the row values in current order.
	Rows [][]Value `json:"rows,omitempty"`
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
