package parser

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when the sheet has no data.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// cellAt returns the cell at colIdx, or "" past the end of a short row.
func cellAt(row []string, colIdx int) string {
	if colIdx < len(row) {
		return row[colIdx]
	}
	return ""
}
