package parser

import (
	"math"
	"strconv"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
	"github.com/xuri/excelize/v2"
)

// missingMarkers are text values read as empty cells.
var missingMarkers = map[string]bool{
	"#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true, "-1.#QNAN": true,
	"-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true, "<NA>": true,
	"N/A": true, "NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// ExtractRows extracts the header and data rows from a sheet.
// The first non-empty row is the header. Rows without any data are skipped,
// and empty cells become nil.
func ExtractRows(f *excelize.File, sheetName string) ([]string, [][]models.Value, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil, nil
	}

	headers := make([]string, 0, maxCol-minCol+1)
	for colIdx := minCol; colIdx <= maxCol; colIdx++ {
		headers = append(headers, cellAt(rows[minRow], colIdx))
	}

	var result [][]models.Value
	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		values := make([]models.Value, len(headers))
		hasData := false

		for colIdx := minCol; colIdx <= maxCol; colIdx++ {
			cellValue := cellAt(row, colIdx)
			if cellValue == "" {
				continue
			}
			v, err := typedValue(f, sheetName, rowIdx, colIdx, cellValue)
			if err != nil {
				return nil, nil, err
			}
			if v == nil {
				continue
			}
			hasData = true
			values[colIdx-minCol] = v
		}

		if hasData {
			result = append(result, values)
		}
	}

	return headers, result, nil
}

// typedValue converts a raw cell string according to the cell's stored type.
// Only numeric cells are parsed as numbers; text stays text and booleans
// become bool.
func typedValue(f *excelize.File, sheetName string, rowIdx, colIdx int, raw string) (models.Value, error) {
	cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return nil, err
	}
	cellType, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return nil, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || raw == "TRUE" || raw == "true", nil
	case excelize.CellTypeError:
		return nil, nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return parseValue(raw), nil
	}

	if missingMarkers[raw] {
		return nil, nil
	}
	return raw, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for finite decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}
