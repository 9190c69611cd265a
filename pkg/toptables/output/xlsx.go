// Package output writes report tables to an xlsx workbook.
package output

import (
	"fmt"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize.NewFile starts with.
const defaultSheet = "Sheet1"

// headerStyle mirrors the usual header look of exported data frames.
var headerStyle = &excelize.Style{
	Font: &excelize.Font{Bold: true},
	Border: []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	},
	Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
}

// WriteWorkbook writes one sheet per table, in report order, to path.
// An existing file at path is overwritten.
func WriteWorkbook(path string, report *models.Report) error {
	if report == nil || len(report.Tables) == 0 {
		return fmt.Errorf("report has no tables")
	}

	f := excelize.NewFile()
	defer f.Close()

	styleID, err := f.NewStyle(headerStyle)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, table := range report.Tables {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, table.Name); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", table.Name, err)
			}
		} else if _, err := f.NewSheet(table.Name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", table.Name, err)
		}

		if err := writeSheet(f, table, styleID); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", table.Name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, table *models.Table, styleID int) error {
	header := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(table.Name, "A1", &header); err != nil {
		return err
	}

	if len(table.Columns) > 0 {
		lastCell, err := excelize.CoordinatesToCellName(len(table.Columns), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(table.Name, "A1", lastCell, styleID); err != nil {
			return err
		}
	}

	for r, row := range table.Rows {
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(table.Name, cell, &values); err != nil {
			return err
		}
	}

	for i, width := range ColumnWidths(table) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(table.Name, col, col, float64(width)); err != nil {
			return err
		}
	}

	return nil
}
