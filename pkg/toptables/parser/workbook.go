// Package parser reads survey workbooks into datasets.
package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads every sheet of a workbook, in workbook order.
// Each dataset gets an Emphasis Area column derived from the file name.
// Sheets without any data are omitted.
func ReadWorkbook(path string) ([]models.Dataset, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, models.NewSourceNotFoundError(path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	bookName := filepath.Base(path)
	area := ParseFileName(bookName)

	var datasets []models.Dataset
	for _, sheetName := range f.GetSheetList() {
		headers, rows, err := ExtractRows(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheetName, bookName, err)
		}
		if headers == nil {
			continue
		}

		ds := models.Dataset{
			Workbook:     bookName,
			Sheet:        sheetName,
			EmphasisArea: area,
			Headers:      headers,
			Rows:         rows,
		}
		ds.SetColumn(models.EmphasisAreaColumn, area)
		datasets = append(datasets, ds)
	}

	return datasets, nil
}

// ReadWorkbooks reads each workbook in order and returns all datasets as a
// flat list. Each workbook is closed before the next one is opened.
func ReadWorkbooks(paths []string) ([]models.Dataset, error) {
	var all []models.Dataset
	for _, path := range paths {
		datasets, err := ReadWorkbook(path)
		if err != nil {
			return nil, err
		}
		all = append(all, datasets...)
	}
	return all, nil
}
