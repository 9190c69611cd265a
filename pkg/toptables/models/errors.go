package models

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound indicates an input workbook does not exist.
var ErrSourceNotFound = errors.New("source workbook not found")

// ErrSchemaMismatch indicates a column is absent or column counts disagree.
var ErrSchemaMismatch = errors.New("schema mismatch")

// ErrFormatConversion indicates a value slated for numeric handling is not numeric.
var ErrFormatConversion = errors.New("value is not numeric")

// SourceNotFoundError reports a missing input workbook.
type SourceNotFoundError struct {
	Path string
	Err  error
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source workbook %q not found", e.Path)
}

func (e *SourceNotFoundError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSourceNotFound.
func (e *SourceNotFoundError) Is(target error) bool {
	return target == ErrSourceNotFound
}

// NewSourceNotFoundError creates a new SourceNotFoundError.
func NewSourceNotFoundError(path string, err error) *SourceNotFoundError {
	return &SourceNotFoundError{Path: path, Err: err}
}

// SchemaMismatchError reports a column selection that cannot be applied.
type SchemaMismatchError struct {
	Table  string
	Detail string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch in table %q: %s", e.Table, e.Detail)
}

// Is reports whether target is ErrSchemaMismatch.
func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// NewSchemaMismatchError creates a new SchemaMismatchError.
func NewSchemaMismatchError(table, format string, args ...any) *SchemaMismatchError {
	return &SchemaMismatchError{Table: table, Detail: fmt.Sprintf(format, args...)}
}

// MalformedSheetError reports a sheet lacking a column its table needs.
// It matches ErrSchemaMismatch.
type MalformedSheetError struct {
	Workbook string
	Sheet    string
	Column   string
}

func (e *MalformedSheetError) Error() string {
	return fmt.Sprintf("sheet %q in %q has no column %q", e.Sheet, e.Workbook, e.Column)
}

// Is reports whether target is ErrSchemaMismatch.
func (e *MalformedSheetError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// NewMalformedSheetError creates a new MalformedSheetError.
func NewMalformedSheetError(workbook, sheet, column string) *MalformedSheetError {
	return &MalformedSheetError{Workbook: workbook, Sheet: sheet, Column: column}
}

// FormatConversionError reports a non-numeric value in a numeric column.
type FormatConversionError struct {
	Table  string
	Column string
	Row    int // 0-based position in the table
	Value  Value
}

func (e *FormatConversionError) Error() string {
	return fmt.Sprintf("table %q column %q row %d: %v is not numeric", e.Table, e.Column, e.Row, e.Value)
}

// Is reports whether target is ErrFormatConversion.
func (e *FormatConversionError) Is(target error) bool {
	return target == ErrFormatConversion
}

// NewFormatConversionError creates a new FormatConversionError.
func NewFormatConversionError(table, column string, row int, v Value) *FormatConversionError {
	return &FormatConversionError{Table: table, Column: column, Row: row, Value: v}
}
