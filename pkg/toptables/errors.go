package toptables

import (
	"fmt"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/config"
	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
)

// Errors returned by a report run. Match them with errors.Is.
var (
	// ErrSourceNotFound indicates a listed source workbook does not exist.
	ErrSourceNotFound = models.ErrSourceNotFound
	// ErrSchemaMismatch indicates an absent column or a column count mismatch.
	ErrSchemaMismatch = models.ErrSchemaMismatch
	// ErrFormatConversion indicates a non-numeric value in a numeric column.
	ErrFormatConversion = models.ErrFormatConversion
	// ErrInvalidConfig indicates a table configuration failed validation.
	ErrInvalidConfig = config.ErrInvalidConfig
)

// Error types carrying the details of each failure. Retrieve them with errors.As.
type (
	SourceNotFoundError   = models.SourceNotFoundError
	SchemaMismatchError   = models.SchemaMismatchError
	MalformedSheetError   = models.MalformedSheetError
	FormatConversionError = models.FormatConversionError
)

// BuildError reports the table being built when a stage failed.
type BuildError struct {
	Table string
	Stage string // "read", "assemble", "drop", "rank", "summarize", "format"
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("table %q (%s): %v", e.Table, e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(table, stage string, err error) *BuildError {
	return &BuildError{
		Table: table,
		Stage: stage,
		Err:   err,
	}
}
