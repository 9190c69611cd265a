// Package toptables builds the top-N survey comparison report: it reads the
// source workbooks, assembles and ranks the four report tables, formats the
// display columns and writes a single multi-sheet workbook.
package toptables

import (
	"log/slog"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/config"
)

// DefaultOutputPath is the report file written when no path is given.
const DefaultOutputPath = "top_n_tables.xlsx"

// Options configures a report run.
type Options struct {
	// Variant selects the built-in table specs (median or mean).
	Variant config.Variant
	// Top keeps the N most significant rows per table.
	// Zero or negative keeps every row.
	Top int
	// InputDir is the directory holding the source workbooks.
	InputDir string
	// OutputPath is the report file to write.
	OutputPath string
	// ConfigPath, when set, replaces the built-in specs with a YAML file.
	ConfigPath string
	// Logger receives progress records. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default report options.
func DefaultOptions() Options {
	return Options{
		Variant:    config.VariantMedian,
		InputDir:   ".",
		OutputPath: DefaultOutputPath,
	}
}

// Limit returns the row limit, or 0 when every row is kept.
func (o Options) Limit() int {
	if o.Top > 0 {
		return o.Top
	}
	return 0
}

// logger returns the configured logger or the default one.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Specs returns the table specs for this run: the YAML file at ConfigPath
// when set, otherwise the built-in specs for Variant.
func (o Options) Specs() ([]TableSpec, error) {
	if o.ConfigPath != "" {
		return config.Load(o.ConfigPath)
	}
	variant := o.Variant
	if variant == "" {
		variant = config.VariantMedian
	}
	return config.Defaults(variant)
}
