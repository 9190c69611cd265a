package toptables

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/frame"
	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/output"
	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/parser"
)

type (
	// TableSpec describes how one report table is assembled.
	TableSpec = models.TableSpec
	// Report is the ordered set of tables written to one workbook.
	Report = models.Report
)

// Run builds the report described by opts and writes it to opts.OutputPath.
// Nothing is written unless every table builds.
func Run(opts Options) (*Report, error) {
	specs, err := opts.Specs()
	if err != nil {
		return nil, fmt.Errorf("failed to load table specs: %w", err)
	}

	report, err := Build(specs, opts)
	if err != nil {
		return nil, err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}
	if err := output.WriteWorkbook(outputPath, report); err != nil {
		return nil, err
	}

	opts.logger().Info("Report written",
		slog.String("path", outputPath),
		slog.Int("tables", len(report.Tables)))
	return report, nil
}

// Build assembles one table per spec, in spec order.
func Build(specs []TableSpec, opts Options) (*Report, error) {
	report := &Report{}
	for _, spec := range specs {
		table, summary, err := BuildTable(spec, opts)
		if err != nil {
			return nil, err
		}
		report.Tables = append(report.Tables, table)
		report.Summaries = append(report.Summaries, summary)
	}
	return report, nil
}

// BuildTable reads the spec's sources and returns the ranked, truncated and
// formatted table, along with the p-value summary taken before truncation.
func BuildTable(spec TableSpec, opts Options) (*models.Table, models.Summary, error) {
	logger := opts.logger().With(slog.String("table", spec.Name))

	paths := make([]string, len(spec.Sources))
	for i, src := range spec.Sources {
		paths[i] = filepath.Join(opts.InputDir, src)
	}
	logger.Debug("Reading sources", slog.Any("paths", paths))

	datasets, err := parser.ReadWorkbooks(paths)
	if err != nil {
		return nil, models.Summary{}, NewBuildError(spec.Name, "read", err)
	}

	table, err := frame.Assemble(spec, datasets)
	if err != nil {
		return nil, models.Summary{}, NewBuildError(spec.Name, "assemble", err)
	}
	if err := frame.Drop(table, spec.Drop...); err != nil {
		return nil, models.Summary{}, NewBuildError(spec.Name, "drop", err)
	}
	logger.Debug("Assembled table",
		slog.Int("datasets", len(datasets)),
		slog.Int("rows", table.Len()))

	if err := frame.Rank(table, spec.PValueColumn); err != nil {
		return nil, models.Summary{}, NewBuildError(spec.Name, "rank", err)
	}

	summary, err := frame.Summarize(table, spec.PValueColumn)
	if err != nil {
		return nil, models.Summary{}, NewBuildError(spec.Name, "summarize", err)
	}

	frame.Truncate(table, opts.Limit())

	if err := frame.FormatScientific(table, spec.PValueColumn); err != nil {
		return nil, models.Summary{}, NewBuildError(spec.Name, "format", err)
	}
	if err := frame.FormatFixed(table, spec.FixedColumns...); err != nil {
		return nil, models.Summary{}, NewBuildError(spec.Name, "format", err)
	}

	logger.Info("Table built",
		slog.Int("rows", table.Len()),
		slog.Int("total_rows", summary.Rows),
		slog.Int("missing_p", summary.Missing),
		slog.Float64("min_p", summary.MinP),
		slog.Float64("median_p", summary.MedianP),
		slog.Float64("max_p", summary.MaxP))

	return table, summary, nil
}
