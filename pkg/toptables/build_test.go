package toptables

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nathanbollig/vet-graduate-expectations-survey/internal/logging"
	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/config"
	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/output"
)

// writeSource saves a workbook with one sheet per entry of sheets. Each
// sheet gets headers as its first row.
func writeSource(t *testing.T, path string, headers []string, sheets ...[][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, rows := range sheets {
		name := fmt.Sprintf("Sheet%d", i+1)
		if i > 0 {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		header := make([]interface{}, len(headers))
		for j, h := range headers {
			header[j] = h
		}
		require.NoError(t, f.SetSheetRow(name, "A1", &header))
		for r, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	require.NoError(t, f.SaveAs(path))
}

func medianHeaders(a, b string) []string {
	return []string{
		"Subquestion",
		a + ": median (IQR)", a + ": num responses",
		b + ": median (IQR)", b + ": num responses",
		"pval", "pval_corrected", "sig",
	}
}

func medianRow(item string, p float64) []interface{} {
	return []interface{}{item, "3.0 (1.0)", 20, "4.0 (2.0)", 30, p / 2, p, "*"}
}

// writeMedianSources writes the ten workbooks of the median variant. Each
// category workbook holds p-values offset by its position so the ranking
// across files can be checked.
func writeMedianSources(t *testing.T, dir string) {
	t.Helper()

	for i, name := range []string{"companion_animal", "equine", "food_animal", "special_species"} {
		base := float64(i+1) / 100
		writeSource(t, filepath.Join(dir, name+".xlsx"), medianHeaders("SVM", "WVMA"),
			[][]interface{}{medianRow(name+" q1", base), medianRow(name+" q2", base/10)},
			[][]interface{}{medianRow(name+" q3", base*5)},
		)
		writeSource(t, filepath.Join(dir, name+"_sg.xlsx"), medianHeaders("specialist", "generalist"),
			[][]interface{}{medianRow(name+" sg q1", base), medianRow(name+" sg q2", base*2)},
		)
	}

	writeSource(t, filepath.Join(dir, "summary_nontechnical_allspecies.xlsx"), medianHeaders("SVM", "WVMA"),
		[][]interface{}{medianRow("s1", 0.3), medianRow("s2", 0.0000456), medianRow("s3", 0.02)},
	)
	writeSource(t, filepath.Join(dir, "summary_sg_nontechnical_allspecies.xlsx"), medianHeaders("specialist", "generalist"),
		[][]interface{}{medianRow("e1", 0.5), medianRow("e2", 0.25)},
	)
}

func testOptions(dir string) Options {
	opts := DefaultOptions()
	opts.InputDir = dir
	opts.OutputPath = filepath.Join(dir, DefaultOutputPath)
	opts.Logger = logging.Discard()
	return opts
}

func column(table *models.Table, name string) []models.Value {
	idx := table.ColumnIndex(name)
	out := make([]models.Value, len(table.Rows))
	for i, row := range table.Rows {
		out[i] = row[idx]
	}
	return out
}

func TestBuildMedian(t *testing.T) {
	dir := t.TempDir()
	writeMedianSources(t, dir)

	specs, err := config.Defaults(config.VariantMedian)
	require.NoError(t, err)

	report, err := Build(specs, testOptions(dir))
	require.NoError(t, err)
	require.Len(t, report.Tables, 4)
	require.Len(t, report.Summaries, 4)

	b := report.Tables[0]
	assert.Equal(t, "Table_B", b.Name)
	assert.Equal(t, []string{
		"Item", "Emphasis Area", "SVM median (IQR)", "SVM responses",
		"WVMA median (IQR)", "WVMA responses", "P value", "sig",
	}, b.Columns)
	assert.Equal(t, 12, b.Len())
	assert.Equal(t, []models.Value{"companion_animal q2", "Companion Animal", "3.0 (1.0)", int64(20),
		"4.0 (2.0)", int64(30), "1.000e-03", "*"}, b.Rows[0])
	assert.Equal(t, "Equine", b.Rows[1][1])

	c := report.Tables[1]
	assert.Equal(t, []string{
		"Item", "SVM median (IQR)", "SVM responses",
		"WVMA median (IQR)", "WVMA responses", "P value", "sig",
	}, c.Columns)
	assert.Equal(t, []models.Value{"4.560e-05", "2.000e-02", "3.000e-01"}, column(c, "P value"))

	d := report.Tables[2]
	assert.Equal(t, "Specialist median (IQR)", d.Columns[2])
	assert.Equal(t, "Companion Animal ", d.Rows[0][1])

	e := report.Tables[3]
	assert.NotContains(t, e.Columns, models.EmphasisAreaColumn)
	assert.Equal(t, []models.Value{"e2", "e1"}, column(e, "Item"))

	assert.Equal(t, 12, report.Summaries[0].Rows)
	assert.Equal(t, 0.0000456, report.Summaries[1].MinP)
}

func TestBuildTopN(t *testing.T) {
	dir := t.TempDir()
	writeMedianSources(t, dir)

	specs, err := config.Defaults(config.VariantMedian)
	require.NoError(t, err)

	totals := []int{12, 3, 8, 2}
	tests := []struct {
		top      int
		expected []int
	}{
		{2, []int{2, 2, 2, 2}},
		{5, []int{5, 3, 5, 2}},
		{0, []int{12, 3, 8, 2}},
		{-1, []int{12, 3, 8, 2}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("top=%d", tt.top), func(t *testing.T) {
			opts := testOptions(dir)
			opts.Top = tt.top

			report, err := Build(specs, opts)
			require.NoError(t, err)

			for i, table := range report.Tables {
				assert.Equal(t, tt.expected[i], table.Len(), table.Name)
				// Summaries always describe the full ranked table
				assert.Equal(t, totals[i], report.Summaries[i].Rows, table.Name)
			}
		})
	}

	opts := testOptions(dir)
	opts.Top = 2
	report, err := Build(specs, opts)
	require.NoError(t, err)
	assert.Equal(t, []models.Value{"companion_animal q2", "equine q2"}, column(report.Tables[0], "Item"))
}

func TestBuildMean(t *testing.T) {
	dir := t.TempDir()
	headers := []string{
		"Subquestion", "SVM: mean", "SVM: num responses", "WVMA: mean", "WVMA: num responses",
		"mean_diff", "pval", "sig",
	}
	path := filepath.Join(dir, "equine.xlsx")
	writeSource(t, path, headers, [][]interface{}{
		{"q1", 3.456, 10, 2.5, 12, 0.956, 0.2, ""},
		{"q2", 4, 10, 1.25, 12, 2.75, 0.0001, "*"},
	})

	specs, err := config.Defaults(config.VariantMean)
	require.NoError(t, err)
	spec := specs[0]
	spec.Sources = []string{"equine.xlsx"}

	table, summary, err := BuildTable(spec, testOptions(dir))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Rows)
	assert.Equal(t, []models.Value{"q2", "Equine", "4.00", int64(10), "1.25", int64(12), "2.75", "1.000e-04", "*"}, table.Rows[0])
	assert.Equal(t, []models.Value{"q1", "Equine", "3.46", int64(10), "2.50", int64(12), "0.96", "2.000e-01", nil}, table.Rows[1])
}

func TestBuildMissingPValuesAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary_nontechnical_allspecies.xlsx")
	writeSource(t, path, medianHeaders("SVM", "WVMA"), [][]interface{}{
		{"q1", "3 (1)", 10, "4 (1)", 12, 0.25, 0.5, false},
		{"q2", "3 (1)", 10, "4 (1)", 12, 0.05, "NaN", false},
		{"Infinity", "3 (1)", 10, "4 (1)", 12, 0.05, 0.1, true},
		{"q4", "3 (1)", 10, "4 (1)", 12, 0.15, 0.3, false},
	})

	specs, err := config.Defaults(config.VariantMedian)
	require.NoError(t, err)

	table, summary, err := BuildTable(specs[1], testOptions(dir))
	require.NoError(t, err)
	assert.Equal(t, []models.Value{"1.000e-01", "3.000e-01", "5.000e-01", "nan"}, column(table, "P value"))
	assert.Equal(t, []models.Value{"Infinity", "q4", "q1", "q2"}, column(table, "Item"))
	assert.Equal(t, []models.Value{true, false, false, false}, column(table, "sig"))
	assert.Equal(t, 1, summary.Missing)

	out := filepath.Join(dir, "out.xlsx")
	require.NoError(t, output.WriteWorkbook(out, &Report{Tables: []*models.Table{table}}))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	item, err := f.GetCellValue("Table_C", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Infinity", item)
	flag, err := f.GetCellValue("Table_C", "G2")
	require.NoError(t, err)
	assert.Equal(t, "TRUE", flag)
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()
	specs, err := config.Defaults(config.VariantMedian)
	require.NoError(t, err)

	// Nothing on disk yet
	_, err = Build(specs, testOptions(dir))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceNotFound))

	var buildErr *BuildError
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, "Table_B", buildErr.Table)
	assert.Equal(t, "read", buildErr.Stage)

	// Source lacking most of the expected columns
	path := filepath.Join(dir, "equine.xlsx")
	writeSource(t, path, []string{"Subquestion", "SVM: median (IQR)"}, [][]interface{}{{"q1", "1 (0)"}})
	spec := specs[0]
	spec.Sources = []string{"equine.xlsx"}

	_, _, err = BuildTable(spec, testOptions(dir))
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
	var malformed *MalformedSheetError
	assert.True(t, errors.As(err, &malformed))

	// Text in the p-value column
	headers := medianHeaders("SVM", "WVMA")
	writeSource(t, path, headers, [][]interface{}{{"q1", "1 (0)", 1, "1 (0)", 1, 0.1, "<0.001", ""}})
	_, _, err = BuildTable(spec, testOptions(dir))
	assert.True(t, errors.Is(err, ErrFormatConversion))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeMedianSources(t, dir)

	opts := testOptions(dir)
	opts.Top = 3
	report, err := Run(opts)
	require.NoError(t, err)
	require.Len(t, report.Tables, 4)

	f, err := excelize.OpenFile(opts.OutputPath)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Table_B", "Table_C", "Table_D", "Table_E"}, f.GetSheetList())
	rows, err := f.GetRows("Table_C")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "P value", rows[0][5])
	assert.Equal(t, "4.560e-05", rows[1][5])
}

func TestRunLeavesNoOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(dir)

	_, err := Run(opts)
	require.Error(t, err)

	_, statErr := os.Stat(opts.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeMedianSources(t, dir)

	cfg := filepath.Join(dir, "tables.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`tables:
  - name: Equine
    sources: [equine.xlsx]
    source_columns: [Subquestion, pval_corrected]
    columns: [Item, P value]
    p_value_column: P value
`), 0644))

	opts := testOptions(dir)
	opts.ConfigPath = cfg
	report, err := Run(opts)
	require.NoError(t, err)
	require.Len(t, report.Tables, 1)
	assert.Equal(t, []models.Value{"equine q2", "equine q1", "equine q3"}, column(report.Tables[0], "Item"))

	opts.ConfigPath = filepath.Join(dir, "missing.yaml")
	_, err = Run(opts)
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestOptionsLimit(t *testing.T) {
	tests := []struct {
		top      int
		expected int
	}{
		{10, 10},
		{0, 0},
		{-5, 0},
	}

	for _, tt := range tests {
		opts := Options{Top: tt.top}
		assert.Equal(t, tt.expected, opts.Limit(), "top=%d", tt.top)
	}
}
