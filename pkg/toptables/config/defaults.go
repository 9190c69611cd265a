package config

import (
	"fmt"

	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/models"
)

// Variant selects which statistic the source workbooks carry.
type Variant string

const (
	// VariantMedian reads median (IQR) text and corrected p-values.
	VariantMedian Variant = "median"
	// VariantMean reads numeric means, a mean difference and raw p-values.
	VariantMean Variant = "mean"
)

// PValueColumn is the output name of the sort key in the built-in tables.
const PValueColumn = "P value"

// ParseVariant converts a flag value to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantMedian, VariantMean:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q (must be median or mean)", ErrUnknownVariant, s)
}

// group names one side of a comparison as it appears in source and
// output column names.
type group struct {
	source string
	output string
}

var (
	svm        = group{source: "SVM", output: "SVM"}
	wvma       = group{source: "WVMA", output: "WVMA"}
	specialist = group{source: "specialist", output: "Specialist"}
	generalist = group{source: "generalist", output: "Generalist"}
)

var (
	categorySources = []string{
		"companion_animal.xlsx",
		"equine.xlsx",
		"food_animal.xlsx",
		"special_species.xlsx",
	}
	categorySGSources = []string{
		"companion_animal_sg.xlsx",
		"equine_sg.xlsx",
		"food_animal_sg.xlsx",
		"special_species_sg.xlsx",
	}
	summarySources   = []string{"summary_nontechnical_allspecies.xlsx"}
	summarySGSources = []string{"summary_sg_nontechnical_allspecies.xlsx"}
)

// Defaults returns the four built-in table specs (Table_B to Table_E) for
// the given variant. The summary tables C and E drop the Emphasis Area
// column since their single source workbook gives every row the same label.
func Defaults(variant Variant) ([]models.TableSpec, error) {
	build := medianSpec
	switch variant {
	case VariantMedian:
	case VariantMean:
		build = meanSpec
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	summary := []string{models.EmphasisAreaColumn}
	return []models.TableSpec{
		build("Table_B", categorySources, svm, wvma, nil),
		build("Table_C", summarySources, svm, wvma, summary),
		build("Table_D", categorySGSources, specialist, generalist, nil),
		build("Table_E", summarySGSources, specialist, generalist, summary),
	}, nil
}

func medianSpec(name string, sources []string, a, b group, drop []string) models.TableSpec {
	return models.TableSpec{
		Name:    name,
		Sources: sources,
		SourceColumns: []string{
			"Subquestion",
			models.EmphasisAreaColumn,
			a.source + ": median (IQR)",
			a.source + ": num responses",
			b.source + ": median (IQR)",
			b.source + ": num responses",
			"pval_corrected",
			"sig",
		},
		Columns: []string{
			"Item",
			models.EmphasisAreaColumn,
			a.output + " median (IQR)",
			a.output + " responses",
			b.output + " median (IQR)",
			b.output + " responses",
			PValueColumn,
			"sig",
		},
		Drop:         drop,
		PValueColumn: PValueColumn,
	}
}

func meanSpec(name string, sources []string, a, b group, drop []string) models.TableSpec {
	return models.TableSpec{
		Name:    name,
		Sources: sources,
		SourceColumns: []string{
			"Subquestion",
			models.EmphasisAreaColumn,
			a.source + ": mean",
			a.source + ": num responses",
			b.source + ": mean",
			b.source + ": num responses",
			"mean_diff",
			"pval",
			"sig",
		},
		Columns: []string{
			"Item",
			models.EmphasisAreaColumn,
			a.output + " avg",
			a.output + " responses",
			b.output + " avg",
			b.output + " responses",
			"Mean difference",
			PValueColumn,
			"sig",
		},
		Drop:         drop,
		PValueColumn: PValueColumn,
		FixedColumns: []string{a.output + " avg", b.output + " avg", "Mean difference"},
	}
}
