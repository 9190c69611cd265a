// Package main provides the CLI entry point for toptables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathanbollig/vet-graduate-expectations-survey/internal/logging"
	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables"
	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/config"
	"github.com/nathanbollig/vet-graduate-expectations-survey/pkg/toptables/output"
)

var (
	top        int
	variant    string
	configPath string
	inputDir   string
	outputPath string
	verbose    bool
	summary    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toptables",
		Short: "Build top-N survey comparison tables",
		Long: `toptables reads the survey comparison workbooks in the input directory,
builds Table_B to Table_E ranked by p-value and writes them to one workbook.

Expected workbooks (median and mean variants use the same file names):
  companion_animal.xlsx, equine.xlsx, food_animal.xlsx, special_species.xlsx,
  summary_nontechnical_allspecies.xlsx and their _sg counterparts
  (summary_sg_nontechnical_allspecies.xlsx for the summary).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	defaults := toptables.DefaultOptions()
	rootCmd.Flags().IntVar(&top, "top", 0, "Keep the N most significant rows per table (0 or negative: keep all)")
	rootCmd.Flags().StringVar(&variant, "variant", string(defaults.Variant), "Source layout: median or mean")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with table specs (overrides --variant)")
	rootCmd.Flags().StringVar(&inputDir, "dir", defaults.InputDir, "Directory holding the source workbooks")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", defaults.OutputPath, "Output workbook path")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print per-table p-value summaries as JSON")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.New(cmd.ErrOrStderr(), verbose)

	// Parse variant
	v, err := config.ParseVariant(variant)
	if err != nil {
		return err
	}

	// Validate input directory exists
	if _, err := os.Stat(inputDir); os.IsNotExist(err) {
		return fmt.Errorf("input directory not found: %s", inputDir)
	}

	opts := toptables.Options{
		Variant:    v,
		Top:        top,
		InputDir:   inputDir,
		OutputPath: outputPath,
		ConfigPath: configPath,
		Logger:     logger,
	}

	report, err := toptables.Run(opts)
	if err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	if summary {
		jsonData, err := output.SummariesToJSON(report.Summaries, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	return nil
}
