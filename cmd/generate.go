package cmd

import (
	"github.com/edustats/gradeboard/core"
	"github.com/edustats/gradeboard/internal/contract"
	"github.com/spf13/cobra"
)

// generateCmd writes the sample datasets to disk.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write deterministic sample journal and exam CSV files.",
	Long: `Synthesize the sample datasets the other commands fall back to:
journal.csv, exam_results.csv and exam_plan.csv.

The generator is driven entirely by --seed, so the same seed always
produces byte-identical files.

Examples:
  # Default 25-student roster with the default seed
  gradeboard generate

  # A bigger class with a different seed
  gradeboard generate --students 40 --seed 7`,
	Args:    cobra.NoArgs,
	PreRunE: journalSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGenerate(cfg); err != nil {
			contract.LogFatal("Cannot generate sample data", err)
		}
	},
}
