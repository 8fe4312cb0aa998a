package cmd

import (
	"github.com/edustats/gradeboard/core"
	"github.com/edustats/gradeboard/internal/contract"
	"github.com/spf13/cobra"
)

// journalCmd performs the gradebook analysis.
var journalCmd = &cobra.Command{
	Use:   "journal [journal-csv]",
	Short: "Analyze a gradebook and rank students by average score.",
	Long: `Compute per-student averages and statuses, per-subject statistics and
class-wide aggregates from a gradebook CSV.

The first CSV column is the student identifier; every other column is a
numeric score. When the file does not exist, a deterministic sample
gradebook is generated from --seed instead.

Examples:
  # Analyze the default journal.csv with colored console tables
  gradeboard journal

  # Top 10 students, two decimal places, CSV to a file
  gradeboard journal --limit 10 --output csv --output-file averages.csv

  # Also write the Excel workbook and the text report
  gradeboard journal grades.csv --excel-file journal_analysis.xlsx --report-file report.txt`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: journalSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteJournalAnalysis(cfg); err != nil {
			contract.LogFatal("Cannot run journal analysis", err)
		}
	},
}
