package cmd

import (
	"github.com/edustats/gradeboard/core"
	"github.com/edustats/gradeboard/internal/contract"
	"github.com/spf13/cobra"
)

// examCmd performs the test-results analysis.
var examCmd = &cobra.Command{
	Use:   "exam [results-csv]",
	Short: "Analyze binary test results and find problematic questions.",
	Long: `Compute per-question pass rates, per-topic rollups and per-student
percent scores from a binary results CSV (0 = wrong, 1 = correct).

Topics and difficulties come from the plan CSV (--plan-file). Questions
and topics with a pass rate below --pass-bound are flagged as problematic.
When the results file does not exist, a deterministic sample exam is
generated from --seed instead.

Examples:
  # Analyze the default exam_results.csv
  gradeboard exam

  # Custom problem threshold and the full artifact set
  gradeboard exam results.csv --pass-bound 70 \
    --excel-file exam_analysis.xlsx --report-file exam_report.txt`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: examSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExamAnalysis(cfg); err != nil {
			contract.LogFatal("Cannot run exam analysis", err)
		}
	},
}
