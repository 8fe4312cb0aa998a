package cmd

import (
	"github.com/edustats/gradeboard/core"
	"github.com/edustats/gradeboard/internal/contract"
	"github.com/spf13/cobra"
)

// dashboardCmd renders the journal analysis as static charts.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard [journal-csv]",
	Short: "Render the gradebook analysis as PNG charts.",
	Long: `Run the same aggregation pass as the journal command, then render
PNG charts instead of console tables: subject means, grade distribution,
top students and the class-average trend per quarter.

Examples:
  # Charts for the default journal.csv into the current directory
  gradeboard dashboard

  # Charts for a specific gradebook into a dedicated directory
  gradeboard dashboard grades.csv --chart-dir charts`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: journalSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDashboard(cfg); err != nil {
			contract.LogFatal("Cannot render dashboard", err)
		}
	},
}
