// Package cmd defines the command-line interface for gradeboard.
package cmd

import (
	"github.com/edustats/gradeboard/internal/contract"
	"github.com/edustats/gradeboard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of students in the top ranking")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Int64("seed", contract.DefaultSeed, "Seed for the synthetic data generator")
	rootCmd.PersistentFlags().Int("students", contract.DefaultStudents, "Roster size for synthetic data")
	rootCmd.PersistentFlags().Float64("excellent-bound", schema.DefaultExcellentBound, "Average at or above which a student is Excellent")
	rootCmd.PersistentFlags().Float64("good-bound", schema.DefaultGoodBound, "Average at or above which a student is Good")
	rootCmd.PersistentFlags().Float64("satisfactory-bound", schema.DefaultSatisfactoryBound, "Average at or above which a student is Satisfactory")
	rootCmd.PersistentFlags().Float64("pass-bound", schema.DefaultPassBound, "Pass rate below which a question or topic is problematic")
	rootCmd.PersistentFlags().Float64("struggling-bound", schema.DefaultStrugglingBound, "Average below which a student needs attention")
	rootCmd.PersistentFlags().Float64("consult-bound", contract.DefaultConsultBound, "Exam percent below which a student needs a consultation")
	rootCmd.PersistentFlags().String("excel-file", "", "Optional workbook path for the Excel export")
	rootCmd.PersistentFlags().String("report-file", "", "Optional path for the text report")
	rootCmd.PersistentFlags().String("chart-dir", contract.DefaultChartDir, "Directory for rendered charts (empty disables)")
	rootCmd.PersistentFlags().String("plan-file", "", "Exam plan CSV (question, topic, difficulty, max score)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
