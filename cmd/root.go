package cmd

import (
	"fmt"
	"strings"

	"github.com/edustats/gradeboard/internal/contract"
	"github.com/edustats/gradeboard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file,
// env, flags). Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "gradeboard",
	Short:              "Analyze gradebook and test-result tables.",
	Long:               `Gradeboard turns a class gradebook or test-results CSV into ranked tables, reports, spreadsheets and charts.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".gradeboard") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("GRADEBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("limit", contract.DefaultResultLimit)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("seed", contract.DefaultSeed)
	viper.SetDefault("students", contract.DefaultStudents)
	viper.SetDefault("color", "yes")
	viper.SetDefault("chart-dir", contract.DefaultChartDir)
	viper.SetDefault("excellent-bound", schema.DefaultExcellentBound)
	viper.SetDefault("good-bound", schema.DefaultGoodBound)
	viper.SetDefault("satisfactory-bound", schema.DefaultSatisfactoryBound)
	viper.SetDefault("pass-bound", schema.DefaultPassBound)
	viper.SetDefault("struggling-bound", schema.DefaultStrugglingBound)
	viper.SetDefault("consult-bound", contract.DefaultConsultBound)
}

// sharedSetup unmarshals config and runs validation. The default input file
// depends on the command, so it comes in as an argument.
func sharedSetup(args []string, defaultInput string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.InputFileStr = args[0]
	} else {
		input.InputFileStr = defaultInput
	}
	if input.PlanFile == "" {
		input.PlanFile = contract.DefaultExamPlanFile
	}

	// 4. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// journalSetup and examSetup wrap sharedSetup for Cobra's PreRunE.
func journalSetup(_ *cobra.Command, args []string) error {
	return sharedSetup(args, contract.DefaultJournalFile)
}

func examSetup(_ *cobra.Command, args []string) error {
	return sharedSetup(args, contract.DefaultExamFile)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
