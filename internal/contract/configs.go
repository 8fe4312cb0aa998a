package contract

import (
	"fmt"
	"strings"

	"github.com/edustats/gradeboard/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 5
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
	DefaultSeed        = 42
	DefaultStudents    = 25
	DefaultQuestions   = 15
)

// DefaultConsultBound is the exam percent below which a student is put on
// the consultation list.
const DefaultConsultBound = 50.0

// Default artifact paths, matching what each pipeline writes when no
// override is given.
const (
	DefaultJournalFile   = "journal.csv"
	DefaultExamFile      = "exam_results.csv"
	DefaultExamPlanFile  = "exam_plan.csv"
	DefaultJournalExcel  = "journal_analysis.xlsx"
	DefaultExamExcel     = "exam_analysis.xlsx"
	DefaultJournalReport = "report.txt"
	DefaultExamReport    = "exam_report.txt"
	DefaultChartDir      = "."
)

// Config holds the runtime configuration for an analysis run.
// This struct remains the "final, validated" config.
type Config struct {
	InputFile   string // Journal or exam results CSV, depending on the command
	PlanFile    string // Exam plan CSV (exam command only)
	ResultLimit int    // Top-N size for rankings
	Precision   int    // Decimal precision for numeric columns
	Output      schema.OutputMode
	OutputFile  string // Optional path for text/csv/json/parquet output
	ExcelFile   string // Workbook path, empty disables the export
	ReportFile  string // Text report path, empty disables the report
	ChartDir    string // Directory for rendered PNG charts
	Width       int    // Terminal width override (0 = auto-detect)
	Seed        int64  // Seed for the synthetic generator fallback
	Students    int    // Synthetic roster size
	UseColors   bool   // Enable colored labels in table output

	// GradeScale buckets student averages; PassScale buckets pass rates.
	// Both are built from configured bounds, never hard-coded downstream.
	GradeScale schema.Scale
	PassScale  schema.Scale

	// StrugglingBound is the average below which a journal student is
	// listed as struggling; ConsultBound is the exam percent below which a
	// student lands on the consultation list.
	StrugglingBound float64
	ConsultBound    float64
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// Set manually from positional args, so no tag.
	InputFileStr string

	Limit           int     `mapstructure:"limit"`
	Precision       int     `mapstructure:"precision"`
	Output          string  `mapstructure:"output"`
	OutputFile      string  `mapstructure:"output-file"`
	ExcelFile       string  `mapstructure:"excel-file"`
	ReportFile      string  `mapstructure:"report-file"`
	ChartDir        string  `mapstructure:"chart-dir"`
	PlanFile        string  `mapstructure:"plan-file"`
	Width           int     `mapstructure:"width"`
	Seed            int64   `mapstructure:"seed"`
	Students        int     `mapstructure:"students"`
	Color           string  `mapstructure:"color"`
	ExcellentBound  float64 `mapstructure:"excellent-bound"`
	GoodBound       float64 `mapstructure:"good-bound"`
	SatisfactoryBnd float64 `mapstructure:"satisfactory-bound"`
	PassBound       float64 `mapstructure:"pass-bound"`
	StrugglingBound float64 `mapstructure:"struggling-bound"`
	ConsultBound    float64 `mapstructure:"consult-bound"`
}

// ProcessAndValidate turns raw input into a validated Config. It checks
// ranges, parses enum-ish strings and builds the classification scales.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}
	if input.Precision < 0 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 0 and 4, got %d", input.Precision)
	}

	output, err := parseOutputMode(input.Output)
	if err != nil {
		return err
	}

	if input.Students <= 0 {
		return fmt.Errorf("students must be positive, got %d", input.Students)
	}

	if !(input.ExcellentBound > input.GoodBound && input.GoodBound > input.SatisfactoryBnd) {
		return fmt.Errorf("grade bounds must descend: excellent %.2f > good %.2f > satisfactory %.2f",
			input.ExcellentBound, input.GoodBound, input.SatisfactoryBnd)
	}
	if input.PassBound <= 0 || input.PassBound > 100 {
		return fmt.Errorf("pass-bound must be within (0, 100], got %.1f", input.PassBound)
	}

	cfg.InputFile = input.InputFileStr
	cfg.PlanFile = input.PlanFile
	cfg.ResultLimit = input.Limit
	cfg.Precision = input.Precision
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.ExcelFile = input.ExcelFile
	cfg.ReportFile = input.ReportFile
	cfg.ChartDir = input.ChartDir
	cfg.Width = input.Width
	cfg.Seed = input.Seed
	cfg.Students = input.Students
	cfg.UseColors = ParseBoolOption(input.Color)
	cfg.GradeScale = schema.NewGradeScale(input.ExcellentBound, input.GoodBound, input.SatisfactoryBnd)
	cfg.PassScale = schema.NewPassScale(input.PassBound)
	cfg.StrugglingBound = input.StrugglingBound
	cfg.ConsultBound = input.ConsultBound
	return nil
}

// parseOutputMode validates the output format string.
func parseOutputMode(s string) (schema.OutputMode, error) {
	switch schema.OutputMode(strings.ToLower(strings.TrimSpace(s))) {
	case schema.TextOut, "":
		return schema.TextOut, nil
	case schema.CSVOut:
		return schema.CSVOut, nil
	case schema.JSONOut:
		return schema.JSONOut, nil
	case schema.ParquetOut:
		return schema.ParquetOut, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, csv, json or parquet)", s)
	}
}

// ParseBoolOption interprets the loose yes/no strings accepted by the
// --color flag. Unknown values count as false.
func ParseBoolOption(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	default:
		return false
	}
}
