// Package contract provides configuration and shared utilities for the
// internal architecture.
package contract

import (
	"fmt"
	"math"
	"os"

	"github.com/edustats/gradeboard/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	ExcellentColor    = color.New(color.FgGreen, color.Bold)   // top of the grade scale
	GoodColor         = color.New(color.FgCyan)                // solid, unremarkable
	SatisfactoryColor = color.New(color.FgYellow)              // standard caution, not bold
	AttentionColor    = color.New(color.FgRed, color.Bold)     // needs intervention
	OKColor           = color.New(color.FgGreen)               // pass-scale fine
	ProblematicColor  = color.New(color.FgMagenta, color.Bold) // pass-scale failure
)

// GetColorStatus returns a colored status label for console output (table).
// Unknown statuses pass through uncolored.
func GetColorStatus(s schema.Status) string {
	switch s {
	case schema.StatusExcellent:
		return ExcellentColor.Sprint(string(s))
	case schema.StatusGood:
		return GoodColor.Sprint(string(s))
	case schema.StatusSatisfactory:
		return SatisfactoryColor.Sprint(string(s))
	case schema.StatusAttention:
		return AttentionColor.Sprint(string(s))
	case schema.StatusOK:
		return OKColor.Sprint(string(s))
	case schema.StatusProblematic:
		return ProblematicColor.Sprint(string(s))
	default:
		return string(s)
	}
}

// FormatScore renders a float with the given precision, with NaN shown as
// "n/a". Every numeric cell in tables, reports and CSV goes through this.
func FormatScore(v float64, precision int) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", precision, v)
}

// TruncateName shortens a student or subject name to maxLen runes with an
// ellipsis, for narrow terminals.
func TruncateName(name string, maxLen int) string {
	rr := []rune(name)
	if len(rr) <= maxLen || maxLen <= 1 {
		return name
	}
	return string(rr[:maxLen-1]) + "…"
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
