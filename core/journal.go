package core

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/edustats/gradeboard/internal/contract"
	"github.com/edustats/gradeboard/internal/loader"
	"github.com/edustats/gradeboard/internal/outwriter"
	"github.com/edustats/gradeboard/schema"
)

// ExecuteJournalAnalysis runs the journal command: load (or synthesize) the
// gradebook, derive per-student and per-subject statistics, and write every
// configured artifact.
func ExecuteJournalAnalysis(cfg *contract.Config) error {
	start := time.Now()

	table, err := loadJournalTable(cfg)
	if err != nil {
		return err
	}

	analysis := AnalyzeJournal(table, cfg)

	if err := outwriter.WriteJournalResults(analysis, cfg, time.Since(start)); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	if cfg.ExcelFile != "" {
		if err := outwriter.WriteJournalWorkbook(table, analysis, cfg.ExcelFile); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
	}
	if cfg.ReportFile != "" {
		if err := outwriter.WriteJournalReport(analysis, cfg, time.Now()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// AnalyzeJournal derives the full journal analysis from a table. It is the
// single aggregation pass shared by the journal and dashboard commands.
func AnalyzeJournal(table *schema.Table, cfg *contract.Config) *schema.JournalAnalysis {
	results := ComputeStudentResults(table, cfg.GradeScale)
	subjects := ComputeSubjectStats(table)
	return &schema.JournalAnalysis{
		Students:   results,
		Subjects:   subjects,
		Summary:    ComputeClassSummary(results, subjects),
		Top:        TopStudents(results, cfg.ResultLimit),
		Struggling: BelowAverage(results, cfg.StrugglingBound),
	}
}

// loadJournalTable loads the configured journal CSV, falling back to the
// seeded synthetic generator when the file does not exist.
func loadJournalTable(cfg *contract.Config) (*schema.Table, error) {
	table, err := loader.LoadJournal(cfg.InputFile)
	if err == nil {
		return table, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	contract.LogWarn(fmt.Sprintf("%s not found, generating sample data", cfg.InputFile), err)
	return loader.NewGenerator(cfg.Seed).Journal(cfg.Students), nil
}
