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

// ExecuteExamAnalysis runs the exam command: load (or synthesize) the
// binary results table and its plan, derive question, topic and student
// statistics, and write every configured artifact including the charts.
func ExecuteExamAnalysis(cfg *contract.Config) error {
	start := time.Now()

	table, plan, err := loadExamTable(cfg)
	if err != nil {
		return err
	}

	analysis := AnalyzeExam(table, plan, cfg)

	if err := outwriter.WriteExamResults(analysis, cfg, time.Since(start)); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	if cfg.ExcelFile != "" {
		if err := outwriter.WriteExamWorkbook(analysis, cfg.ExcelFile); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
	}
	if cfg.ReportFile != "" {
		if err := outwriter.WriteExamReport(analysis, cfg, time.Now()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if cfg.ChartDir != "" {
		if err := outwriter.RenderExamCharts(analysis, cfg); err != nil {
			return fmt.Errorf("render charts: %w", err)
		}
	}
	return nil
}

// AnalyzeExam derives the full exam analysis from a results table and its
// plan.
func AnalyzeExam(table *schema.Table, plan []schema.PlanEntry, cfg *contract.Config) *schema.ExamAnalysis {
	questions := ComputeQuestionStats(table, plan, cfg.PassScale)
	scores := ComputeExamScores(table)
	return &schema.ExamAnalysis{
		Scores:      scores,
		Questions:   questions,
		Topics:      RollupTopics(questions, cfg.PassScale),
		Summary:     ComputeExamSummary(scores, len(table.Columns)),
		Problematic: ProblematicQuestions(questions),
		Struggling:  StrugglingExamScores(scores, cfg.ConsultBound),
	}
}

// loadExamTable loads the configured results and plan CSVs, falling back to
// the seeded synthetic generator when the results file does not exist. A
// missing plan file alone is not fatal: questions then carry empty topic
// and difficulty fields.
func loadExamTable(cfg *contract.Config) (*schema.Table, []schema.PlanEntry, error) {
	table, err := loader.LoadExamResults(cfg.InputFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, err
		}
		contract.LogWarn(fmt.Sprintf("%s not found, generating sample data", cfg.InputFile), err)
		gen := loader.NewGenerator(cfg.Seed)
		plan := gen.ExamPlan()
		return gen.ExamResults(cfg.Students, plan), plan, nil
	}

	plan, err := loader.LoadExamPlan(cfg.PlanFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, err
		}
		contract.LogWarn(fmt.Sprintf("%s not found, questions keep empty topics", cfg.PlanFile), err)
		plan = nil
	}
	return table, plan, nil
}
