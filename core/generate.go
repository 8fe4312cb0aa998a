package core

import (
	"fmt"

	"github.com/edustats/gradeboard/internal/contract"
	"github.com/edustats/gradeboard/internal/loader"
)

// ExecuteGenerate runs the generate command: synthesize the sample journal,
// exam results and exam plan CSVs from the configured seed. The same seed
// always produces byte-identical files.
func ExecuteGenerate(cfg *contract.Config) error {
	gen := loader.NewGenerator(cfg.Seed)

	journal := gen.Journal(cfg.Students)
	if err := loader.SaveTable(journal, "student", contract.DefaultJournalFile); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}
	fmt.Printf("Wrote %s (%d students, %d subjects)\n", contract.DefaultJournalFile, len(journal.Rows), len(journal.Columns))

	plan := gen.ExamPlan()
	if err := loader.SaveExamPlan(plan, contract.DefaultExamPlanFile); err != nil {
		return fmt.Errorf("save exam plan: %w", err)
	}
	fmt.Printf("Wrote %s (%d questions)\n", contract.DefaultExamPlanFile, len(plan))

	results := gen.ExamResults(cfg.Students, plan)
	if err := loader.SaveTable(results, "student", contract.DefaultExamFile); err != nil {
		return fmt.Errorf("save exam results: %w", err)
	}
	fmt.Printf("Wrote %s (%d students, %d questions)\n", contract.DefaultExamFile, len(results.Rows), len(results.Columns))
	return nil
}
