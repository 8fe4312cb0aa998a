package outwriter

import (
	"fmt"
	"os"

	"github.com/edustats/gradeboard/internal/parquet"
	"github.com/edustats/gradeboard/schema"
)

// writeJournalParquet exports the augmented student rows as Parquet.
func writeJournalParquet(analysis *schema.JournalAnalysis, outputFile string) error {
	if err := parquet.WriteStudentRows(analysis.Students, outputFile); err != nil {
		return fmt.Errorf("error writing parquet output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", outputFile)
	return nil
}

// writeExamParquet exports the per-question stats as Parquet.
func writeExamParquet(analysis *schema.ExamAnalysis, outputFile string) error {
	if err := parquet.WriteQuestionRows(analysis.Questions, outputFile); err != nil {
		return fmt.Errorf("error writing parquet output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", outputFile)
	return nil
}
