package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/edustats/gradeboard/internal/contract"
	"github.com/edustats/gradeboard/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteExamResults outputs the exam analysis, dispatching based on the
// output format configured.
func WriteExamResults(analysis *schema.ExamAnalysis, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(1)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, analysis)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeExamCSV(w, analysis, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return writeExamParquet(analysis, cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeExamTables(w, analysis, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeExamTables generates and writes the per-question and per-topic
// tables plus the exam summary block.
func writeExamTables(w io.Writer, analysis *schema.ExamAnalysis, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	nameWidth := getMaxTableNameWidth(cfg)

	questionTable := tablewriter.NewWriter(w)
	questionTable.Header([]string{"Question", "Topic", "Difficulty", "Correct", "Pass Rate", "Status"})
	questionTable.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})
	var questionData [][]string
	for _, q := range analysis.Questions {
		questionData = append(questionData, []string{
			q.Question,
			contract.TruncateName(q.Topic, nameWidth),
			string(q.Difficulty),
			fmt.Sprintf("%d", q.Correct),
			fmtFloat(q.PassRate) + "%",
			statusCell(q.Status, cfg),
		})
	}
	if err := questionTable.Bulk(questionData); err != nil {
		return err
	}
	if err := questionTable.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	topicTable := tablewriter.NewWriter(w)
	topicTable.Header([]string{"Topic", "Questions", "Pass Rate", "Status"})
	topicTable.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})
	var topicData [][]string
	for _, t := range analysis.Topics {
		topicData = append(topicData, []string{
			contract.TruncateName(t.Topic, nameWidth),
			fmt.Sprintf("%d", t.Questions),
			fmtFloat(t.PassRate) + "%",
			statusCell(t.Status, cfg),
		})
	}
	if err := topicTable.Bulk(topicData); err != nil {
		return err
	}
	if err := topicTable.Render(); err != nil {
		return err
	}

	s := analysis.Summary
	fmt.Fprintf(w, "\n%d students, %d questions: mean %s%%, median %s%%, range %s%%–%s%%\n",
		s.Students, s.Questions, fmtFloat(s.Mean), fmtFloat(s.Median), fmtFloat(s.Min), fmtFloat(s.Max))

	if len(analysis.Problematic) > 0 {
		fmt.Fprintf(w, "\nProblematic questions (%d):\n", len(analysis.Problematic))
		for _, q := range analysis.Problematic {
			fmt.Fprintf(w, "  - %s (%s): %s%%\n", q.Question, q.Topic, fmtFloat(q.PassRate))
		}
	} else {
		fmt.Fprintf(w, "\nNo problematic questions.\n")
	}

	if len(analysis.Struggling) > 0 {
		fmt.Fprintf(w, "\nStudents below %s%% (%d):\n", fmtFloat(cfg.ConsultBound), len(analysis.Struggling))
		for _, sc := range analysis.Struggling {
			fmt.Fprintf(w, "  - %s: %s%% (%d points)\n", sc.Student, fmtFloat(sc.Percent), sc.Total)
		}
	}

	fmt.Fprintf(w, "\nAnalysis completed in %v\n", duration)
	return nil
}

// writeExamCSV writes the per-question stats in CSV format.
func writeExamCSV(w io.Writer, analysis *schema.ExamAnalysis, fmtFloat func(float64) string) error {
	header := []string{"question", "topic", "difficulty", "correct", "pass_rate", "status"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, q := range analysis.Questions {
			rec := []string{
				q.Question,
				q.Topic,
				string(q.Difficulty),
				fmt.Sprintf("%d", q.Correct),
				fmtFloat(q.PassRate),
				string(q.Status),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
