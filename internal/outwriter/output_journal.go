package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/edustats/gradeboard/internal/contract"
	"github.com/edustats/gradeboard/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteJournalResults outputs the journal analysis, dispatching based on the
// output format configured.
func WriteJournalResults(analysis *schema.JournalAnalysis, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, analysis)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJournalCSV(w, analysis, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return writeJournalParquet(analysis, cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJournalTables(w, analysis, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeJournalTables generates and writes the human-readable tables and the
// class summary block.
func writeJournalTables(w io.Writer, analysis *schema.JournalAnalysis, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	nameWidth := getMaxTableNameWidth(cfg)

	// 1. A table per student, ranked projections afterwards.
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Student", "Average", "Status"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, r := range analysis.Students {
		data = append(data, []string{
			contract.TruncateName(r.Student, nameWidth),
			fmtFloat(r.Average),
			statusCell(r.Status, cfg),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// 2. Class summary block.
	s := analysis.Summary
	fmt.Fprintf(w, "\nClass of %d students: mean %s, median %s, stddev %s, range %s–%s\n",
		s.Students, fmtFloat(s.Mean), fmtFloat(s.Median), fmtFloat(s.StdDev), fmtFloat(s.Min), fmtFloat(s.Max))
	for _, status := range schema.GradeStatusOrder {
		fmt.Fprintf(w, "  %-16s %d\n", string(status)+":", s.StatusCounts[status])
	}
	if s.BestSubject != "" {
		fmt.Fprintf(w, "Best subject: %s, hardest subject: %s\n", s.BestSubject, s.WorstSubject)
	}

	// 3. Subject statistics.
	fmt.Fprintln(w)
	subjectTable := tablewriter.NewWriter(w)
	subjectTable.Header([]string{"Subject", "Mean", "Min", "Max"})
	subjectTable.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})
	var subjectData [][]string
	for _, sub := range analysis.Subjects {
		subjectData = append(subjectData, []string{
			contract.TruncateName(sub.Subject, nameWidth),
			fmtFloat(sub.Mean),
			fmtFloat(sub.Min),
			fmtFloat(sub.Max),
		})
	}
	if err := subjectTable.Bulk(subjectData); err != nil {
		return err
	}
	if err := subjectTable.Render(); err != nil {
		return err
	}

	// 4. Rankings.
	fmt.Fprintf(w, "\nTop %d students:\n", len(analysis.Top))
	for i, r := range analysis.Top {
		fmt.Fprintf(w, "  %d. %s: %s (%s)\n", i+1, r.Student, fmtFloat(r.Average), r.Status)
	}
	if len(analysis.Struggling) > 0 {
		fmt.Fprintf(w, "\nStudents needing attention (%d):\n", len(analysis.Struggling))
		for _, r := range analysis.Struggling {
			fmt.Fprintf(w, "  - %s: %s (%s)\n", r.Student, fmtFloat(r.Average), r.Status)
		}
	} else {
		fmt.Fprintf(w, "\nNo students below the attention bound.\n")
	}

	fmt.Fprintf(w, "\nAnalysis completed in %v\n", duration)
	return nil
}

// writeJournalCSV writes the augmented student rows in CSV format, in table
// order. The first column is the 1-based row number, not a ranking.
func writeJournalCSV(w io.Writer, analysis *schema.JournalAnalysis, fmtFloat func(float64) string) error {
	header := []string{"row", "student", "average", "status"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, r := range analysis.Students {
			rec := []string{
				strconv.Itoa(i + 1),
				r.Student,
				fmtFloat(r.Average),
				string(r.Status),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// statusCell renders a status label, colored when enabled.
func statusCell(s schema.Status, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorStatus(s)
	}
	return string(s)
}
