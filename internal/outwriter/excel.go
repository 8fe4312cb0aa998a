package outwriter

import (
	"fmt"
	"math"

	"github.com/edustats/gradeboard/schema"
	"github.com/xuri/excelize/v2"
)

// Fill colors for status cells, one per grade bucket.
var statusFills = map[schema.Status]string{
	schema.StatusExcellent:    "90EE90",
	schema.StatusGood:         "FFFFE0",
	schema.StatusSatisfactory: "FFD700",
	schema.StatusAttention:    "FF6347",
	schema.StatusProblematic:  "FF6347",
	schema.StatusOK:           "90EE90",
}

// WriteJournalWorkbook writes the augmented gradebook to an Excel workbook:
// raw scores, derived average and status per student, with the status cell
// filled per bucket and columns sized to their content.
func WriteJournalWorkbook(t *schema.Table, analysis *schema.JournalAnalysis, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Journal"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := append([]string{"Student"}, t.Columns...)
	header = append(header, "Average", "Status")
	if err := writeSheetRow(f, sheet, 1, toCells(header)); err != nil {
		return err
	}

	statusCol := len(header)
	for i, row := range t.Rows {
		cells := make([]any, 0, len(header))
		cells = append(cells, row.Student)
		for _, col := range t.Columns {
			v := row.Scores[col]
			if math.IsNaN(v) {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, v)
		}
		r := analysis.Students[i]
		cells = append(cells, r.Average, string(r.Status))
		if err := writeSheetRow(f, sheet, i+2, cells); err != nil {
			return err
		}
		if err := fillStatusCell(f, sheet, statusCol, i+2, r.Status); err != nil {
			return err
		}
	}

	if err := autoSizeColumns(f, sheet, header, len(t.Rows)+1); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// WriteExamWorkbook writes the exam analysis to a three-sheet workbook:
// per-student scores, per-question stats and the topic rollup.
func WriteExamWorkbook(analysis *schema.ExamAnalysis, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "Students"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeSheetRow(f, "Students", 1, toCells([]string{"Student", "Total", "Percent"})); err != nil {
		return err
	}
	for i, s := range analysis.Scores {
		if err := writeSheetRow(f, "Students", i+2, []any{s.Student, s.Total, s.Percent}); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Questions"); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	qHeader := []string{"Question", "Topic", "Difficulty", "Correct", "Pass Rate", "Status"}
	if err := writeSheetRow(f, "Questions", 1, toCells(qHeader)); err != nil {
		return err
	}
	for i, q := range analysis.Questions {
		cells := []any{q.Question, q.Topic, string(q.Difficulty), q.Correct, q.PassRate, string(q.Status)}
		if err := writeSheetRow(f, "Questions", i+2, cells); err != nil {
			return err
		}
		if err := fillStatusCell(f, "Questions", len(qHeader), i+2, q.Status); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Topics"); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	tHeader := []string{"Topic", "Questions", "Pass Rate", "Status"}
	if err := writeSheetRow(f, "Topics", 1, toCells(tHeader)); err != nil {
		return err
	}
	for i, t := range analysis.Topics {
		cells := []any{t.Topic, t.Questions, t.PassRate, string(t.Status)}
		if err := writeSheetRow(f, "Topics", i+2, cells); err != nil {
			return err
		}
		if err := fillStatusCell(f, "Topics", len(tHeader), i+2, t.Status); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// writeSheetRow writes one row of cells starting at column A.
func writeSheetRow(f *excelize.File, sheet string, row int, cells []any) error {
	for i, v := range cells {
		name, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, name, v); err != nil {
			return fmt.Errorf("set cell %s: %w", name, err)
		}
	}
	return nil
}

// fillStatusCell applies the bucket's fill color to a status cell.
func fillStatusCell(f *excelize.File, sheet string, col, row int, status schema.Status) error {
	fill, ok := statusFills[status]
	if !ok {
		return nil
	}
	styleID, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("new style: %w", err)
	}
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellStyle(sheet, name, name, styleID); err != nil {
		return fmt.Errorf("set style %s: %w", name, err)
	}
	return nil
}

// autoSizeColumns widens each column to its longest cell plus padding.
func autoSizeColumns(f *excelize.File, sheet string, header []string, rows int) error {
	rowsData, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read back rows: %w", err)
	}
	for c := range header {
		maxLen := 0
		for r := 0; r < len(rowsData) && r <= rows; r++ {
			if c < len(rowsData[r]) && len(rowsData[r][c]) > maxLen {
				maxLen = len(rowsData[r][c])
			}
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, float64(maxLen+2)); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	return nil
}

// toCells converts a string slice to the any slice writeSheetRow expects.
func toCells(ss []string) []any {
	cells := make([]any, len(ss))
	for i, s := range ss {
		cells[i] = s
	}
	return cells
}

