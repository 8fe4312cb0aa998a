// Package loader reads and writes the CSV inputs of gradeboard: the journal
// table, the exam results table and the exam plan. It is the only place
// that touches raw input, so malformed data never reaches the aggregators.
package loader

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/edustats/gradeboard/schema"
)

// LoadJournal reads a gradebook CSV: the first column is the student
// identifier, every other column is a numeric score. An empty cell becomes
// NaN (excluded from means later); any other non-numeric cell is a hard
// error. Duplicate student identifiers are rejected.
func LoadJournal(path string) (*schema.Table, error) {
	return loadTable(path)
}

// LoadExamResults reads a binary-scored results CSV. On top of the journal
// rules, every present value must be exactly 0 or 1.
func LoadExamResults(path string) (*schema.Table, error) {
	t, err := loadTable(path)
	if err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		for _, col := range t.Columns {
			v := row.Scores[col]
			if math.IsNaN(v) {
				continue
			}
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("%s: question %q for %q has non-binary value %v", path, col, row.Student, v)
			}
		}
	}
	return t, nil
}

// LoadExamPlan reads the question plan CSV with columns
// question,topic,difficulty,max_score.
func LoadExamPlan(path string) ([]schema.PlanEntry, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: empty plan file", path)
	}
	plan := make([]schema.PlanEntry, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < 4 {
			return nil, fmt.Errorf("%s: plan row %d has %d columns, want 4", path, i+2, len(rec))
		}
		maxScore, err := strconv.Atoi(strings.TrimSpace(rec[3]))
		if err != nil {
			return nil, fmt.Errorf("%s: plan row %d has non-numeric max score %q", path, i+2, rec[3])
		}
		difficulty, err := parseDifficulty(rec[2])
		if err != nil {
			return nil, fmt.Errorf("%s: plan row %d: %w", path, i+2, err)
		}
		plan = append(plan, schema.PlanEntry{
			Question:   strings.TrimSpace(rec[0]),
			Topic:      strings.TrimSpace(rec[1]),
			Difficulty: difficulty,
			MaxScore:   maxScore,
		})
	}
	return plan, nil
}

// loadTable reads a CSV into a Table, enforcing the shared-shape invariant:
// every row has the header's columns.
func loadTable(path string) (*schema.Table, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%s: header needs an identifier column and at least one value column", path)
	}
	columns := make([]string, 0, len(header)-1)
	for _, h := range header[1:] {
		columns = append(columns, strings.TrimSpace(h))
	}

	table := &schema.Table{Columns: columns}
	seen := make(map[string]bool, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d", path, i+2, len(rec), len(header))
		}
		student := strings.TrimSpace(rec[0])
		if student == "" {
			return nil, fmt.Errorf("%s: row %d has an empty student identifier", path, i+2)
		}
		if seen[student] {
			return nil, fmt.Errorf("%s: duplicate student identifier %q", path, student)
		}
		seen[student] = true

		scores := make(map[string]float64, len(columns))
		for j, col := range columns {
			cell := strings.TrimSpace(rec[j+1])
			if cell == "" {
				scores[col] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d column %q has non-numeric score %q", path, i+2, col, cell)
			}
			scores[col] = v
		}
		table.Rows = append(table.Rows, schema.Record{Student: student, Scores: scores})
	}
	return table, nil
}

// readCSV slurps a CSV file into records.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// parseDifficulty validates a difficulty band string.
func parseDifficulty(s string) (schema.Difficulty, error) {
	switch schema.Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case schema.DifficultyEasy:
		return schema.DifficultyEasy, nil
	case schema.DifficultyMedium:
		return schema.DifficultyMedium, nil
	case schema.DifficultyHard:
		return schema.DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// SaveTable writes a Table back to CSV with the given identifier header.
// NaN cells round-trip as empty strings.
func SaveTable(t *schema.Table, idHeader, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := append([]string{idHeader}, t.Columns...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, row := range t.Rows {
		rec := make([]string, 0, len(header))
		rec = append(rec, row.Student)
		for _, col := range t.Columns {
			v := row.Scores[col]
			if math.IsNaN(v) {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

// SaveExamPlan writes the plan CSV consumed by LoadExamPlan.
func SaveExamPlan(plan []schema.PlanEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"question", "topic", "difficulty", "max_score"}); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, e := range plan {
		rec := []string{e.Question, e.Topic, string(e.Difficulty), strconv.Itoa(e.MaxScore)}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
