// Package schema has configs, models and shared constants for all parts of gradeboard.
package schema

import "math"

// Record is a single row of the gradebook: one student and their scores,
// keyed by column name. A score may be NaN when the source cell was empty.
type Record struct {
	Student string             // Student identifier, unique within a table
	Scores  map[string]float64 // Column name -> numeric score
}

// Table is the in-memory dataset for a single run. Row order is the order
// of the source file (or generator) and is preserved by every aggregation.
type Table struct {
	Columns []string // Value-bearing column names, in source order
	Rows    []Record
}

// Score returns the value of the named column for the given row.
// Missing columns report as NaN, same as an empty source cell.
func (t *Table) Score(row int, column string) float64 {
	v, ok := t.Rows[row].Scores[column]
	if !ok {
		return math.NaN()
	}
	return v
}

// StudentResult is the derived per-row output of the row aggregator.
type StudentResult struct {
	Student string  `json:"student"`
	Average float64 `json:"average"` // Mean over present value columns, rounded to 2 decimals
	Status  Status  `json:"status"`  // Grade-scale bucket for Average
}

// SubjectStats is the derived per-column output of the column aggregator.
type SubjectStats struct {
	Subject string  `json:"subject"`
	Mean    float64 `json:"mean"` // Rounded to 2 decimals
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// ClassSummary aggregates the row-level averages across the whole table.
// All float fields are NaN for an empty table.
type ClassSummary struct {
	Students int     `json:"students"`
	Mean     float64 `json:"mean"`   // Rounded to 2 decimals
	Median   float64 `json:"median"` // Rounded to 2 decimals
	StdDev   float64 `json:"stddev"` // Sample (n-1) definition, rounded to 2 decimals
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`

	// StatusCounts maps each grade-scale bucket to the number of students in it.
	StatusCounts map[Status]int `json:"status_counts"`

	BestSubject  string `json:"best_subject"`  // Highest subject mean, lexical tie-break
	WorstSubject string `json:"worst_subject"` // Lowest subject mean, lexical tie-break
}

// QuestionStats is the derived per-question output of the exam pipeline.
type QuestionStats struct {
	Question    string     `json:"question"`
	Topic       string     `json:"topic"`
	Difficulty  Difficulty `json:"difficulty"`
	Correct     int        `json:"correct"`      // Rows where the answer equals the correct sentinel
	PassRate    float64    `json:"pass_rate"`    // Percentage, rounded to 1 decimal
	Status      Status     `json:"status"`       // Pass-scale bucket for PassRate
	Problematic bool       `json:"problematic"`  // Status == StatusProblematic
}

// TopicStats is the per-topic rollup of question pass rates.
type TopicStats struct {
	Topic       string  `json:"topic"`
	Questions   int     `json:"questions"`
	PassRate    float64 `json:"pass_rate"` // Unweighted mean of question pass rates, 1 decimal
	Status      Status  `json:"status"`
	Problematic bool    `json:"problematic"`
}

// ExamScore is the derived per-student output of the exam pipeline.
type ExamScore struct {
	Student string  `json:"student"`
	Total   int     `json:"total"`   // Questions answered correctly
	Percent float64 `json:"percent"` // Total over all questions, rounded to 1 decimal
}

// ExamSummary aggregates percent scores across the whole exam table.
type ExamSummary struct {
	Students  int     `json:"students"`
	Questions int     `json:"questions"`
	Mean      float64 `json:"mean"` // Rounded to 1 decimal
	Median    float64 `json:"median"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

// PlanEntry describes one question of the exam plan: which topic it belongs
// to and how hard it was designed to be.
type PlanEntry struct {
	Question   string
	Topic      string
	Difficulty Difficulty
	MaxScore   int
}

// QuarterPoint is one point of the class-average trend across school quarters.
type QuarterPoint struct {
	Quarter string  `json:"quarter"`
	Average float64 `json:"average"`
}
