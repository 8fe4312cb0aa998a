// Package parquet provides data structures and functions for exporting
// gradeboard analysis data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/edustats/gradeboard/schema"
	"github.com/parquet-go/parquet-go"
)

// StudentRow is one augmented journal row in the Parquet export.
type StudentRow struct {
	// Student is the row identifier
	Student string `parquet:"student,snappy"`

	// Average is the derived mean over the value columns
	Average float64 `parquet:"average,snappy"`

	// Status is the grade-scale bucket for Average
	Status string `parquet:"status,snappy"`
}

// QuestionRow is one per-question stats row in the Parquet export.
type QuestionRow struct {
	// Question is the column identifier
	Question string `parquet:"question,snappy"`

	// Topic is the plan topic the question belongs to
	Topic string `parquet:"topic,snappy"`

	// Difficulty is the designed difficulty band
	Difficulty string `parquet:"difficulty,snappy"`

	// Correct is the number of students who answered correctly
	Correct int32 `parquet:"correct,snappy"`

	// PassRate is Correct as a percentage of all students
	PassRate float64 `parquet:"pass_rate,snappy"`

	// Problematic marks pass rates under the configured bound
	Problematic bool `parquet:"problematic,snappy"`
}

// WriteStudentRows writes the journal analysis rows to a Parquet file.
func WriteStudentRows(results []schema.StudentResult, outputPath string) error {
	rows := make([]StudentRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, StudentRow{
			Student: r.Student,
			Average: r.Average,
			Status:  string(r.Status),
		})
	}
	return writeRows(rows, outputPath)
}

// WriteQuestionRows writes the exam question stats to a Parquet file.
func WriteQuestionRows(questions []schema.QuestionStats, outputPath string) error {
	rows := make([]QuestionRow, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, QuestionRow{
			Question:    q.Question,
			Topic:       q.Topic,
			Difficulty:  string(q.Difficulty),
			Correct:     int32(q.Correct),
			PassRate:    q.PassRate,
			Problematic: q.Problematic,
		})
	}
	return writeRows(rows, outputPath)
}

// writeRows writes any row type to a Parquet file, with the schema derived
// from struct tags.
func writeRows[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
