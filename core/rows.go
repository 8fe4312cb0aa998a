package core

import (
	"math"

	"github.com/edustats/gradeboard/schema"
)

// ComputeStudentResults derives the per-row metrics of the journal pipeline:
// for every student, the arithmetic mean over the table's value columns
// rounded to 2 decimals, classified through the grade scale. A NaN cell
// (empty in the source) is excluded from the mean; a row with no present
// values gets a NaN average and the scale's catch-all bucket. Row order is
// preserved and the table is not mutated.
func ComputeStudentResults(t *schema.Table, scale schema.Scale) []schema.StudentResult {
	results := make([]schema.StudentResult, 0, len(t.Rows))
	for _, row := range t.Rows {
		var present []float64
		for _, col := range t.Columns {
			v, ok := row.Scores[col]
			if !ok || math.IsNaN(v) {
				continue
			}
			present = append(present, v)
		}
		avg := Round2(Mean(present))
		results = append(results, schema.StudentResult{
			Student: row.Student,
			Average: avg,
			Status:  scale.Classify(avg),
		})
	}
	return results
}
