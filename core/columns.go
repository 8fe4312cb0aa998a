package core

import (
	"math"

	"github.com/edustats/gradeboard/schema"
)

// ComputeSubjectStats derives the per-column metrics of the journal
// pipeline: mean (2 decimals), min and max for every value column, in
// column order. NaN cells are excluded; a column with no present values
// reports NaN across the board.
func ComputeSubjectStats(t *schema.Table) []schema.SubjectStats {
	stats := make([]schema.SubjectStats, 0, len(t.Columns))
	for _, col := range t.Columns {
		var present []float64
		for _, row := range t.Rows {
			v, ok := row.Scores[col]
			if !ok || math.IsNaN(v) {
				continue
			}
			present = append(present, v)
		}
		lo, hi := MinMax(present)
		stats = append(stats, schema.SubjectStats{
			Subject: col,
			Mean:    Round2(Mean(present)),
			Min:     lo,
			Max:     hi,
		})
	}
	return stats
}

// ComputeClassSummary aggregates the row-level averages into class-wide
// statistics: mean, median, sample standard deviation, min, max, the
// per-status distribution and the best/worst subject. All float fields are
// NaN for an empty table.
func ComputeClassSummary(results []schema.StudentResult, subjects []schema.SubjectStats) schema.ClassSummary {
	counts := make(map[schema.Status]int, len(schema.GradeStatusOrder))
	for _, s := range schema.GradeStatusOrder {
		counts[s] = 0
	}

	averages := make([]float64, 0, len(results))
	for _, r := range results {
		counts[r.Status]++
		if !math.IsNaN(r.Average) {
			averages = append(averages, r.Average)
		}
	}

	lo, hi := MinMax(averages)
	best, worst := pickBestWorstSubjects(subjects)
	return schema.ClassSummary{
		Students:     len(results),
		Mean:         Round2(Mean(averages)),
		Median:       Round2(Median(averages)),
		StdDev:       Round2(SampleStdDev(averages)),
		Min:          lo,
		Max:          hi,
		StatusCounts: counts,
		BestSubject:  best,
		WorstSubject: worst,
	}
}

// pickBestWorstSubjects selects the subjects with the highest and lowest
// mean. Ties break to the lexicographically smaller subject name, so the
// selection never depends on column order.
func pickBestWorstSubjects(subjects []schema.SubjectStats) (best, worst string) {
	bestMean := math.Inf(-1)
	worstMean := math.Inf(1)
	for _, s := range subjects {
		if math.IsNaN(s.Mean) {
			continue
		}
		if s.Mean > bestMean || (s.Mean == bestMean && s.Subject < best) {
			best, bestMean = s.Subject, s.Mean
		}
		if s.Mean < worstMean || (s.Mean == worstMean && s.Subject < worst) {
			worst, worstMean = s.Subject, s.Mean
		}
	}
	return best, worst
}
