package core

import (
	"sort"

	"github.com/edustats/gradeboard/schema"
)

// TopStudents returns the top n students by descending average. The sort is
// stable: students with equal averages keep their original row order. If n
// exceeds the number of students, everyone is returned. The input slice is
// never reordered.
func TopStudents(results []schema.StudentResult, n int) []schema.StudentResult {
	ranked := make([]schema.StudentResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Average > ranked[j].Average
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// BelowAverage returns the students whose average is strictly below the
// given bound, ordered ascending by average (worst first, stable on ties).
// The input slice is never reordered.
func BelowAverage(results []schema.StudentResult, bound float64) []schema.StudentResult {
	var struggling []schema.StudentResult
	for _, r := range results {
		if r.Average < bound {
			struggling = append(struggling, r)
		}
	}
	sort.SliceStable(struggling, func(i, j int) bool {
		return struggling[i].Average < struggling[j].Average
	})
	return struggling
}
