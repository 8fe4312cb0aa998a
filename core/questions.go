package core

import (
	"sort"

	"github.com/edustats/gradeboard/schema"
)

// ComputeQuestionStats derives the per-question metrics of the exam
// pipeline: for every binary-scored column, the number of students whose
// answer equals the correct sentinel and that count as a percentage of all
// students, rounded to 1 decimal and classified through the pass scale.
// Topic and difficulty come from the exam plan; a question missing from the
// plan keeps empty plan fields. An empty table reports NaN pass rates.
func ComputeQuestionStats(t *schema.Table, plan []schema.PlanEntry, scale schema.Scale) []schema.QuestionStats {
	planByQuestion := make(map[string]schema.PlanEntry, len(plan))
	for _, e := range plan {
		planByQuestion[e.Question] = e
	}

	stats := make([]schema.QuestionStats, 0, len(t.Columns))
	for _, col := range t.Columns {
		correct := 0
		for _, row := range t.Rows {
			if row.Scores[col] == schema.CorrectSentinel {
				correct++
			}
		}
		rate := Round1(float64(correct) / float64(len(t.Rows)) * 100)
		status := scale.Classify(rate)
		entry := planByQuestion[col]
		stats = append(stats, schema.QuestionStats{
			Question:    col,
			Topic:       entry.Topic,
			Difficulty:  entry.Difficulty,
			Correct:     correct,
			PassRate:    rate,
			Status:      status,
			Problematic: status == schema.StatusProblematic,
		})
	}
	return stats
}

// ComputeExamScores derives the per-student metrics of the exam pipeline:
// total correct answers and the percentage over all questions, rounded to
// 1 decimal. The denominator is the full question count, so an unanswered
// question counts as incorrect.
func ComputeExamScores(t *schema.Table) []schema.ExamScore {
	scores := make([]schema.ExamScore, 0, len(t.Rows))
	for _, row := range t.Rows {
		total := 0
		for _, col := range t.Columns {
			if row.Scores[col] == schema.CorrectSentinel {
				total++
			}
		}
		scores = append(scores, schema.ExamScore{
			Student: row.Student,
			Total:   total,
			Percent: Round1(float64(total) / float64(len(t.Columns)) * 100),
		})
	}
	return scores
}

// ComputeExamSummary aggregates percent scores across the exam table.
// All float fields are NaN when there are no students.
func ComputeExamSummary(scores []schema.ExamScore, questions int) schema.ExamSummary {
	percents := make([]float64, 0, len(scores))
	for _, s := range scores {
		percents = append(percents, s.Percent)
	}
	lo, hi := MinMax(percents)
	return schema.ExamSummary{
		Students:  len(scores),
		Questions: questions,
		Mean:      Round1(Mean(percents)),
		Median:    Round1(Median(percents)),
		Min:       lo,
		Max:       hi,
	}
}

// ProblematicQuestions filters the question stats down to the problematic
// ones, ordered ascending by pass rate (worst first, stable on ties).
func ProblematicQuestions(stats []schema.QuestionStats) []schema.QuestionStats {
	var problems []schema.QuestionStats
	for _, q := range stats {
		if q.Problematic {
			problems = append(problems, q)
		}
	}
	sort.SliceStable(problems, func(i, j int) bool {
		return problems[i].PassRate < problems[j].PassRate
	})
	return problems
}

// StrugglingExamScores returns students whose percent is strictly below the
// bound, ascending by percent. The input slice is never reordered.
func StrugglingExamScores(scores []schema.ExamScore, bound float64) []schema.ExamScore {
	var struggling []schema.ExamScore
	for _, s := range scores {
		if s.Percent < bound {
			struggling = append(struggling, s)
		}
	}
	sort.SliceStable(struggling, func(i, j int) bool {
		return struggling[i].Percent < struggling[j].Percent
	})
	return struggling
}
