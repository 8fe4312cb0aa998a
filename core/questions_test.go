package core

import (
	"math"
	"testing"

	"github.com/edustats/gradeboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var passScale = schema.NewPassScale(schema.DefaultPassBound)

// examFixture is a 5-student, 3-question binary matrix: Q1 passes 4/5,
// Q2 passes 3/5, Q3 passes 2/5.
func examFixture() *schema.Table {
	answers := map[string][]float64{
		"s1": {1, 1, 0},
		"s2": {1, 1, 1},
		"s3": {1, 0, 0},
		"s4": {1, 1, 1},
		"s5": {0, 0, 0},
	}
	return makeTable([]string{"Q1", "Q2", "Q3"}, answers, []string{"s1", "s2", "s3", "s4", "s5"})
}

func examPlanFixture() []schema.PlanEntry {
	return []schema.PlanEntry{
		{Question: "Q1", Topic: "Algebra", Difficulty: schema.DifficultyEasy, MaxScore: 1},
		{Question: "Q2", Topic: "Algebra", Difficulty: schema.DifficultyMedium, MaxScore: 1},
		{Question: "Q3", Topic: "Geometry", Difficulty: schema.DifficultyHard, MaxScore: 1},
	}
}

// TestComputeQuestionStats tests pass rates, classification and the plan join.
func TestComputeQuestionStats(t *testing.T) {
	stats := ComputeQuestionStats(examFixture(), examPlanFixture(), passScale)
	require.Len(t, stats, 3)

	t.Run("pass rates", func(t *testing.T) {
		assert.Equal(t, 4, stats[0].Correct)
		assert.InDelta(t, 80.0, stats[0].PassRate, 1e-9)
		assert.InDelta(t, 60.0, stats[1].PassRate, 1e-9)
		assert.InDelta(t, 40.0, stats[2].PassRate, 1e-9)
	})

	t.Run("exactly at the pass bound is not problematic", func(t *testing.T) {
		assert.Equal(t, schema.StatusOK, stats[1].Status)
		assert.False(t, stats[1].Problematic)
	})

	t.Run("below the bound is problematic", func(t *testing.T) {
		assert.Equal(t, schema.StatusProblematic, stats[2].Status)
		assert.True(t, stats[2].Problematic)
	})

	t.Run("plan fields are joined in", func(t *testing.T) {
		assert.Equal(t, "Algebra", stats[0].Topic)
		assert.Equal(t, schema.DifficultyHard, stats[2].Difficulty)
	})
}

// TestComputeQuestionStatsNoPlan tests that stats survive a missing plan.
func TestComputeQuestionStatsNoPlan(t *testing.T) {
	stats := ComputeQuestionStats(examFixture(), nil, passScale)
	require.Len(t, stats, 3)
	assert.Empty(t, stats[0].Topic)
	assert.InDelta(t, 80.0, stats[0].PassRate, 1e-9)
}

// TestComputeQuestionStatsEmptyTable tests the zero-student edge case.
func TestComputeQuestionStatsEmptyTable(t *testing.T) {
	table := &schema.Table{Columns: []string{"Q1"}}
	stats := ComputeQuestionStats(table, nil, passScale)
	require.Len(t, stats, 1)
	assert.True(t, math.IsNaN(stats[0].PassRate))
	assert.True(t, stats[0].Problematic)
}

// TestComputeExamScores tests per-student totals and percentages.
func TestComputeExamScores(t *testing.T) {
	scores := ComputeExamScores(examFixture())
	require.Len(t, scores, 5)

	assert.Equal(t, "s1", scores[0].Student)
	assert.Equal(t, 2, scores[0].Total)
	assert.InDelta(t, 66.7, scores[0].Percent, 1e-9)

	assert.Equal(t, 3, scores[1].Total)
	assert.InDelta(t, 100.0, scores[1].Percent, 1e-9)

	assert.Equal(t, 0, scores[4].Total)
	assert.InDelta(t, 0.0, scores[4].Percent, 1e-9)
}

// TestComputeExamSummary tests the score rollup.
func TestComputeExamSummary(t *testing.T) {
	scores := ComputeExamScores(examFixture())
	summary := ComputeExamSummary(scores, 3)

	assert.Equal(t, 5, summary.Students)
	assert.Equal(t, 3, summary.Questions)
	// percents: 66.7, 100, 33.3, 100, 0
	assert.InDelta(t, 60.0, summary.Mean, 1e-9)
	assert.InDelta(t, 66.7, summary.Median, 1e-9)
	assert.InDelta(t, 0.0, summary.Min, 1e-9)
	assert.InDelta(t, 100.0, summary.Max, 1e-9)
}

// TestComputeExamSummaryEmpty tests the no-students edge case.
func TestComputeExamSummaryEmpty(t *testing.T) {
	summary := ComputeExamSummary(nil, 15)
	assert.Equal(t, 0, summary.Students)
	assert.True(t, math.IsNaN(summary.Mean))
	assert.True(t, math.IsNaN(summary.Median))
}

// TestProblematicQuestions tests the filter and worst-first ordering.
func TestProblematicQuestions(t *testing.T) {
	stats := []schema.QuestionStats{
		{Question: "Q1", PassRate: 80.0, Problematic: false},
		{Question: "Q2", PassRate: 55.0, Problematic: true},
		{Question: "Q3", PassRate: 20.0, Problematic: true},
		{Question: "Q4", PassRate: 55.0, Problematic: true},
	}

	problems := ProblematicQuestions(stats)
	require.Len(t, problems, 3)
	assert.Equal(t, "Q3", problems[0].Question)
	assert.Equal(t, "Q2", problems[1].Question)
	assert.Equal(t, "Q4", problems[2].Question, "equal rates keep question order")
}

// TestStrugglingExamScores tests the consultation-list filter.
func TestStrugglingExamScores(t *testing.T) {
	scores := ComputeExamScores(examFixture())

	struggling := StrugglingExamScores(scores, 50.0)
	require.Len(t, struggling, 2)
	assert.Equal(t, "s5", struggling[0].Student)
	assert.Equal(t, "s3", struggling[1].Student)

	t.Run("input is not reordered", func(t *testing.T) {
		assert.Equal(t, "s1", scores[0].Student)
	})
}
