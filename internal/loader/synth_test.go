package loader

import (
	"testing"

	"github.com/edustats/gradeboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGeneratorJournal tests the synthetic gradebook shape and score range.
func TestGeneratorJournal(t *testing.T) {
	table := NewGenerator(42).Journal(25)

	assert.Equal(t, synthSubjects, table.Columns)
	require.Len(t, table.Rows, 25)
	assert.Equal(t, "Student_1", table.Rows[0].Student)
	assert.Equal(t, "Student_25", table.Rows[24].Student)

	t.Run("scores are integers in [2, 5]", func(t *testing.T) {
		for _, row := range table.Rows {
			for _, subject := range table.Columns {
				v := row.Scores[subject]
				assert.GreaterOrEqual(t, v, 2.0)
				assert.LessOrEqual(t, v, 5.0)
				assert.Equal(t, float64(int(v)), v)
			}
		}
	})
}

// TestGeneratorDeterminism tests that equal seeds give equal tables and
// different seeds do not.
func TestGeneratorDeterminism(t *testing.T) {
	first := NewGenerator(42).Journal(10)
	second := NewGenerator(42).Journal(10)
	assert.Equal(t, first, second)

	other := NewGenerator(7).Journal(10)
	assert.NotEqual(t, first, other)
}

// TestGeneratorExamPlan tests the stock plan: 15 questions, three per
// topic, difficulty rising in five-question bands.
func TestGeneratorExamPlan(t *testing.T) {
	plan := NewGenerator(42).ExamPlan()
	require.Len(t, plan, 15)

	assert.Equal(t, "Q1", plan[0].Question)
	assert.Equal(t, "Q15", plan[14].Question)

	t.Run("three questions per topic", func(t *testing.T) {
		counts := make(map[string]int)
		for _, e := range plan {
			counts[e.Topic]++
		}
		require.Len(t, counts, 5)
		for topic, n := range counts {
			assert.Equal(t, 3, n, "topic %q", topic)
		}
	})

	t.Run("difficulty bands", func(t *testing.T) {
		assert.Equal(t, schema.DifficultyEasy, plan[4].Difficulty)
		assert.Equal(t, schema.DifficultyMedium, plan[5].Difficulty)
		assert.Equal(t, schema.DifficultyMedium, plan[9].Difficulty)
		assert.Equal(t, schema.DifficultyHard, plan[10].Difficulty)
	})
}

// TestGeneratorExamResults tests the binary answer matrix.
func TestGeneratorExamResults(t *testing.T) {
	gen := NewGenerator(42)
	plan := gen.ExamPlan()
	table := gen.ExamResults(20, plan)

	require.Len(t, table.Columns, 15)
	require.Len(t, table.Rows, 20)

	for _, row := range table.Rows {
		for _, col := range table.Columns {
			v := row.Scores[col]
			assert.True(t, v == 0 || v == 1, "answer %v for %s/%s", v, row.Student, col)
		}
	}
}

// TestGeneratorQuarterTrend tests the fixed dashboard trend.
func TestGeneratorQuarterTrend(t *testing.T) {
	trend := NewGenerator(42).QuarterTrend()
	require.Len(t, trend, 4)
	assert.Equal(t, "Q1", trend[0].Quarter)
	assert.InDelta(t, 4.3, trend[3].Average, 1e-9)
}
