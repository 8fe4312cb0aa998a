package schema

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMarshalNaNAsNull tests that NaN aggregates encode as JSON null
// instead of failing the encode.
func TestMarshalNaNAsNull(t *testing.T) {
	t.Run("student result", func(t *testing.T) {
		data, err := json.Marshal(StudentResult{Student: "gap", Average: math.NaN(), Status: StatusAttention})
		require.NoError(t, err)
		assert.JSONEq(t, `{"student":"gap","average":null,"status":"Needs Attention"}`, string(data))
	})

	t.Run("subject stats", func(t *testing.T) {
		data, err := json.Marshal(SubjectStats{Subject: "Empty", Mean: math.NaN(), Min: math.NaN(), Max: math.NaN()})
		require.NoError(t, err)
		assert.JSONEq(t, `{"subject":"Empty","mean":null,"min":null,"max":null}`, string(data))
	})

	t.Run("class summary", func(t *testing.T) {
		data, err := json.Marshal(ClassSummary{
			Mean: math.NaN(), Median: math.NaN(), StdDev: math.NaN(),
			Min: math.NaN(), Max: math.NaN(),
			StatusCounts: map[Status]int{StatusExcellent: 0},
		})
		require.NoError(t, err)
		assert.Contains(t, string(data), `"mean":null`)
		assert.Contains(t, string(data), `"stddev":null`)
		assert.Contains(t, string(data), `"status_counts"`)
	})

	t.Run("exam types", func(t *testing.T) {
		for _, v := range []any{
			QuestionStats{Question: "Q1", PassRate: math.NaN(), Status: StatusProblematic, Problematic: true},
			TopicStats{Topic: "t", PassRate: math.NaN()},
			ExamScore{Student: "s", Percent: math.NaN()},
			ExamSummary{Mean: math.NaN(), Median: math.NaN(), Min: math.NaN(), Max: math.NaN()},
		} {
			_, err := json.Marshal(v)
			require.NoError(t, err, "%T", v)
		}
	})
}

// TestMarshalKeepsValues tests that present values and tags survive the
// custom encoding.
func TestMarshalKeepsValues(t *testing.T) {
	data, err := json.Marshal(StudentResult{Student: "Anna", Average: 7.0, Status: StatusExcellent})
	require.NoError(t, err)
	assert.JSONEq(t, `{"student":"Anna","average":7,"status":"Excellent"}`, string(data))

	data, err = json.Marshal(QuestionStats{
		Question: "Q1", Topic: "Algebra", Difficulty: DifficultyEasy,
		Correct: 4, PassRate: 80.0, Status: StatusOK,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"question":"Q1","topic":"Algebra","difficulty":"easy","correct":4,"pass_rate":80,"status":"OK","problematic":false}`, string(data))
}
