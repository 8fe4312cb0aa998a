package loader

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/edustats/gradeboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTemp drops CSV content into a fresh temp file and returns its path.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadJournal tests a well-formed gradebook.
func TestLoadJournal(t *testing.T) {
	path := writeTemp(t, "journal.csv", "student,Math,Physics\nAnna,8,6\nBoris,4,2\n")

	table, err := LoadJournal(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Math", "Physics"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Anna", table.Rows[0].Student)
	assert.InDelta(t, 8.0, table.Rows[0].Scores["Math"], 1e-9)
	assert.InDelta(t, 2.0, table.Rows[1].Scores["Physics"], 1e-9)
}

// TestLoadJournalEmptyCell tests that a blank cell loads as NaN.
func TestLoadJournalEmptyCell(t *testing.T) {
	path := writeTemp(t, "journal.csv", "student,Math,Physics\nAnna,,5\n")

	table, err := LoadJournal(path)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(table.Rows[0].Scores["Math"]))
	assert.InDelta(t, 5.0, table.Rows[0].Scores["Physics"], 1e-9)
}

// TestLoadJournalErrors tests the hard-failure cases.
func TestLoadJournalErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"malformed score", "student,Math\nAnna,abc\n", "non-numeric score"},
		{"duplicate student", "student,Math\nAnna,4\nAnna,5\n", "duplicate student identifier"},
		{"empty student id", "student,Math\n,4\n", "empty student identifier"},
		{"header only id column", "student\n", "at least one value column"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, "bad.csv", tc.content)
			_, err := LoadJournal(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestLoadJournalMissingFile tests that a missing file surfaces
// fs.ErrNotExist for the generator fallback to catch.
func TestLoadJournalMissingFile(t *testing.T) {
	_, err := LoadJournal(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

// TestLoadExamResults tests the binary-value validation.
func TestLoadExamResults(t *testing.T) {
	t.Run("valid binary table", func(t *testing.T) {
		path := writeTemp(t, "exam.csv", "student,Q1,Q2\ns1,1,0\ns2,0,1\n")
		table, err := LoadExamResults(path)
		require.NoError(t, err)
		assert.Len(t, table.Rows, 2)
	})

	t.Run("non-binary value is rejected", func(t *testing.T) {
		path := writeTemp(t, "exam.csv", "student,Q1\ns1,2\n")
		_, err := LoadExamResults(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-binary value")
	})

	t.Run("blank cell is tolerated", func(t *testing.T) {
		path := writeTemp(t, "exam.csv", "student,Q1,Q2\ns1,,1\n")
		table, err := LoadExamResults(path)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(table.Rows[0].Scores["Q1"]))
	})
}

// TestLoadExamPlan tests the plan columns and difficulty parsing.
func TestLoadExamPlan(t *testing.T) {
	path := writeTemp(t, "plan.csv",
		"question,topic,difficulty,max_score\nQ1,Algebra,easy,1\nQ2,Geometry,Hard,1\n")

	plan, err := LoadExamPlan(path)
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, "Q1", plan[0].Question)
	assert.Equal(t, schema.DifficultyEasy, plan[0].Difficulty)
	assert.Equal(t, schema.DifficultyHard, plan[1].Difficulty, "difficulty is case-insensitive")

	t.Run("unknown difficulty is rejected", func(t *testing.T) {
		bad := writeTemp(t, "plan.csv", "question,topic,difficulty,max_score\nQ1,Algebra,extreme,1\n")
		_, err := LoadExamPlan(bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown difficulty")
	})
}

// TestSaveTableRoundTrip tests that save-then-load preserves the table,
// NaN cells included.
func TestSaveTableRoundTrip(t *testing.T) {
	table := &schema.Table{
		Columns: []string{"Math", "Physics"},
		Rows: []schema.Record{
			{Student: "Anna", Scores: map[string]float64{"Math": 4.5, "Physics": math.NaN()}},
			{Student: "Boris", Scores: map[string]float64{"Math": 3, "Physics": 5}},
		},
	}

	path := filepath.Join(t.TempDir(), "journal.csv")
	require.NoError(t, SaveTable(table, "student", path))

	loaded, err := LoadJournal(path)
	require.NoError(t, err)
	assert.Equal(t, table.Columns, loaded.Columns)
	require.Len(t, loaded.Rows, 2)
	assert.InDelta(t, 4.5, loaded.Rows[0].Scores["Math"], 1e-9)
	assert.True(t, math.IsNaN(loaded.Rows[0].Scores["Physics"]))
	assert.InDelta(t, 5.0, loaded.Rows[1].Scores["Physics"], 1e-9)
}

// TestSaveExamPlanRoundTrip tests the plan writer against its reader.
func TestSaveExamPlanRoundTrip(t *testing.T) {
	plan := []schema.PlanEntry{
		{Question: "Q1", Topic: "Algebra", Difficulty: schema.DifficultyEasy, MaxScore: 1},
		{Question: "Q2", Topic: "Geometry", Difficulty: schema.DifficultyHard, MaxScore: 2},
	}

	path := filepath.Join(t.TempDir(), "plan.csv")
	require.NoError(t, SaveExamPlan(plan, path))

	loaded, err := LoadExamPlan(path)
	require.NoError(t, err)
	assert.Equal(t, plan, loaded)
}
