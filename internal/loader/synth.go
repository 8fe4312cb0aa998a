package loader

import (
	"fmt"
	"math/rand"

	"github.com/edustats/gradeboard/schema"
)

// Subjects of the synthetic journal.
var synthSubjects = []string{"Math", "Russian", "Physics", "Computer Science", "Geometry"}

// Topics of the synthetic exam, three questions each.
var synthTopics = []string{
	"Quadratic Equations",
	"Pythagorean Theorem",
	"Trigonometry",
	"Logarithms",
	"Derivatives",
}

// Correct-answer probability per difficulty band.
var difficultyRates = map[schema.Difficulty]float64{
	schema.DifficultyEasy:   0.85,
	schema.DifficultyMedium: 0.65,
	schema.DifficultyHard:   0.45,
}

// Generator synthesizes sample datasets from an explicit random source, so
// the same seed always yields byte-identical tables.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator builds a Generator seeded with the given value.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Journal synthesizes a gradebook of n students with integer scores in
// [2, 5] across the stock subjects.
func (g *Generator) Journal(n int) *schema.Table {
	table := &schema.Table{Columns: append([]string(nil), synthSubjects...)}
	for i := 1; i <= n; i++ {
		scores := make(map[string]float64, len(synthSubjects))
		for _, subject := range synthSubjects {
			scores[subject] = float64(g.rng.Intn(4) + 2)
		}
		table.Rows = append(table.Rows, schema.Record{
			Student: fmt.Sprintf("Student_%d", i),
			Scores:  scores,
		})
	}
	return table
}

// ExamPlan synthesizes the question plan: questions Q1..Q15, three per
// topic, difficulty rising in five-question bands.
func (g *Generator) ExamPlan() []schema.PlanEntry {
	questions := len(synthTopics) * 3
	plan := make([]schema.PlanEntry, 0, questions)
	for i := 1; i <= questions; i++ {
		difficulty := schema.DifficultyEasy
		switch {
		case i > 10:
			difficulty = schema.DifficultyHard
		case i > 5:
			difficulty = schema.DifficultyMedium
		}
		plan = append(plan, schema.PlanEntry{
			Question:   fmt.Sprintf("Q%d", i),
			Topic:      synthTopics[(i-1)/3],
			Difficulty: difficulty,
			MaxScore:   1,
		})
	}
	return plan
}

// ExamResults synthesizes binary answers for n students against the given
// plan, with the correct-answer probability of each question's band.
func (g *Generator) ExamResults(n int, plan []schema.PlanEntry) *schema.Table {
	columns := make([]string, 0, len(plan))
	for _, e := range plan {
		columns = append(columns, e.Question)
	}
	table := &schema.Table{Columns: columns}
	for i := 1; i <= n; i++ {
		scores := make(map[string]float64, len(plan))
		for _, e := range plan {
			answer := 0.0
			if g.rng.Float64() < difficultyRates[e.Difficulty] {
				answer = schema.CorrectSentinel
			}
			scores[e.Question] = answer
		}
		table.Rows = append(table.Rows, schema.Record{
			Student: fmt.Sprintf("Student_%d", i),
			Scores:  scores,
		})
	}
	return table
}

// QuarterTrend returns the class-average trend used by the dashboard's
// line chart. The sample data is fixed, not random.
func (g *Generator) QuarterTrend() []schema.QuarterPoint {
	return []schema.QuarterPoint{
		{Quarter: "Q1", Average: 3.9},
		{Quarter: "Q2", Average: 4.0},
		{Quarter: "Q3", Average: 4.2},
		{Quarter: "Q4", Average: 4.3},
	}
}
