package schema

import (
	"encoding/json"
	"math"
)

// The derived result structs marshal NaN aggregates as JSON null, since
// encoding/json rejects NaN outright. This mirrors the "n/a" rendering of
// the text writers: an empty table still produces a valid JSON document
// with every undefined value reported as null.

// nullableFloat maps NaN to a nil pointer so it encodes as null.
func nullableFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func (r StudentResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Student string   `json:"student"`
		Average *float64 `json:"average"`
		Status  Status   `json:"status"`
	}{r.Student, nullableFloat(r.Average), r.Status})
}

func (s SubjectStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Subject string   `json:"subject"`
		Mean    *float64 `json:"mean"`
		Min     *float64 `json:"min"`
		Max     *float64 `json:"max"`
	}{s.Subject, nullableFloat(s.Mean), nullableFloat(s.Min), nullableFloat(s.Max)})
}

func (s ClassSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Students     int            `json:"students"`
		Mean         *float64       `json:"mean"`
		Median       *float64       `json:"median"`
		StdDev       *float64       `json:"stddev"`
		Min          *float64       `json:"min"`
		Max          *float64       `json:"max"`
		StatusCounts map[Status]int `json:"status_counts"`
		BestSubject  string         `json:"best_subject"`
		WorstSubject string         `json:"worst_subject"`
	}{
		s.Students,
		nullableFloat(s.Mean),
		nullableFloat(s.Median),
		nullableFloat(s.StdDev),
		nullableFloat(s.Min),
		nullableFloat(s.Max),
		s.StatusCounts,
		s.BestSubject,
		s.WorstSubject,
	})
}

func (q QuestionStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Question    string     `json:"question"`
		Topic       string     `json:"topic"`
		Difficulty  Difficulty `json:"difficulty"`
		Correct     int        `json:"correct"`
		PassRate    *float64   `json:"pass_rate"`
		Status      Status     `json:"status"`
		Problematic bool       `json:"problematic"`
	}{q.Question, q.Topic, q.Difficulty, q.Correct, nullableFloat(q.PassRate), q.Status, q.Problematic})
}

func (t TopicStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Topic       string   `json:"topic"`
		Questions   int      `json:"questions"`
		PassRate    *float64 `json:"pass_rate"`
		Status      Status   `json:"status"`
		Problematic bool     `json:"problematic"`
	}{t.Topic, t.Questions, nullableFloat(t.PassRate), t.Status, t.Problematic})
}

func (s ExamScore) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Student string   `json:"student"`
		Total   int      `json:"total"`
		Percent *float64 `json:"percent"`
	}{s.Student, s.Total, nullableFloat(s.Percent)})
}

func (s ExamSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Students  int      `json:"students"`
		Questions int      `json:"questions"`
		Mean      *float64 `json:"mean"`
		Median    *float64 `json:"median"`
		Min       *float64 `json:"min"`
		Max       *float64 `json:"max"`
	}{
		s.Students,
		s.Questions,
		nullableFloat(s.Mean),
		nullableFloat(s.Median),
		nullableFloat(s.Min),
		nullableFloat(s.Max),
	})
}
