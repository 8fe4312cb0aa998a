package schema

// JournalAnalysis bundles everything the journal pipeline derives from one
// table, in the shape reporters consume. Students keeps the table's row
// order; Top and Struggling are the ranking projections over it.
type JournalAnalysis struct {
	Students   []StudentResult `json:"students"`
	Subjects   []SubjectStats  `json:"subjects"`
	Summary    ClassSummary    `json:"summary"`
	Top        []StudentResult `json:"top"`
	Struggling []StudentResult `json:"struggling"`
}

// ExamAnalysis bundles everything the exam pipeline derives from one
// results table and its plan.
type ExamAnalysis struct {
	Scores      []ExamScore     `json:"scores"`
	Questions   []QuestionStats `json:"questions"`
	Topics      []TopicStats    `json:"topics"`
	Summary     ExamSummary     `json:"summary"`
	Problematic []QuestionStats `json:"problematic"`
	Struggling  []ExamScore     `json:"struggling"`
}
