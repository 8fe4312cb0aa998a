package schema

// Custom string types for type safety.
type (
	// Status is a classification bucket label assigned by a Scale.
	Status string

	// OutputMode represents the format of the output.
	OutputMode string

	// Difficulty is the designed difficulty band of an exam question.
	Difficulty string
)

// Grade-scale buckets, assigned to student averages.
const (
	StatusExcellent    Status = "Excellent"
	StatusGood         Status = "Good"
	StatusSatisfactory Status = "Satisfactory"
	StatusAttention    Status = "Needs Attention"
)

// Pass-scale buckets, assigned to question and topic pass rates.
const (
	StatusOK          Status = "OK"
	StatusProblematic Status = "Problematic"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All question difficulty bands supported.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Default classification bounds. These seed the stock scales and the config
// layer; the classifier itself never references them.
const (
	DefaultExcellentBound    = 4.5
	DefaultGoodBound         = 3.5
	DefaultSatisfactoryBound = 2.5
	DefaultPassBound         = 60.0
)

// DefaultStrugglingBound is the average below which a student lands on the
// struggling list. It coincides with the Good bound: anyone who did not
// reach "Good" needs a closer look.
const DefaultStrugglingBound = 3.5

// CorrectSentinel is the value that marks a correct answer in a
// binary-scored exam column.
const CorrectSentinel = 1.0
