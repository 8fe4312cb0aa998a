package schema

// Band is one threshold of a Scale: values at or above Bound get Label.
type Band struct {
	Bound float64
	Label Status
}

// Scale is an ordered threshold table, highest bound first. The final band
// is the catch-all: its label is assigned to every value below all bounds,
// so a scale is exhaustive over the full numeric range by construction.
// NaN values also fall through to the catch-all band.
type Scale struct {
	Bands    []Band
	Fallback Status
}

// Classify maps a value to its bucket label. First band whose bound the
// value meets wins; boundary values belong to the higher bucket.
func (s Scale) Classify(v float64) Status {
	for _, b := range s.Bands {
		if v >= b.Bound {
			return b.Label
		}
	}
	return s.Fallback
}

// NewGradeScale builds the four-bucket scale for student averages.
// Bounds must be passed in descending order.
func NewGradeScale(excellent, good, satisfactory float64) Scale {
	return Scale{
		Bands: []Band{
			{Bound: excellent, Label: StatusExcellent},
			{Bound: good, Label: StatusGood},
			{Bound: satisfactory, Label: StatusSatisfactory},
		},
		Fallback: StatusAttention,
	}
}

// NewPassScale builds the two-bucket scale for pass rates. A rate exactly
// at the bound is OK; only rates strictly below it are problematic.
func NewPassScale(bound float64) Scale {
	return Scale{
		Bands:    []Band{{Bound: bound, Label: StatusOK}},
		Fallback: StatusProblematic,
	}
}

// GradeStatusOrder lists grade buckets from best to worst, for stable
// iteration over ClassSummary.StatusCounts in reports and tables.
var GradeStatusOrder = []Status{
	StatusExcellent,
	StatusGood,
	StatusSatisfactory,
	StatusAttention,
}
