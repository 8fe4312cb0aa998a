package contract

import (
	"math"
	"testing"

	"github.com/edustats/gradeboard/schema"
	"github.com/stretchr/testify/assert"
)

// TestFormatScore tests precision and the NaN placeholder.
func TestFormatScore(t *testing.T) {
	assert.Equal(t, "4.33", FormatScore(4.333333, 2))
	assert.Equal(t, "60.0", FormatScore(60, 1))
	assert.Equal(t, "4", FormatScore(4.4, 0))
	assert.Equal(t, "n/a", FormatScore(math.NaN(), 2))
}

// TestTruncateName tests rune-safe truncation.
func TestTruncateName(t *testing.T) {
	assert.Equal(t, "Anna", TruncateName("Anna", 10))
	assert.Equal(t, "Alexa…", TruncateName("Alexandra", 6))
	assert.Equal(t, "Алекса…", TruncateName("Александра", 7))
	assert.Equal(t, "x", TruncateName("x", 1))
}

// TestGetColorStatus tests that every status maps through its color and
// unknown statuses pass through untouched.
func TestGetColorStatus(t *testing.T) {
	for _, s := range schema.GradeStatusOrder {
		assert.Contains(t, GetColorStatus(s), string(s))
	}
	assert.Contains(t, GetColorStatus(schema.StatusProblematic), string(schema.StatusProblematic))
	assert.Equal(t, "mystery", GetColorStatus(schema.Status("mystery")))
}
