package contract

import (
	"testing"

	"github.com/edustats/gradeboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		InputFileStr:    DefaultJournalFile,
		Limit:           DefaultResultLimit,
		Precision:       DefaultPrecision,
		Output:          "text",
		Seed:            DefaultSeed,
		Students:        DefaultStudents,
		Color:           "no",
		ExcellentBound:  schema.DefaultExcellentBound,
		GoodBound:       schema.DefaultGoodBound,
		SatisfactoryBnd: schema.DefaultSatisfactoryBound,
		PassBound:       schema.DefaultPassBound,
		StrugglingBound: schema.DefaultStrugglingBound,
		ConsultBound:    DefaultConsultBound,
	}
}

// TestProcessAndValidate tests the happy path into a full Config.
func TestProcessAndValidate(t *testing.T) {
	var cfg Config
	require.NoError(t, ProcessAndValidate(&cfg, validInput()))

	assert.Equal(t, DefaultJournalFile, cfg.InputFile)
	assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.False(t, cfg.UseColors)

	t.Run("scales are built from the bounds", func(t *testing.T) {
		assert.Equal(t, schema.StatusExcellent, cfg.GradeScale.Classify(4.5))
		assert.Equal(t, schema.StatusAttention, cfg.GradeScale.Classify(2.4))
		assert.Equal(t, schema.StatusOK, cfg.PassScale.Classify(60.0))
		assert.Equal(t, schema.StatusProblematic, cfg.PassScale.Classify(59.9))
	})
}

// TestProcessAndValidateErrors tests every rejection branch.
func TestProcessAndValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ConfigRawInput)
		want   string
	}{
		{"zero limit", func(in *ConfigRawInput) { in.Limit = 0 }, "limit must be between"},
		{"limit over max", func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }, "limit must be between"},
		{"negative precision", func(in *ConfigRawInput) { in.Precision = -1 }, "precision must be between"},
		{"precision too high", func(in *ConfigRawInput) { in.Precision = 5 }, "precision must be between"},
		{"unknown output", func(in *ConfigRawInput) { in.Output = "xml" }, "unknown output format"},
		{"zero students", func(in *ConfigRawInput) { in.Students = 0 }, "students must be positive"},
		{"non-descending bounds", func(in *ConfigRawInput) { in.GoodBound = 4.6 }, "grade bounds must descend"},
		{"equal bounds", func(in *ConfigRawInput) { in.SatisfactoryBnd = in.GoodBound }, "grade bounds must descend"},
		{"pass bound too high", func(in *ConfigRawInput) { in.PassBound = 101 }, "pass-bound must be within"},
		{"pass bound zero", func(in *ConfigRawInput) { in.PassBound = 0 }, "pass-bound must be within"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(in)
			var cfg Config
			err := ProcessAndValidate(&cfg, in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestParseOutputMode tests the format aliases.
func TestParseOutputMode(t *testing.T) {
	for raw, want := range map[string]schema.OutputMode{
		"":        schema.TextOut,
		"text":    schema.TextOut,
		"CSV":     schema.CSVOut,
		" json ":  schema.JSONOut,
		"parquet": schema.ParquetOut,
	} {
		mode, err := parseOutputMode(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, want, mode, "input %q", raw)
	}
}

// TestParseBoolOption tests the loose boolean strings.
func TestParseBoolOption(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1", " on "} {
		assert.True(t, ParseBoolOption(s), "input %q", s)
	}
	for _, s := range []string{"no", "false", "0", "off", "", "maybe"} {
		assert.False(t, ParseBoolOption(s), "input %q", s)
	}
}
