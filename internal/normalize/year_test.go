package normalize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/statements/internal/normalize"
)

func TestInferYearFromDocument(t *testing.T) {
	policy := normalize.InferYearFromDocument{
		Now: func() time.Time { return date(2026, 10, 19) },
	}

	assert.Equal(t, 2024, policy.Year("Statement Period: February 3, 2024 - March 2, 2024"))
	assert.Equal(t, 2026, policy.Year("03/01 STARBUCKS #123 $5.42"))
}

func TestInferYearFromDocument_FirstTokenWins(t *testing.T) {
	policy := normalize.InferYearFromDocument{}

	// A December to January cycle resolves to the first year mentioned.
	assert.Equal(t, 2023, policy.Year("December 15, 2023 - January 14, 2024"))
}

func TestInferYearFromDocument_DefaultsToNow(t *testing.T) {
	policy := normalize.InferYearFromDocument{}
	assert.Equal(t, time.Now().Year(), policy.Year("no year here"))
}

func TestFixedYear(t *testing.T) {
	assert.Equal(t, 2021, normalize.FixedYear(2021).Year("Statement 2024"))
}
