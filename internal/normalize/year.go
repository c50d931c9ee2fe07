package normalize

import (
	"regexp"
	"strconv"
	"time"
)

var yearToken = regexp.MustCompile(`20\d{2}`)

// YearPolicy picks the year applied to dates printed without one.
type YearPolicy interface {
	Year(text string) int
}

// InferYearFromDocument uses the first 20xx token anywhere in the statement,
// falling back to the current year.
//
// Known limitation: a statement whose cycle crosses a year boundary (December
// to January) dates every yearless line with the first year it mentions.
type InferYearFromDocument struct {
	Now func() time.Time
}

func (p InferYearFromDocument) Year(text string) int {
	if tok := yearToken.FindString(text); tok != "" {
		if y, err := strconv.Atoi(tok); err == nil {
			return y
		}
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	return now().Year()
}

// FixedYear always returns the same year, regardless of the text.
type FixedYear int

func (y FixedYear) Year(string) int {
	return int(y)
}
