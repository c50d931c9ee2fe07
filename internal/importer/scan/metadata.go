package scan

import (
	"regexp"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/statements/internal/statement"
)

// Group names used by metadata patterns.
const (
	GroupDigits  = "digits"
	GroupEnd     = "end"
	GroupEndYear = "year"
)

var periodLayouts = []string{"January 2 2006", "Jan 2 2006"}

// AccountIdentifier returns the last four digits captured by the first
// pattern that matches. Patterns capture the digits in a "digits" group.
func AccountIdentifier(text string, patterns ...*regexp.Regexp) *string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		idx := re.SubexpIndex(GroupDigits)
		if idx < 0 {
			continue
		}

		if last := statement.LastFour(m[idx]); last != nil {
			return last
		}
	}

	return nil
}

// StatementPeriod returns the month a statement closes in, as YYYY-MM.
// Patterns capture the closing month and day in "end" and its year in
// "year". Only the first match of each pattern is considered.
func StatementPeriod(text string, patterns ...*regexp.Regexp) *string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		endIdx, yearIdx := re.SubexpIndex(GroupEnd), re.SubexpIndex(GroupEndYear)
		if endIdx < 0 || yearIdx < 0 {
			continue
		}

		if period, ok := monthOf(m[endIdx], m[yearIdx]); ok {
			return &period
		}
	}

	return nil
}

func monthOf(monthDay, year string) (string, bool) {
	value := strings.Join(strings.Fields(monthDay+" "+year), " ")

	for _, layout := range periodLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.Format("2006-01"), true
		}
	}

	return "", false
}
