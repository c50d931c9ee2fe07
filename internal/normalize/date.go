package normalize

import (
	"strings"
	"time"
)

type dateLayout struct {
	layout  string
	hasYear bool
}

// dateLayouts are tried in order; the first one that parses wins.
var dateLayouts = []dateLayout{
	{layout: "1/2/2006", hasYear: true},
	{layout: "1/2/06", hasYear: true},
	{layout: "1-2-2006", hasYear: true},
	{layout: "1-2-06", hasYear: true},
	{layout: "1/2"},
	{layout: "Jan 2"},
	{layout: "January 2"},
	{layout: "2 Jan"},
	{layout: "2 January"},
}

// Date parses a statement date. Layouts without a year take the given year,
// which must be positive. The second return value is false when no layout
// fits, which callers treat as "not a transaction line".
func Date(s string, year int) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, l := range dateLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}

		if l.hasYear {
			return t, true
		}

		return withYear(t, year)
	}

	return time.Time{}, false
}

// withYear moves a yearless date into year, rejecting combinations such as
// February 29 in a non-leap year.
func withYear(t time.Time, year int) (time.Time, bool) {
	if year <= 0 {
		return time.Time{}, false
	}

	d := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if d.Month() != t.Month() || d.Day() != t.Day() {
		return time.Time{}, false
	}

	return d, true
}
