// Package scan holds the line-scanning pipeline shared by every institution
// strategy: candidate rules, noise filtering, amount and date normalization,
// and the statement metadata lookups.
package scan

import (
	"fmt"
	"regexp"
)

// Group names a Rule pattern may use.
const (
	GroupDate   = "date"
	GroupDesc   = "desc"
	GroupAmount = "amount"
	GroupDebit  = "debit"
	GroupCredit = "credit"
)

// Rule is one candidate pattern for transaction lines. Patterns use named
// groups: date and desc always, then either amount (one signed column) or
// debit and credit (split columns).
type Rule struct {
	Name string

	pattern *regexp.Regexp
	date    int
	desc    int
	amount  int
	debit   int
	credit  int
}

// MustRule compiles expr into a Rule and panics if the pattern is invalid or
// lacks the groups a layout needs.
func MustRule(name, expr string) Rule {
	re := regexp.MustCompile(expr)

	r := Rule{
		Name:    name,
		pattern: re,
		date:    re.SubexpIndex(GroupDate),
		desc:    re.SubexpIndex(GroupDesc),
		amount:  re.SubexpIndex(GroupAmount),
		debit:   re.SubexpIndex(GroupDebit),
		credit:  re.SubexpIndex(GroupCredit),
	}

	if r.date < 0 || r.desc < 0 {
		panic(fmt.Sprintf("scan: rule %q needs %q and %q groups", name, GroupDate, GroupDesc))
	}

	if r.amount < 0 && (r.debit < 0 || r.credit < 0) {
		panic(fmt.Sprintf("scan: rule %q needs an %q group or both %q and %q", name, GroupAmount, GroupDebit, GroupCredit))
	}

	return r
}

// Split reports whether the rule reads separate debit and credit columns.
func (r Rule) Split() bool {
	return r.amount < 0
}

// candidate is one raw match of a rule, before any validation.
type candidate struct {
	raw    string
	date   string
	desc   string
	amount string
	debit  string
	credit string
}

func (r Rule) candidates(text string) []candidate {
	matches := r.pattern.FindAllStringSubmatchIndex(text, -1)
	out := make([]candidate, 0, len(matches))

	for _, m := range matches {
		group := func(idx int) string {
			if idx < 0 || m[2*idx] < 0 {
				return ""
			}

			return text[m[2*idx]:m[2*idx+1]]
		}

		out = append(out, candidate{
			raw:    text[m[0]:m[1]],
			date:   group(r.date),
			desc:   group(r.desc),
			amount: group(r.amount),
			debit:  group(r.debit),
			credit: group(r.credit),
		})
	}

	return out
}
