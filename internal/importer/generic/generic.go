// Package generic is the fallback for statements no institution strategy
// recognizes. It always matches and never fails on content.
package generic

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/statements/internal/importer/scan"
	"github.com/MrJamesThe3rd/statements/internal/keyword"
	"github.com/MrJamesThe3rd/statements/internal/statement"
	"github.com/MrJamesThe3rd/statements/internal/transaction"
)

const Institution = "Unknown"

// labels map brand keywords to display names. Earlier entries win when a
// statement mentions several brands.
var labels = []struct {
	keyword string
	name    string
}{
	{"chase", "Chase"},
	{"american express", "American Express"},
	{"amex", "American Express"},
	{"truist", "Truist"},
	{"bank of america", "Bank of America"},
	{"wells fargo", "Wells Fargo"},
	{"citi", "Citi"},
	{"capital one", "Capital One"},
}

var (
	brands = func() *keyword.Set {
		words := make([]string, len(labels))
		for i, l := range labels {
			words[i] = l.keyword
		}

		return keyword.NewSet(words...)
	}()

	denylist = keyword.NewSet("total", "balance", "summary", "fee", "interest", "minimum")

	accountPattern = regexp.MustCompile(`(?i)(?:Account|Card)\s*(?:Number|Ending\s+in|Ending|#)?[:\s]*(?:\*+|x+)?(?P<digits>\d{4,})`)
	periodPattern  = regexp.MustCompile(`(?i)(?:Statement|Billing)\s+Period[:\s]*\w+\s+\d{1,2}[,\s]+\d{4}\s*(?:through|to|-|–)\s*(?P<end>\w+\s+\d{1,2})[,\s]+(?P<year>\d{4})`)

	rules = []scan.Rule{
		scan.MustRule("activity", `(?P<date>\d{1,2}/\d{1,2}(?:/\d{2,4})?)\s+(?P<desc>.+?)\s+(?P<amount>-?\$?[\d,]+\.\d{2})`),
	}
)

type Strategy struct {
	opts     scan.Options
	pipeline scan.Pipeline
}

func New(opts ...scan.Option) *Strategy {
	o := scan.NewOptions(opts...)

	return &Strategy{
		opts: o,
		pipeline: scan.Pipeline{
			Rules:    rules,
			Denylist: denylist,
			Classify: classify,
			Amounts:  o.Amounts,
		},
	}
}

func (s *Strategy) Institution() string {
	return Institution
}

func (s *Strategy) AccountType() statement.AccountType {
	return statement.AccountUnknown
}

func (s *Strategy) Detect(string) bool {
	return true
}

func (s *Strategy) Extract(text string) statement.Result {
	meta := statement.Metadata{
		AccountIdentifier: scan.AccountIdentifier(text, accountPattern),
		StatementPeriod:   scan.StatementPeriod(text, periodPattern),
	}

	txs := s.pipeline.Run(text, s.opts.Year.Year(text))

	return statement.Succeeded(Label(text), s.AccountType(), meta, txs)
}

// Label guesses a display name for the issuing institution.
func Label(text string) string {
	kw, ok := brands.First(text)
	if !ok {
		return Institution
	}

	for _, l := range labels {
		if l.keyword == kw {
			return l.name
		}
	}

	return Institution
}

func classify(_ string, a scan.Amount) (transaction.Type, decimal.Decimal) {
	if a.Value.IsPositive() {
		return transaction.TypePurchase, a.Value
	}

	return transaction.TypeCredit, a.Value
}
