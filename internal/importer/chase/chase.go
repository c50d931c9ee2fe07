// Package chase reads Chase credit card statements.
package chase

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/statements/internal/importer/scan"
	"github.com/MrJamesThe3rd/statements/internal/keyword"
	"github.com/MrJamesThe3rd/statements/internal/statement"
	"github.com/MrJamesThe3rd/statements/internal/transaction"
)

const Institution = "Chase"

var (
	brand    = keyword.NewSet("chase")
	products = keyword.NewSet("jpmorgan", "jpmcb", "credit card")

	denylist = keyword.NewSet("total", "balance", "payment due", "credit limit", "available", "minimum")

	paymentWords = keyword.NewSet("payment")
	refundWords  = keyword.NewSet("refund", "credit")

	accountPattern = regexp.MustCompile(`(?i)Account\s+(?:Number|#)?[:\s]*(?:\*+|x+)?(?P<digits>\d{4,})`)
	periodPattern  = regexp.MustCompile(`(?i)(?:Statement|Billing)\s+(?:Period|Date)[:\s]*\w+\s+\d{1,2}[,\s]+\d{4}\s*[-–to]+\s*(?P<end>\w+\s+\d{1,2})[,\s]+(?P<year>\d{4})`)

	// rules: MM/DD description amount.
	rules = []scan.Rule{
		scan.MustRule("activity", `(?P<date>\d{2}/\d{2})\s+(?P<desc>.+?)\s+(?P<amount>-?\$?[\d,]+\.\d{2})`),
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
	return statement.AccountCreditCard
}

// Detect needs the brand plus a product term, since "chase" alone shows up in
// merchant names on other banks' statements.
func (s *Strategy) Detect(text string) bool {
	return brand.Contains(text) && products.Contains(text)
}

func (s *Strategy) Extract(text string) statement.Result {
	meta := statement.Metadata{
		AccountIdentifier: scan.AccountIdentifier(text, accountPattern),
		StatementPeriod:   scan.StatementPeriod(text, periodPattern),
	}

	txs := s.pipeline.Run(text, s.opts.Year.Year(text))

	return statement.Succeeded(Institution, s.AccountType(), meta, txs)
}

func classify(desc string, a scan.Amount) (transaction.Type, decimal.Decimal) {
	switch {
	case a.Value.IsNegative() || paymentWords.Contains(desc):
		return transaction.TypePayment, scan.Inflow(a.Value)
	case refundWords.Contains(desc):
		return transaction.TypeRefund, scan.Inflow(a.Value)
	}

	return transaction.TypePurchase, scan.Outflow(a.Value)
}
