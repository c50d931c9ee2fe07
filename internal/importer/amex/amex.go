// Package amex reads American Express card statements.
package amex

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/statements/internal/importer/scan"
	"github.com/MrJamesThe3rd/statements/internal/keyword"
	"github.com/MrJamesThe3rd/statements/internal/statement"
	"github.com/MrJamesThe3rd/statements/internal/transaction"
)

const Institution = "American Express"

var (
	brand = keyword.NewSet("american express", "amex")

	// Payments are listed in their own section and are not imported.
	denylist = keyword.NewSet("total", "balance", "payment", "credit limit", "available", "minimum", "fee")

	refundWords = keyword.NewSet("refund", "credit")

	accountPattern = regexp.MustCompile(`(?i)(?:Account|Card)\s*(?:Ending|Number)?[:\s]*(?:\*+|x+)?(?P<digits>\d{4,5})`)
	periodPattern  = regexp.MustCompile(`(?i)(?:Statement|Closing)\s+Date[:\s]*(?P<end>\w+\s+\d{1,2})[,\s]+(?P<year>\d{4})`)

	rules = []scan.Rule{
		// MM/DD[/YY] description amount, amount closing the line.
		scan.MustRule("line", `(?m)(?P<date>\d{2}/\d{2}/?\d{0,2})\s+(?P<desc>.+?)\s+(?P<amount>-?\$?[\d,]+\.\d{2})$`),
		// MM/DD description reference amount.
		scan.MustRule("reference", `(?P<date>\d{2}/\d{2})\s+(?P<desc>.+?)\s+[A-Z0-9]+\s+(?P<amount>-?\$?[\d,]+\.\d{2})`),
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

func (s *Strategy) Detect(text string) bool {
	return brand.Contains(text)
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
	case a.Value.IsNegative():
		return transaction.TypePayment, a.Value
	case refundWords.Contains(desc):
		return transaction.TypeRefund, scan.Inflow(a.Value)
	}

	return transaction.TypePurchase, scan.Outflow(a.Value)
}
