// Package truist reads Truist checking and savings statements, including the
// legacy BB&T and SunTrust layouts.
package truist

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/statements/internal/importer/scan"
	"github.com/MrJamesThe3rd/statements/internal/keyword"
	"github.com/MrJamesThe3rd/statements/internal/statement"
	"github.com/MrJamesThe3rd/statements/internal/transaction"
)

const Institution = "Truist"

var (
	brand   = keyword.NewSet("truist", "bb&t", "suntrust")
	savings = keyword.NewSet("savings")

	denylist = keyword.NewSet("balance", "total", "beginning", "ending", "summary", "statement")

	incomeWords = keyword.NewSet("payroll", "direct dep")

	accountPattern = regexp.MustCompile(`(?i)Account\s*(?:Number)?[:\s]*(?:\*+|x+)?(?P<digits>\d{4,})`)
	periodPattern  = regexp.MustCompile(`(?i)(?:Statement\s+Period|From)[:\s]*\w+\s+\d{1,2}[,\s]+\d{4}\s*(?:through|to|-)\s*(?P<end>\w+\s+\d{1,2})[,\s]+(?P<year>\d{4})`)

	// The column layout must stay ahead of the single-amount one: on
	// statements that partially satisfy both, the order decides the outcome.
	rules = []scan.Rule{
		// MM/DD description [debit] [credit] balance.
		scan.MustRule("columns", `(?m)(?P<date>\d{2}/\d{2})\s+(?P<desc>.+?)\s+(?P<debit>[\d,]+\.\d{2})?\s*(?P<credit>[\d,]+\.\d{2})?\s+[\d,]+\.\d{2}$`),
		// MM/DD description signed amount.
		scan.MustRule("single", `(?P<date>\d{2}/\d{2})\s+(?P<desc>.+?)\s+(?P<amount>-?\$?[\d,]+\.\d{2})`),
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

// AccountType is the default for Truist statements; Extract reports savings
// when the statement says so.
func (s *Strategy) AccountType() statement.AccountType {
	return statement.AccountChecking
}

func (s *Strategy) Detect(text string) bool {
	return brand.Contains(text)
}

func (s *Strategy) Extract(text string) statement.Result {
	accountType := s.AccountType()
	if savings.Contains(text) {
		accountType = statement.AccountSavings
	}

	meta := statement.Metadata{
		AccountIdentifier: scan.AccountIdentifier(text, accountPattern),
		StatementPeriod:   scan.StatementPeriod(text, periodPattern),
	}

	txs := s.pipeline.Run(text, s.opts.Year.Year(text))

	return statement.Succeeded(Institution, accountType, meta, txs)
}

func classify(desc string, a scan.Amount) (transaction.Type, decimal.Decimal) {
	if incomeWords.Contains(desc) {
		return transaction.TypeDeposit, scan.Inflow(a.Value)
	}

	switch a.Column {
	case scan.ColumnDebit:
		return transaction.TypeWithdrawal, scan.Outflow(a.Value)
	case scan.ColumnCredit:
		return transaction.TypeDeposit, scan.Inflow(a.Value)
	}

	if a.Value.IsPositive() {
		return transaction.TypeWithdrawal, a.Value
	}

	return transaction.TypeDeposit, a.Value
}
