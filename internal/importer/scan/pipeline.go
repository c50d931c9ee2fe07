package scan

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/statements/internal/keyword"
	"github.com/MrJamesThe3rd/statements/internal/normalize"
	"github.com/MrJamesThe3rd/statements/internal/transaction"
)

// MinMerchantLen is the shortest description accepted as a merchant.
// Shorter captures are almost always column fragments.
const MinMerchantLen = 3

// Column tells a Classifier where an amount was read from.
type Column int

const (
	// ColumnSigned is a single amount column carrying its own sign.
	ColumnSigned Column = iota
	// ColumnDebit is the money-out column of a split layout.
	ColumnDebit
	// ColumnCredit is the money-in column of a split layout.
	ColumnCredit
)

// Amount is a normalized amount and the column it came from.
type Amount struct {
	Value  decimal.Decimal
	Column Column
}

// Classifier assigns a transaction type and returns the amount with the sign
// that type requires: positive for money out, negative for money in.
type Classifier func(description string, amount Amount) (transaction.Type, decimal.Decimal)

// Pipeline turns statement text into transactions.
//
// Rules are tried in order and the first rule that yields at least one
// transaction wins; later rules are not run. Overlapping rules would
// otherwise report the same line twice.
type Pipeline struct {
	Rules    []Rule
	Denylist *keyword.Set
	Classify Classifier
	Amounts  normalize.AmountPolicy
}

// Run scans text. year is applied to dates printed without one. The result
// is never nil.
func (p Pipeline) Run(text string, year int) []transaction.Transaction {
	for _, rule := range p.Rules {
		if txs := p.apply(rule, text, year); len(txs) > 0 {
			return txs
		}
	}

	return []transaction.Transaction{}
}

func (p Pipeline) apply(rule Rule, text string, year int) []transaction.Transaction {
	var txs []transaction.Transaction

	for _, c := range rule.candidates(text) {
		tx, ok := p.build(rule, c, year)
		if !ok {
			continue
		}

		txs = append(txs, tx)
	}

	return txs
}

func (p Pipeline) build(rule Rule, c candidate, year int) (transaction.Transaction, bool) {
	merchant := strings.TrimSpace(c.desc)

	if p.Denylist.Contains(merchant) {
		return transaction.Transaction{}, false
	}

	if utf8.RuneCountInString(merchant) < MinMerchantLen {
		return transaction.Transaction{}, false
	}

	date, ok := normalize.Date(c.date, year)
	if !ok {
		return transaction.Transaction{}, false
	}

	amount, ok := p.amount(rule, c)
	if !ok {
		return transaction.Transaction{}, false
	}

	txType, value := p.Classify(merchant, amount)

	return transaction.Transaction{
		Date:     date,
		Merchant: merchant,
		Amount:   value,
		Type:     txType,
		RawText:  c.raw,
	}, true
}

// amount reads the amount column(s). A split line with both columns empty
// carries no movement and is dropped.
func (p Pipeline) amount(rule Rule, c candidate) (Amount, bool) {
	if !rule.Split() {
		v, ok := p.Amounts.Apply(c.amount)
		return Amount{Value: v, Column: ColumnSigned}, ok
	}

	if c.debit != "" {
		v, ok := p.Amounts.Apply(c.debit)
		return Amount{Value: v, Column: ColumnDebit}, ok
	}

	if c.credit != "" {
		v, ok := p.Amounts.Apply(c.credit)
		return Amount{Value: v, Column: ColumnCredit}, ok
	}

	return Amount{}, false
}

// Outflow returns v as money leaving the account.
func Outflow(v decimal.Decimal) decimal.Decimal {
	return v.Abs()
}

// Inflow returns v as money arriving in the account.
func Inflow(v decimal.Decimal) decimal.Decimal {
	return v.Abs().Neg()
}
