// Package statement defines the envelope returned by every parse attempt.
package statement

import (
	"github.com/MrJamesThe3rd/statements/internal/transaction"
)

// AccountType is the kind of account a statement belongs to.
type AccountType string

const (
	AccountCreditCard AccountType = "credit_card"
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountUnknown    AccountType = "unknown"
)

// Result is the outcome of parsing one statement.
//
// Transactions keep the order in which they appear in the source text.
// A failed result never carries transactions.
type Result struct {
	Success           bool
	Institution       string
	AccountType       AccountType
	AccountIdentifier *string // last four digits
	StatementPeriod   *string // YYYY-MM of the period end
	Transactions      []transaction.Transaction
	ErrorMessage      *string // set only when Success is false
}

// Metadata holds the optional account details found in a statement.
type Metadata struct {
	AccountIdentifier *string
	StatementPeriod   *string
}

// Succeeded builds a successful result. A nil transaction list is replaced
// with an empty one.
func Succeeded(institution string, accountType AccountType, meta Metadata, txs []transaction.Transaction) Result {
	if txs == nil {
		txs = []transaction.Transaction{}
	}

	return Result{
		Success:           true,
		Institution:       institution,
		AccountType:       accountType,
		AccountIdentifier: meta.AccountIdentifier,
		StatementPeriod:   meta.StatementPeriod,
		Transactions:      txs,
	}
}

// Failed builds the result for a statement that could not be read at all.
func Failed(institution string, accountType AccountType, err error) Result {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}

	return Result{
		Success:      false,
		Institution:  institution,
		AccountType:  accountType,
		Transactions: []transaction.Transaction{},
		ErrorMessage: &msg,
	}
}

// LastFour returns the last four characters of an account number capture.
// Captures shorter than four characters are rejected.
func LastFour(digits string) *string {
	if len(digits) < 4 {
		return nil
	}

	last := digits[len(digits)-4:]

	return &last
}
