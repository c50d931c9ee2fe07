package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type represents what kind of movement a statement line describes.
type Type string

const (
	TypePurchase   Type = "purchase"
	TypePayment    Type = "payment"
	TypeRefund     Type = "refund"
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
	TypeCredit     Type = "credit"
)

// Outflow reports whether the type describes money leaving the account.
// Outflows carry a positive amount, everything else zero or negative.
func (t Type) Outflow() bool {
	return t == TypePurchase || t == TypeWithdrawal
}

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	switch t {
	case TypePurchase, TypePayment, TypeRefund, TypeDeposit, TypeWithdrawal, TypeCredit:
		return true
	}

	return false
}

// Transaction is a single movement extracted from statement text.
type Transaction struct {
	Date     time.Time
	Merchant string
	Amount   decimal.Decimal
	Type     Type
	RawText  string // verbatim matched fragment
}

// SignConsistent reports whether the amount sign agrees with the type.
func (tx Transaction) SignConsistent() bool {
	if tx.Type.Outflow() {
		return !tx.Amount.IsNegative()
	}

	return !tx.Amount.IsPositive()
}
