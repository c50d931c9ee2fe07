// Package normalize turns raw fragments matched in statement text into typed
// values.
package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyAmount is returned when nothing numeric is left after cleaning.
var ErrEmptyAmount = errors.New("empty amount")

var amountNoise = strings.NewReplacer(
	"$", "",
	"€", "",
	"£", "",
	",", "",
	" ", "",
	"\t", "",
	"\u00a0", "",
)

// AmountPolicy decides what happens to an amount that does not parse.
type AmountPolicy int

const (
	// ZeroOnUnparsableAmount turns unparsable amounts into zero so that one
	// malformed token never aborts a scan. It can hide real parse failures.
	ZeroOnUnparsableAmount AmountPolicy = iota
	// RejectUnparsableAmount reports unparsable amounts so the caller can
	// drop the line instead.
	RejectUnparsableAmount
)

func (p AmountPolicy) String() string {
	switch p {
	case ZeroOnUnparsableAmount:
		return "zero"
	case RejectUnparsableAmount:
		return "reject"
	}

	return fmt.Sprintf("AmountPolicy(%d)", int(p))
}

// Apply normalizes s under the policy. The boolean is false only when the
// policy rejects the value.
func (p AmountPolicy) Apply(s string) (decimal.Decimal, bool) {
	d, err := ParseAmount(s)
	if err == nil {
		return d, true
	}

	if p == RejectUnparsableAmount {
		return decimal.Zero, false
	}

	return decimal.Zero, true
}

// Amount normalizes s under ZeroOnUnparsableAmount.
//
//	"$1,234.56" -> 1234.56
//	"(12.00)"   -> -12.00
//	"45.00CR"   -> -45.00
//	"garbage"   -> 0
func Amount(s string) decimal.Decimal {
	d, _ := ZeroOnUnparsableAmount.Apply(s)
	return d
}

// ParseAmount parses a statement amount. Currency symbols, thousands
// separators and whitespace are ignored, a parenthesized value is negative
// and a trailing CR marks a credit, which is negated.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := amountNoise.Replace(strings.TrimSpace(s))

	negate := false

	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		clean = clean[1 : len(clean)-1]
		negate = true
	}

	if upper := strings.ToUpper(clean); strings.HasSuffix(upper, "CR") {
		clean = clean[:len(clean)-2]
		negate = !negate
	}

	if clean == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}

	if negate {
		d = d.Neg()
	}

	return d, nil
}
