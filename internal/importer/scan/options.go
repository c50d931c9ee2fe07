package scan

import (
	"github.com/MrJamesThe3rd/statements/internal/normalize"
)

// Options carries the normalization policies a strategy runs with.
type Options struct {
	Year    normalize.YearPolicy
	Amounts normalize.AmountPolicy
}

type Option func(*Options)

// WithYearPolicy overrides how yearless dates are completed.
func WithYearPolicy(p normalize.YearPolicy) Option {
	return func(o *Options) {
		if p != nil {
			o.Year = p
		}
	}
}

// WithAmountPolicy overrides how unparsable amounts are treated.
func WithAmountPolicy(p normalize.AmountPolicy) Option {
	return func(o *Options) {
		o.Amounts = p
	}
}

// NewOptions applies opts over the defaults: year inferred from the
// document, unparsable amounts read as zero.
func NewOptions(opts ...Option) Options {
	o := Options{
		Year:    normalize.InferYearFromDocument{},
		Amounts: normalize.ZeroOnUnparsableAmount,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
