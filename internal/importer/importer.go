package importer

import (
	"github.com/MrJamesThe3rd/statements/internal/importer/amex"
	"github.com/MrJamesThe3rd/statements/internal/importer/chase"
	"github.com/MrJamesThe3rd/statements/internal/importer/generic"
	"github.com/MrJamesThe3rd/statements/internal/importer/scan"
	"github.com/MrJamesThe3rd/statements/internal/importer/truist"
	"github.com/MrJamesThe3rd/statements/internal/statement"
)

// Strategy detects and reads the statements of one institution.
// Implementations hold configuration only and are safe for concurrent use.
type Strategy interface {
	Institution() string
	AccountType() statement.AccountType
	Detect(text string) bool
	Extract(text string) statement.Result
}

var (
	_ Strategy = (*chase.Strategy)(nil)
	_ Strategy = (*amex.Strategy)(nil)
	_ Strategy = (*truist.Strategy)(nil)
	_ Strategy = (*generic.Strategy)(nil)
)

// DefaultStrategies returns the institution strategies in detection order.
// A statement matching several brands goes to the earliest one.
func DefaultStrategies(opts ...scan.Option) []Strategy {
	return []Strategy{
		chase.New(opts...),
		amex.New(opts...),
		truist.New(opts...),
	}
}

// DefaultSelector pairs DefaultStrategies with the generic fallback.
func DefaultSelector(opts ...scan.Option) *Selector {
	return NewSelector(DefaultStrategies(opts...), generic.New(opts...))
}
