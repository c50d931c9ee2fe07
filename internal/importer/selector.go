package importer

// Selector picks the strategy for a statement. Strategies are consulted in
// the order given; the fallback sits after all of them and is returned when
// none matches, so Select always yields a strategy.
type Selector struct {
	strategies []Strategy
	fallback   Strategy
}

// NewSelector panics if fallback is nil.
func NewSelector(strategies []Strategy, fallback Strategy) *Selector {
	if fallback == nil {
		panic("importer: selector needs a fallback strategy")
	}

	return &Selector{
		strategies: append([]Strategy(nil), strategies...),
		fallback:   fallback,
	}
}

// Select returns the first strategy whose Detect accepts text.
func (s *Selector) Select(text string) Strategy {
	for _, st := range s.strategies {
		if st.Detect(text) {
			return st
		}
	}

	return s.fallback
}

// Fallback returns the strategy used when nothing else matches.
func (s *Selector) Fallback() Strategy {
	return s.fallback
}

// Strategies returns the ordered strategies followed by the fallback.
func (s *Selector) Strategies() []Strategy {
	return append(append([]Strategy(nil), s.strategies...), s.fallback)
}
