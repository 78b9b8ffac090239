package domain

// MarketGroup aggregates the related markets listed under one event topic.
// Volume and liquidity are totals across all sub-markets. Markets may be
// empty when the upstream group legitimately has no sub-markets; that is a
// valid degenerate group, not an error.
type MarketGroup struct {
	Slug      string
	Title     string
	Active    bool
	Closed    bool
	Volume    float64
	Liquidity float64
	Markets   []Market
}

// Market is one binary-outcome contract. Outcomes and OutcomePrices are
// ordered pairs; prices keep the source's string representation so precision
// is never lost to a float round-trip. YesTokenID and NoTokenID follow the
// upstream positional convention: the first token id is the YES side.
type Market struct {
	Question    string
	ConditionID string
	Slug        string

	Outcomes      [2]string
	OutcomePrices [2]string
	YesTokenID    string
	NoTokenID     string

	Active bool
	Closed bool

	Volume    float64 // all-time
	Volume24h float64
	Volume1w  float64
	Volume1m  float64
	Volume1y  float64
	Liquidity float64

	Competitive    float64
	LastTradePrice float64
	BestBid        float64
	BestAsk        float64
}
