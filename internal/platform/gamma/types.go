package gamma

import (
	"encoding/json"
	"strings"
)

// flexBool unmarshals from JSON bool or string ("true"/"false") so Gamma API
// responses work whether a flag is sent as bool or string.
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = flexBool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = flexBool(strings.EqualFold(s, "true") || s == "1")
	return nil
}

// APIMarketGroup is the raw /events/slug/{slug} response: one event grouping
// related markets. Volume and liquidity are totals over the sub-markets.
type APIMarketGroup struct {
	Slug      string      `json:"slug"`
	Title     string      `json:"title"`
	Active    flexBool    `json:"active"`
	Closed    flexBool    `json:"closed"`
	Volume    float64     `json:"volume"`
	Liquidity float64     `json:"liquidity"`
	Markets   []APIMarket `json:"markets"`
}

// APIMarket is the raw Gamma market payload. Outcomes, OutcomePrices and
// ClobTokenIDs are JSON-encoded arrays embedded in strings, exactly as the
// API sends them (e.g. "[\"Yes\",\"No\"]").
type APIMarket struct {
	Question      string   `json:"question"`
	ConditionID   string   `json:"conditionId"`
	Slug          string   `json:"slug"`
	Outcomes      string   `json:"outcomes"`
	OutcomePrices string   `json:"outcomePrices"`
	ClobTokenIDs  string   `json:"clobTokenIds"`
	Active        flexBool `json:"active"`
	Closed        flexBool `json:"closed"`

	VolumeNum    float64 `json:"volumeNum"`
	Volume24hr   float64 `json:"volume24hr"`
	Volume1wk    float64 `json:"volume1wk"`
	Volume1mo    float64 `json:"volume1mo"`
	Volume1yr    float64 `json:"volume1yr"`
	LiquidityNum float64 `json:"liquidityNum"`

	Competitive    float64 `json:"competitive"`
	LastTradePrice float64 `json:"lastTradePrice"`
	BestBid        float64 `json:"bestBid"`
	BestAsk        float64 `json:"bestAsk"`
}
