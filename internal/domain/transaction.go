package domain

// Action identifies the direction of a trade event.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// Valid reports whether a is one of the two allowed values.
func (a Action) Valid() bool {
	return a == ActionBuy || a == ActionSell
}

// Transaction is one historical trade event for a market token.
type Transaction struct {
	BlockNumber     int64
	TransactionHash string
	TraderAddress   string
	TokenID         string
	Side            Side
	Action          Action
	Shares          float64
	USDCAmount      float64
	MarketID        string
}
