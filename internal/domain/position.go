package domain

// Side identifies which outcome of a binary market a stake is on.
type Side string

const (
	SideYes Side = "YES"
	SideNo  Side = "NO"
)

// Valid reports whether s is one of the two allowed values.
func (s Side) Valid() bool {
	return s == SideYes || s == SideNo
}

// Position is one trader's current stake in one market outcome. MarketID is
// the condition id of the market the stake references (association by id,
// never an embedded Market). FirstEntryBlock is nil when the source does not
// record the entry block.
type Position struct {
	TraderAddress   string
	TokenID         string
	MarketID        string
	Side            Side
	SharesHeld      float64
	AvgEntryPrice   float64
	FirstEntryBlock *int64
}
