package domain

// Trader holds aggregated performance statistics for one address. Address is
// the unique key within a result set. Invariant, enforced at
// standardization: TotalWins <= TotalMarketsResolved <= TotalMarketsEntered,
// and Accuracy/ROI are finite.
type Trader struct {
	Address              string
	TotalMarketsEntered  int
	TotalMarketsResolved int
	TotalWins            int
	Accuracy             float64
	TotalInvested        float64
	TotalReturned        float64
	ROI                  float64
}
