// Package analysis joins the standardized entities fetched for one market
// into a holder/flow summary. All joins are in-memory and by natural key
// (trader address, market id); no provider is called from here.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/alanyoungcy/polyscope/internal/apperr"
	"github.com/alanyoungcy/polyscope/internal/domain"
)

// Holder is one position annotated with the trader's performance stats.
// Stats is nil when the trader-stats source has no row for the address.
type Holder struct {
	Position domain.Position
	Stats    *domain.Trader
}

// Summary is the analysis result for one market. Empty inputs produce a
// zero-valued summary, not an error: "nobody holds this market" is a valid
// finding.
type Summary struct {
	MarketID    string
	HolderCount int

	YesShares float64
	NoShares  float64

	// WeightedEntryPrice is the share-weighted average entry price across
	// all positions, 0 when no shares are held.
	WeightedEntryPrice float64

	// TopHolders are the largest positions by shares held, annotated with
	// trader stats where available.
	TopHolders []Holder

	// SmartMoneyAccuracy is the mean accuracy over holders with known
	// stats; TrackedHolders is how many that was.
	SmartMoneyAccuracy float64
	TrackedHolders     int

	BuyVolumeUSDC  float64
	SellVolumeUSDC float64
	TxCount        int
}

// Addresses returns the distinct trader addresses appearing in positions,
// in first-seen order. Used by the caller to issue the trader-stats lookup.
func Addresses(positions []domain.Position) []string {
	seen := make(map[string]struct{}, len(positions))
	addrs := make([]string, 0, len(positions))
	for _, p := range positions {
		if _, ok := seen[p.TraderAddress]; ok {
			continue
		}
		seen[p.TraderAddress] = struct{}{}
		addrs = append(addrs, p.TraderAddress)
	}
	return addrs
}

// Summarize joins positions with trader stats and transactions for one
// market. Positions referencing a different market are a join mistake by
// the caller and fail the analysis.
func Summarize(market domain.Market, positions []domain.Position, traders []domain.Trader, txs []domain.Transaction, topN int) (Summary, error) {
	if topN <= 0 {
		topN = 10
	}

	for _, p := range positions {
		if p.MarketID != market.ConditionID {
			return Summary{}, &apperr.InsufficientDataError{
				Analysis: "holder",
				Reason:   fmt.Sprintf("position for market %q mixed into analysis of %q", p.MarketID, market.ConditionID),
			}
		}
	}

	byAddress := make(map[string]*domain.Trader, len(traders))
	for i := range traders {
		byAddress[traders[i].Address] = &traders[i]
	}

	s := Summary{MarketID: market.ConditionID}

	var weightedSum, totalShares float64
	holders := make([]Holder, 0, len(positions))
	for _, p := range positions {
		if p.Side == domain.SideYes {
			s.YesShares += p.SharesHeld
		} else {
			s.NoShares += p.SharesHeld
		}
		weightedSum += p.SharesHeld * p.AvgEntryPrice
		totalShares += p.SharesHeld
		holders = append(holders, Holder{Position: p, Stats: byAddress[p.TraderAddress]})
	}
	s.HolderCount = len(Addresses(positions))

	if totalShares > 0 {
		s.WeightedEntryPrice = weightedSum / totalShares
		if math.IsNaN(s.WeightedEntryPrice) || math.IsInf(s.WeightedEntryPrice, 0) {
			return Summary{}, &apperr.CalculationError{
				Calculation: "weighted entry price",
				Reason:      "result is not finite",
			}
		}
	}

	sort.SliceStable(holders, func(i, j int) bool {
		return holders[i].Position.SharesHeld > holders[j].Position.SharesHeld
	})
	if len(holders) > topN {
		holders = holders[:topN]
	}
	s.TopHolders = holders

	var accSum float64
	seen := make(map[string]struct{})
	for _, t := range traders {
		if _, ok := seen[t.Address]; ok {
			continue
		}
		seen[t.Address] = struct{}{}
		accSum += t.Accuracy
	}
	s.TrackedHolders = len(seen)
	if s.TrackedHolders > 0 {
		s.SmartMoneyAccuracy = accSum / float64(s.TrackedHolders)
	}

	for _, tx := range txs {
		if tx.Action == domain.ActionBuy {
			s.BuyVolumeUSDC += tx.USDCAmount
		} else {
			s.SellVolumeUSDC += tx.USDCAmount
		}
	}
	s.TxCount = len(txs)

	return s, nil
}
