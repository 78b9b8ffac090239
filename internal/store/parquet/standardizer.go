package parquet

import (
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common"

	"github.com/alanyoungcy/polyscope/internal/apperr"
	"github.com/alanyoungcy/polyscope/internal/domain"
)

// Standardizers convert table rows into shared entities. They follow the
// same fail-fast contract as the API standardizer: the first bad row fails
// the whole conversion. An empty row set yields an empty list, not an error,
// since "no rows" is a legitimate answer to a filter query.

func standardizeTraders(rows []traderRow) ([]domain.Trader, error) {
	traders := make([]domain.Trader, 0, len(rows))
	for _, r := range rows {
		if r.TraderAddress == "" {
			return nil, &apperr.EmptyFieldError{Field: "trader_address", Entity: "trader"}
		}
		if !common.IsHexAddress(r.TraderAddress) {
			return nil, &apperr.ValidationError{
				Entity:   "trader",
				EntityID: r.TraderAddress,
				Reason:   "trader_address is not a hex address",
			}
		}
		if r.TotalWins > r.TotalMarketsResolved || r.TotalMarketsResolved > r.TotalMarketsEntered {
			return nil, &apperr.ValidationError{
				Entity:   "trader",
				EntityID: r.TraderAddress,
				Reason: fmt.Sprintf("counts out of order: wins=%d resolved=%d entered=%d",
					r.TotalWins, r.TotalMarketsResolved, r.TotalMarketsEntered),
			}
		}
		if !isFinite(r.Accuracy) {
			return nil, &apperr.ValidationError{Entity: "trader", EntityID: r.TraderAddress, Reason: "accuracy is not finite"}
		}
		if !isFinite(r.ROI) {
			return nil, &apperr.ValidationError{Entity: "trader", EntityID: r.TraderAddress, Reason: "roi is not finite"}
		}

		traders = append(traders, domain.Trader{
			Address:              r.TraderAddress,
			TotalMarketsEntered:  int(r.TotalMarketsEntered),
			TotalMarketsResolved: int(r.TotalMarketsResolved),
			TotalWins:            int(r.TotalWins),
			Accuracy:             r.Accuracy,
			TotalInvested:        r.TotalInvested,
			TotalReturned:        r.TotalReturned,
			ROI:                  r.ROI,
		})
	}
	return traders, nil
}

func standardizePositions(rows []positionRow) ([]domain.Position, error) {
	positions := make([]domain.Position, 0, len(rows))
	for _, r := range rows {
		for _, f := range []struct{ name, value string }{
			{"trader_address", r.TraderAddress},
			{"token_id", r.TokenID},
			{"market_id", r.MarketID},
		} {
			if f.value == "" {
				return nil, &apperr.EmptyFieldError{Field: f.name, Entity: "position"}
			}
		}
		side := domain.Side(r.Side)
		if !side.Valid() {
			return nil, &apperr.ValidationError{
				Entity:   "position",
				EntityID: r.TraderAddress,
				Reason:   fmt.Sprintf("side must be YES or NO, got %q", r.Side),
			}
		}
		if r.SharesHeld < 0 {
			return nil, &apperr.ValidationError{
				Entity:   "position",
				EntityID: r.TraderAddress,
				Reason:   fmt.Sprintf("negative shares_held %v", r.SharesHeld),
			}
		}

		positions = append(positions, domain.Position{
			TraderAddress:   r.TraderAddress,
			TokenID:         r.TokenID,
			MarketID:        r.MarketID,
			Side:            side,
			SharesHeld:      r.SharesHeld,
			AvgEntryPrice:   r.AvgEntryPrice,
			FirstEntryBlock: r.FirstEntryBlock,
		})
	}
	return positions, nil
}

func standardizeTransactions(rows []transactionRow) ([]domain.Transaction, error) {
	txs := make([]domain.Transaction, 0, len(rows))
	for _, r := range rows {
		for _, f := range []struct{ name, value string }{
			{"transaction_hash", r.TransactionHash},
			{"trader_address", r.TraderAddress},
			{"token_id", r.TokenID},
			{"market_id", r.MarketID},
		} {
			if f.value == "" {
				return nil, &apperr.EmptyFieldError{Field: f.name, Entity: "transaction"}
			}
		}
		side := domain.Side(r.Side)
		if !side.Valid() {
			return nil, &apperr.ValidationError{
				Entity:   "transaction",
				EntityID: r.TransactionHash,
				Reason:   fmt.Sprintf("side must be YES or NO, got %q", r.Side),
			}
		}
		action := domain.Action(r.Action)
		if !action.Valid() {
			return nil, &apperr.ValidationError{
				Entity:   "transaction",
				EntityID: r.TransactionHash,
				Reason:   fmt.Sprintf("action must be BUY or SELL, got %q", r.Action),
			}
		}

		txs = append(txs, domain.Transaction{
			BlockNumber:     r.BlockNumber,
			TransactionHash: r.TransactionHash,
			TraderAddress:   r.TraderAddress,
			TokenID:         r.TokenID,
			Side:            side,
			Action:          action,
			Shares:          r.Shares,
			USDCAmount:      r.USDCAmount,
			MarketID:        r.MarketID,
		})
	}
	return txs, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
