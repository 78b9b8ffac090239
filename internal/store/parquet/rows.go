package parquet

import (
	"bytes"

	"github.com/parquet-go/parquet-go"

	"github.com/alanyoungcy/polyscope/internal/apperr"
)

// Row schemas for the three tables. Column names match the files exactly;
// first_entry_block is the one optional column.

type traderRow struct {
	TraderAddress        string  `parquet:"trader_address"`
	TotalMarketsEntered  int32   `parquet:"total_markets_entered"`
	TotalMarketsResolved int32   `parquet:"total_markets_resolved"`
	TotalWins            int32   `parquet:"total_wins"`
	Accuracy             float64 `parquet:"accuracy"`
	TotalInvested        float64 `parquet:"total_invested"`
	TotalReturned        float64 `parquet:"total_returned"`
	ROI                  float64 `parquet:"roi"`
}

type positionRow struct {
	TraderAddress   string  `parquet:"trader_address"`
	TokenID         string  `parquet:"token_id"`
	MarketID        string  `parquet:"market_id"`
	Side            string  `parquet:"side"`
	SharesHeld      float64 `parquet:"shares_held"`
	AvgEntryPrice   float64 `parquet:"avg_entry_price"`
	FirstEntryBlock *int64  `parquet:"first_entry_block,optional"`
}

type transactionRow struct {
	BlockNumber     int64   `parquet:"block_number"`
	TransactionHash string  `parquet:"transaction_hash"`
	TraderAddress   string  `parquet:"trader_address"`
	TokenID         string  `parquet:"token_id"`
	Side            string  `parquet:"side"`
	Action          string  `parquet:"action"`
	Shares          float64 `parquet:"shares"`
	USDCAmount      float64 `parquet:"usdc_amount"`
	MarketID        string  `parquet:"market_id"`
}

// decodeRows decodes a whole Parquet file into typed rows. A malformed file
// is a transport-layer failure, same as an unreadable one.
func decodeRows[T any](data []byte, table string) ([]T, error) {
	rows, err := parquet.Read[T](bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &apperr.TableReadError{Table: table, Err: err}
	}
	return rows, nil
}
