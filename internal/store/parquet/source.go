package parquet

import (
	"context"
	"strings"

	"github.com/alanyoungcy/polyscope/internal/domain"
)

// Table names in the columnar store.
const (
	tableTraders      = "traders"
	tablePositions    = "positions"
	tableTransactions = "transactions"
)

// Source wires one TableReader and the row standardizers behind the
// trader-stats, position and transaction provider interfaces. Filtering
// happens here, after the read; joins across providers are the caller's
// responsibility.
type Source struct {
	reader TableReader
}

var (
	_ domain.TraderStatsProvider = (*Source)(nil)
	_ domain.PositionProvider    = (*Source)(nil)
	_ domain.TransactionProvider = (*Source)(nil)
)

// NewSource creates the columnar-store-backed source.
func NewSource(reader TableReader) *Source {
	return &Source{reader: reader}
}

// TradersByMinResolved returns traders with at least minResolved resolved
// markets.
func (s *Source) TradersByMinResolved(ctx context.Context, minResolved int) ([]domain.Trader, error) {
	rows, err := s.readTraderRows(ctx)
	if err != nil {
		return nil, err
	}

	filtered := rows[:0:0]
	for _, r := range rows {
		if int(r.TotalMarketsResolved) >= minResolved {
			filtered = append(filtered, r)
		}
	}
	return standardizeTraders(filtered)
}

// TradersByAddresses returns stats for the given addresses. An empty address
// list short-circuits to an empty result without touching the store.
// Address matching is case-insensitive, as hex addresses vary in casing
// between sources.
func (s *Source) TradersByAddresses(ctx context.Context, addresses []string) ([]domain.Trader, error) {
	if len(addresses) == 0 {
		return []domain.Trader{}, nil
	}

	wanted := make(map[string]struct{}, len(addresses))
	for _, a := range addresses {
		wanted[strings.ToLower(a)] = struct{}{}
	}

	rows, err := s.readTraderRows(ctx)
	if err != nil {
		return nil, err
	}

	filtered := rows[:0:0]
	for _, r := range rows {
		if _, ok := wanted[strings.ToLower(r.TraderAddress)]; ok {
			filtered = append(filtered, r)
		}
	}
	return standardizeTraders(filtered)
}

// PositionsByMarket returns all current stakes in the given market.
func (s *Source) PositionsByMarket(ctx context.Context, conditionID string) ([]domain.Position, error) {
	data, err := s.reader.ReadTable(ctx, tablePositions)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[positionRow](data, tablePositions)
	if err != nil {
		return nil, err
	}

	filtered := rows[:0:0]
	for _, r := range rows {
		if r.MarketID == conditionID {
			filtered = append(filtered, r)
		}
	}
	return standardizePositions(filtered)
}

// RecentTransactions returns trade events for the given market. daysBack is
// advisory: the tables carry no timestamp or block-time column, so all
// matching rows are returned regardless of the window.
func (s *Source) RecentTransactions(ctx context.Context, conditionID string, daysBack int) ([]domain.Transaction, error) {
	data, err := s.reader.ReadTable(ctx, tableTransactions)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[transactionRow](data, tableTransactions)
	if err != nil {
		return nil, err
	}

	filtered := rows[:0:0]
	for _, r := range rows {
		if r.MarketID == conditionID {
			filtered = append(filtered, r)
		}
	}
	return standardizeTransactions(filtered)
}

func (s *Source) readTraderRows(ctx context.Context) ([]traderRow, error) {
	data, err := s.reader.ReadTable(ctx, tableTraders)
	if err != nil {
		return nil, err
	}
	return decodeRows[traderRow](data, tableTraders)
}
