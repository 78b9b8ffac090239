package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alanyoungcy/polyscope/internal/apperr"
	"github.com/alanyoungcy/polyscope/internal/domain"
)

// Source implements the trader-stats, position and transaction providers on
// PostgreSQL. Rows go through the same validation contract as the Parquet
// standardizers: the first invalid row fails the whole query, an empty
// result is an empty list.
type Source struct {
	pool *pgxpool.Pool
}

var (
	_ domain.TraderStatsProvider = (*Source)(nil)
	_ domain.PositionProvider    = (*Source)(nil)
	_ domain.TransactionProvider = (*Source)(nil)
)

// NewSource creates the postgres-backed source over the given pool.
func NewSource(pool *pgxpool.Pool) *Source {
	return &Source{pool: pool}
}

const traderCols = `trader_address, total_markets_entered, total_markets_resolved,
	total_wins, accuracy, total_invested, total_returned, roi`

// TradersByMinResolved returns traders with at least minResolved resolved
// markets.
func (s *Source) TradersByMinResolved(ctx context.Context, minResolved int) ([]domain.Trader, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+traderCols+` FROM traders
		 WHERE total_markets_resolved >= $1
		 ORDER BY total_markets_resolved DESC`, minResolved)
	if err != nil {
		return nil, fmt.Errorf("postgres: query traders: %w", err)
	}
	defer rows.Close()

	return scanTraders(rows)
}

// TradersByAddresses returns stats for the given addresses. An empty address
// list short-circuits without querying.
func (s *Source) TradersByAddresses(ctx context.Context, addresses []string) ([]domain.Trader, error) {
	if len(addresses) == 0 {
		return []domain.Trader{}, nil
	}

	lowered := make([]string, len(addresses))
	for i, a := range addresses {
		lowered[i] = strings.ToLower(a)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT `+traderCols+` FROM traders
		 WHERE lower(trader_address) = ANY($1)`, lowered)
	if err != nil {
		return nil, fmt.Errorf("postgres: query traders by address: %w", err)
	}
	defer rows.Close()

	return scanTraders(rows)
}

// PositionsByMarket returns all current stakes in the given market.
func (s *Source) PositionsByMarket(ctx context.Context, conditionID string) ([]domain.Position, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT trader_address, token_id, market_id, side, shares_held,
		        avg_entry_price, first_entry_block
		 FROM positions WHERE market_id = $1`, conditionID)
	if err != nil {
		return nil, fmt.Errorf("postgres: query positions: %w", err)
	}
	defer rows.Close()

	positions := []domain.Position{}
	for rows.Next() {
		var p domain.Position
		var side string
		if err := rows.Scan(&p.TraderAddress, &p.TokenID, &p.MarketID, &side,
			&p.SharesHeld, &p.AvgEntryPrice, &p.FirstEntryBlock); err != nil {
			return nil, fmt.Errorf("postgres: scan position: %w", err)
		}
		p.Side = domain.Side(side)
		if !p.Side.Valid() {
			return nil, &apperr.ValidationError{
				Entity:   "position",
				EntityID: p.TraderAddress,
				Reason:   fmt.Sprintf("side must be YES or NO, got %q", side),
			}
		}
		if p.SharesHeld < 0 {
			return nil, &apperr.ValidationError{
				Entity:   "position",
				EntityID: p.TraderAddress,
				Reason:   fmt.Sprintf("negative shares_held %v", p.SharesHeld),
			}
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate positions: %w", err)
	}
	return positions, nil
}

// RecentTransactions returns trade events for the given market, newest
// block first. daysBack is advisory: the table carries no timestamp column,
// so no time filter is applied.
func (s *Source) RecentTransactions(ctx context.Context, conditionID string, daysBack int) ([]domain.Transaction, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT block_number, transaction_hash, trader_address, token_id,
		        side, action, shares, usdc_amount, market_id
		 FROM transactions WHERE market_id = $1
		 ORDER BY block_number DESC`, conditionID)
	if err != nil {
		return nil, fmt.Errorf("postgres: query transactions: %w", err)
	}
	defer rows.Close()

	txs := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		var side, action string
		if err := rows.Scan(&t.BlockNumber, &t.TransactionHash, &t.TraderAddress,
			&t.TokenID, &side, &action, &t.Shares, &t.USDCAmount, &t.MarketID); err != nil {
			return nil, fmt.Errorf("postgres: scan transaction: %w", err)
		}
		t.Side = domain.Side(side)
		t.Action = domain.Action(action)
		if !t.Side.Valid() {
			return nil, &apperr.ValidationError{
				Entity:   "transaction",
				EntityID: t.TransactionHash,
				Reason:   fmt.Sprintf("side must be YES or NO, got %q", side),
			}
		}
		if !t.Action.Valid() {
			return nil, &apperr.ValidationError{
				Entity:   "transaction",
				EntityID: t.TransactionHash,
				Reason:   fmt.Sprintf("action must be BUY or SELL, got %q", action),
			}
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate transactions: %w", err)
	}
	return txs, nil
}

func scanTraders(rows pgx.Rows) ([]domain.Trader, error) {
	traders := []domain.Trader{}
	for rows.Next() {
		var t domain.Trader
		if err := rows.Scan(&t.Address, &t.TotalMarketsEntered, &t.TotalMarketsResolved,
			&t.TotalWins, &t.Accuracy, &t.TotalInvested, &t.TotalReturned, &t.ROI); err != nil {
			return nil, fmt.Errorf("postgres: scan trader: %w", err)
		}
		if t.TotalWins > t.TotalMarketsResolved || t.TotalMarketsResolved > t.TotalMarketsEntered {
			return nil, &apperr.ValidationError{
				Entity:   "trader",
				EntityID: t.Address,
				Reason: fmt.Sprintf("counts out of order: wins=%d resolved=%d entered=%d",
					t.TotalWins, t.TotalMarketsResolved, t.TotalMarketsEntered),
			}
		}
		traders = append(traders, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate traders: %w", err)
	}
	return traders, nil
}
