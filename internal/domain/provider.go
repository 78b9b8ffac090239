package domain

import "context"

// Provider interfaces are capability contracts: one narrow query surface
// each, so a concrete source implements only what it supports and consumers
// depend on the minimal capability set they need. The Gamma API source
// implements MarketMetadataProvider; the columnar-store and postgres sources
// implement the other three.

// MarketMetadataProvider looks up standardized market metadata by slug.
type MarketMetadataProvider interface {
	// GetMarketGroup returns the market group for an event slug.
	GetMarketGroup(ctx context.Context, slug string) (MarketGroup, error)
	// GetMarket returns a single market looked up by its own slug.
	GetMarket(ctx context.Context, slug string) (Market, error)
}

// TraderStatsProvider looks up aggregated trader performance statistics.
type TraderStatsProvider interface {
	// TradersByMinResolved returns traders with at least minResolved
	// resolved markets.
	TradersByMinResolved(ctx context.Context, minResolved int) ([]Trader, error)
	// TradersByAddresses returns stats for the given addresses. An empty
	// address list returns an empty result without querying the source.
	TradersByAddresses(ctx context.Context, addresses []string) ([]Trader, error)
}

// PositionProvider looks up current stakes in one market.
type PositionProvider interface {
	PositionsByMarket(ctx context.Context, conditionID string) ([]Position, error)
}

// TransactionProvider looks up historical trade events for one market.
//
// daysBack is advisory: no source currently models a timestamp or block-time
// column, so all matching rows are returned regardless of the window. The
// parameter is plumbed end-to-end so a timestamp column can activate it.
type TransactionProvider interface {
	RecentTransactions(ctx context.Context, conditionID string, daysBack int) ([]Transaction, error)
}
