// Package app drives one report run: it wires the configured providers,
// fetches the market group, selects a market, pulls the trading data, and
// hands everything to the analysis and report layers.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alanyoungcy/polyscope/internal/analysis"
	"github.com/alanyoungcy/polyscope/internal/config"
	"github.com/alanyoungcy/polyscope/internal/domain"
	"github.com/alanyoungcy/polyscope/internal/report"
)

// App is the root application object for one invocation.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	closers []func()
}

// New creates a new App from the given configuration and logger.
func New(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "app")),
	}
}

// Run executes one report for the given group slug: fetch metadata, select a
// market, fetch its positions and transactions, join in trader stats, and
// render to stdout. Returns the first error from any stage unchanged so the
// entry point can classify it.
func (a *App) Run(ctx context.Context, slug string) error {
	runID := uuid.NewString()
	logger := a.logger.With(slog.String("run_id", runID))

	logger.InfoContext(ctx, "starting report run",
		slog.String("slug", slug),
		slog.String("backend", a.cfg.Store.Backend),
	)

	deps, cleanup, err := Wire(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("app: wire dependencies: %w", err)
	}
	a.closers = append(a.closers, cleanup)

	group, err := deps.Metadata.GetMarketGroup(ctx, slug)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "fetched market group",
		slog.String("title", group.Title),
		slog.Int("markets", len(group.Markets)),
	)

	renderer := report.NewRenderer(os.Stdout, "stdout")

	if len(group.Markets) == 0 {
		logger.WarnContext(ctx, "group has no sub-markets")
		return renderer.Render(report.Data{Group: group})
	}

	market := selectMarket(group, slug)
	logger.InfoContext(ctx, "selected market",
		slog.String("market_slug", market.Slug),
		slog.String("condition_id", market.ConditionID),
	)

	// Positions, transactions and the leaderboard are independent reads;
	// fetch them together.
	var (
		positions   []domain.Position
		txs         []domain.Transaction
		leaderboard []domain.Trader
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		positions, err = deps.Positions.PositionsByMarket(gctx, market.ConditionID)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = deps.Transactions.RecentTransactions(gctx, market.ConditionID, a.cfg.Report.LookbackDays)
		return err
	})
	g.Go(func() error {
		var err error
		leaderboard, err = deps.Traders.TradersByMinResolved(gctx, a.cfg.Report.MinResolvedMarkets)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	traders, err := deps.Traders.TradersByAddresses(ctx, analysis.Addresses(positions))
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "fetched trading data",
		slog.Int("positions", len(positions)),
		slog.Int("transactions", len(txs)),
		slog.Int("tracked_traders", len(traders)),
	)

	summary, err := analysis.Summarize(market, positions, traders, txs, a.cfg.Report.TopTraders)
	if err != nil {
		return err
	}

	return renderer.Render(report.Data{
		Group:        group,
		Market:       &market,
		Positions:    positions,
		Traders:      traders,
		Transactions: txs,
		Leaderboard:  leaderboard,
		Summary:      summary,
		DaysBack:     a.cfg.Report.LookbackDays,
	})
}

// Close tears down all resources in reverse registration order. Safe to call
// multiple times.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// selectMarket picks the sub-market whose own slug matches the requested
// slug exactly, falling back to the group's first market.
func selectMarket(group domain.MarketGroup, slug string) domain.Market {
	for _, m := range group.Markets {
		if m.Slug == slug {
			return m
		}
	}
	return group.Markets[0]
}
