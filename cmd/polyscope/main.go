// Command polyscope fetches a Polymarket market group by slug, joins it with
// locally held trading data, and prints a holder/flow report. It loads
// configuration, validates it, and runs one report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alanyoungcy/polyscope/internal/app"
	"github.com/alanyoungcy/polyscope/internal/apperr"
	"github.com/alanyoungcy/polyscope/internal/config"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to configuration file")
	slug := flag.String("slug", "", "market group slug to report on (required)")
	minResolved := flag.Int("min-resolved", 0, "override report.min_resolved_markets")
	daysBack := flag.Int("days-back", 0, "override report.lookback_days")
	top := flag.Int("top", 0, "override report.top_traders")
	flag.Parse()

	if *slug == "" {
		fmt.Fprintln(os.Stderr, "usage: polyscope -slug <market-group-slug> [-config config.toml]")
		os.Exit(1)
	}

	// Setup structured JSON logger; level is refined after config load.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config",
			slog.String("path", *configPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	if *minResolved > 0 {
		cfg.Report.MinResolvedMarkets = *minResolved
	}
	if *daysBack > 0 {
		cfg.Report.LookbackDays = *daysBack
	}
	if *top > 0 {
		cfg.Report.TopTraders = *top
	}

	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Debug("configuration loaded", slog.Any("config", config.Redacted(cfg)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, logger)
	defer application.Close()

	if err := application.Run(ctx, *slug); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("run cancelled")
			os.Exit(1)
		}
		printError(err)
		os.Exit(1)
	}
}

// printError writes the error, its causal chain, and a layer-appropriate
// hint to stderr.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(os.Stderr, "  caused by: %v\n", cause)
	}
	fmt.Fprintln(os.Stderr, apperr.Hint(err))
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
