package app

import (
	"context"
	"fmt"

	s3blob "github.com/alanyoungcy/polyscope/internal/blob/s3"
	"github.com/alanyoungcy/polyscope/internal/config"
	"github.com/alanyoungcy/polyscope/internal/domain"
	"github.com/alanyoungcy/polyscope/internal/platform/gamma"
	"github.com/alanyoungcy/polyscope/internal/store/parquet"
	"github.com/alanyoungcy/polyscope/internal/store/postgres"
)

// Dependencies bundles the providers the report run needs. It is constructed
// by Wire and torn down by the returned cleanup function.
type Dependencies struct {
	Metadata     domain.MarketMetadataProvider
	Traders      domain.TraderStatsProvider
	Positions    domain.PositionProvider
	Transactions domain.TransactionProvider
}

// Wire constructs the concrete providers from the given configuration and
// returns them together with a cleanup function that should be called on
// shutdown to release resources.
func Wire(ctx context.Context, cfg *config.Config) (*Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := &Dependencies{
		Metadata: gamma.NewSource(gamma.NewClient(cfg.Gamma.BaseURL, cfg.Gamma.Timeout.Duration)),
	}

	switch cfg.Store.Backend {
	case config.BackendParquet:
		src := parquet.NewSource(parquet.NewDirReader(cfg.Store.DataDir))
		deps.Traders = src
		deps.Positions = src
		deps.Transactions = src

	case config.BackendS3:
		s3Client, err := s3blob.New(ctx, s3blob.ClientConfig{
			Endpoint:       cfg.S3.Endpoint,
			Region:         cfg.S3.Region,
			Bucket:         cfg.S3.Bucket,
			AccessKey:      cfg.S3.AccessKey,
			SecretKey:      cfg.S3.SecretKey,
			UseSSL:         cfg.S3.UseSSL,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: s3: %w", err)
		}

		src := parquet.NewSource(parquet.NewBlobReader(s3blob.NewReader(s3Client), cfg.S3.Prefix))
		deps.Traders = src
		deps.Positions = src
		deps.Transactions = src

	case config.BackendPostgres:
		pgClient, err := postgres.New(ctx, postgres.ClientConfig{
			DSN:      cfg.Postgres.DSN,
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			Database: cfg.Postgres.Database,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			SSLMode:  cfg.Postgres.SSLMode,
			MaxConns: cfg.Postgres.PoolMaxConns,
			MinConns: cfg.Postgres.PoolMinConns,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("wire: postgres: %w", err)
		}
		closers = append(closers, pgClient.Close)

		if cfg.Postgres.RunMigrations {
			if err := pgClient.RunMigrations(ctx); err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("wire: postgres migrations: %w", err)
			}
		}

		src := postgres.NewSource(pgClient.Pool())
		deps.Traders = src
		deps.Positions = src
		deps.Transactions = src

	default:
		cleanup()
		return nil, nil, fmt.Errorf("wire: unknown store backend %q", cfg.Store.Backend)
	}

	return deps, cleanup, nil
}
