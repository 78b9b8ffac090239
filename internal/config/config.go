// Package config defines the configuration for the market report tool and
// provides loading and validation helpers.
package config

import (
	"fmt"
	"time"
)

// Store backends.
const (
	BackendParquet  = "parquet"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

// Config is the root configuration structure. Fields are populated from a
// TOML file and then optionally overridden by POLYSCOPE_* environment
// variables.
type Config struct {
	Gamma    GammaConfig    `toml:"gamma"`
	Store    StoreConfig    `toml:"store"`
	Postgres PostgresConfig `toml:"postgres"`
	S3       S3Config       `toml:"s3"`
	Report   ReportConfig   `toml:"report"`
	LogLevel string         `toml:"log_level"`
}

// GammaConfig holds the remote API endpoint and per-request timeout.
type GammaConfig struct {
	BaseURL string   `toml:"base_url"`
	Timeout duration `toml:"timeout"`
}

// StoreConfig selects and parameterises the trading-data backend.
type StoreConfig struct {
	// Backend is one of "parquet", "postgres", "s3".
	Backend string `toml:"backend"`
	// DataDir is the directory holding the parquet tables (parquet backend).
	DataDir string `toml:"data_dir"`
}

// PostgresConfig holds connection parameters for the postgres backend.
type PostgresConfig struct {
	DSN           string `toml:"dsn"`
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	Database      string `toml:"database"`
	User          string `toml:"user"`
	Password      string `toml:"password"`
	SSLMode       string `toml:"ssl_mode"`
	PoolMaxConns  int    `toml:"pool_max_conns"`
	PoolMinConns  int    `toml:"pool_min_conns"`
	RunMigrations bool   `toml:"run_migrations"`
}

// S3Config holds connection parameters for the s3 backend.
type S3Config struct {
	Endpoint       string `toml:"endpoint"`
	Region         string `toml:"region"`
	Bucket         string `toml:"bucket"`
	Prefix         string `toml:"prefix"`
	AccessKey      string `toml:"access_key"`
	SecretKey      string `toml:"secret_key"`
	UseSSL         bool   `toml:"use_ssl"`
	ForcePathStyle bool   `toml:"force_path_style"`
}

// ReportConfig tunes the rendered report.
type ReportConfig struct {
	TopTraders         int `toml:"top_traders"`
	MinResolvedMarkets int `toml:"min_resolved_markets"`
	LookbackDays       int `toml:"lookback_days"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Gamma: GammaConfig{
			BaseURL: "https://gamma-api.polymarket.com",
			Timeout: duration{30 * time.Second},
		},
		Store: StoreConfig{
			Backend: BackendParquet,
			DataDir: "data",
		},
		S3: S3Config{
			Region: "us-east-1",
			UseSSL: true,
		},
		Report: ReportConfig{
			TopTraders:         10,
			MinResolvedMarkets: 5,
			LookbackDays:       30,
		},
		LogLevel: "info",
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Gamma.BaseURL == "" {
		return fmt.Errorf("config: gamma.base_url is required")
	}
	if c.Gamma.Timeout.Duration <= 0 {
		return fmt.Errorf("config: gamma.timeout must be positive")
	}

	switch c.Store.Backend {
	case BackendParquet:
		if c.Store.DataDir == "" {
			return fmt.Errorf("config: store.data_dir is required for the parquet backend")
		}
	case BackendPostgres:
		if c.Postgres.DSN == "" && (c.Postgres.Host == "" || c.Postgres.Database == "" || c.Postgres.User == "") {
			return fmt.Errorf("config: postgres requires a dsn, or host/database/user")
		}
	case BackendS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("config: s3.bucket is required for the s3 backend")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("config: s3.region is required for the s3 backend")
		}
	default:
		return fmt.Errorf("config: unknown store backend %q", c.Store.Backend)
	}

	if c.Report.TopTraders <= 0 {
		return fmt.Errorf("config: report.top_traders must be positive")
	}
	if c.Report.MinResolvedMarkets < 0 {
		return fmt.Errorf("config: report.min_resolved_markets must not be negative")
	}
	if c.Report.LookbackDays < 0 {
		return fmt.Errorf("config: report.lookback_days must not be negative")
	}

	return nil
}

// duration wraps time.Duration so TOML values like "30s" decode directly.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}
