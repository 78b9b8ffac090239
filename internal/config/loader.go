package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies POLYSCOPE_* environment variable overrides, and
// returns the final Config. The returned Config has NOT been validated; the
// caller should invoke Config.Validate() after Load. A missing file is not
// an error: defaults plus environment are enough to run against the public
// API and a local data directory.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known POLYSCOPE_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This
// lets operators inject secrets without touching the TOML file.
func applyEnvOverrides(cfg *Config) {
	// ── Gamma ──
	setStr(&cfg.Gamma.BaseURL, "POLYSCOPE_GAMMA_BASE_URL")
	setDuration(&cfg.Gamma.Timeout, "POLYSCOPE_GAMMA_TIMEOUT")

	// ── Store ──
	setStr(&cfg.Store.Backend, "POLYSCOPE_STORE_BACKEND")
	setStr(&cfg.Store.DataDir, "POLYSCOPE_STORE_DATA_DIR")

	// ── Postgres ──
	setStr(&cfg.Postgres.DSN, "POLYSCOPE_POSTGRES_DSN")
	setStr(&cfg.Postgres.Host, "POLYSCOPE_POSTGRES_HOST")
	setInt(&cfg.Postgres.Port, "POLYSCOPE_POSTGRES_PORT")
	setStr(&cfg.Postgres.Database, "POLYSCOPE_POSTGRES_DATABASE")
	setStr(&cfg.Postgres.User, "POLYSCOPE_POSTGRES_USER")
	setStr(&cfg.Postgres.Password, "POLYSCOPE_POSTGRES_PASSWORD")
	setStr(&cfg.Postgres.SSLMode, "POLYSCOPE_POSTGRES_SSLMODE")
	setInt(&cfg.Postgres.PoolMaxConns, "POLYSCOPE_POSTGRES_POOL_MAX_CONNS")
	setInt(&cfg.Postgres.PoolMinConns, "POLYSCOPE_POSTGRES_POOL_MIN_CONNS")
	setBool(&cfg.Postgres.RunMigrations, "POLYSCOPE_POSTGRES_RUN_MIGRATIONS")

	// ── S3 ──
	setStr(&cfg.S3.Endpoint, "POLYSCOPE_S3_ENDPOINT")
	setStr(&cfg.S3.Region, "POLYSCOPE_S3_REGION")
	setStr(&cfg.S3.Bucket, "POLYSCOPE_S3_BUCKET")
	setStr(&cfg.S3.Prefix, "POLYSCOPE_S3_PREFIX")
	setStr(&cfg.S3.AccessKey, "POLYSCOPE_S3_ACCESS_KEY")
	setStr(&cfg.S3.SecretKey, "POLYSCOPE_S3_SECRET_KEY")
	setBool(&cfg.S3.UseSSL, "POLYSCOPE_S3_USE_SSL")
	setBool(&cfg.S3.ForcePathStyle, "POLYSCOPE_S3_FORCE_PATH_STYLE")

	// ── Report ──
	setInt(&cfg.Report.TopTraders, "POLYSCOPE_REPORT_TOP_TRADERS")
	setInt(&cfg.Report.MinResolvedMarkets, "POLYSCOPE_REPORT_MIN_RESOLVED_MARKETS")
	setInt(&cfg.Report.LookbackDays, "POLYSCOPE_REPORT_LOOKBACK_DAYS")

	// ── Top-level ──
	setStr(&cfg.LogLevel, "POLYSCOPE_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}
