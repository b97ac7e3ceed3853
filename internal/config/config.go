// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "SOL"

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	SQLite  SQLiteConfig
	Redis   RedisConfig
	Ledger  LedgerConfig
	Metrics MetricsConfig
}

type AppConfig struct {
	Port      int    `envconfig:"SOL_PORT" default:"8080"`
	LogLevel  string `envconfig:"SOL_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"SOL_LOG_FORMAT" default:"text"`
}

type StoreConfig struct {
	Backend string        `envconfig:"SOL_STORE" default:"sqlite"`
	Timeout time.Duration `envconfig:"SOL_STORE_TIMEOUT" default:"5s"`
}

type SQLiteConfig struct {
	Path string `envconfig:"SOL_DB_PATH" default:"./data/sols.db"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SOL_REDIS_URL"`
	Address      string        `envconfig:"SOL_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"SOL_REDIS_PASSWORD"`
	DB           int           `envconfig:"SOL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SOL_REDIS_POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"SOL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SOL_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"SOL_REDIS_WRITE_TIMEOUT" default:"3s"`
	KeyPrefix    string        `envconfig:"SOL_REDIS_KEY_PREFIX" default:"sol"`
}

type LedgerConfig struct {
	// RequireFullCollection rejects payouts until every payer of the round has
	// paid in full.
	RequireFullCollection bool `envconfig:"SOL_REQUIRE_FULL_COLLECTION" default:"false"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"SOL_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"SOL_METRICS_PATH" default:"/metrics"`
}

// Load reads a .env file when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv parses the process environment without touching .env files.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case StoreSQLite, StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("unknown store backend %q (want %s, %s or %s)",
			c.Store.Backend, StoreSQLite, StoreMemory, StoreRedis)
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.App.Port)
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (a AppConfig) Addr() string {
	return fmt.Sprintf(":%d", a.Port)
}
