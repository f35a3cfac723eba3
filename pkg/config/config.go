package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "GAMEDEALS"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App        AppConfig
	CheapShark CheapSharkConfig
	Catalog    CatalogConfig
	Redis      RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Catalog.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GAMEDEALS_APP_ENV" default:"dev"`
	Port         string `envconfig:"GAMEDEALS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GAMEDEALS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GAMEDEALS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CheapSharkConfig points at the upstream price-comparison API. The API is
// public: no key, no auth, no rate-limit negotiation.
type CheapSharkConfig struct {
	BaseURL string        `envconfig:"GAMEDEALS_CHEAPSHARK_BASE_URL" default:"https://www.cheapshark.com/api/1.0"`
	Timeout time.Duration `envconfig:"GAMEDEALS_CHEAPSHARK_TIMEOUT" default:"10s"`
}

// CatalogConfig tunes the serving side of the deal catalog.
type CatalogConfig struct {
	PageSize          int           `envconfig:"GAMEDEALS_CATALOG_PAGE_SIZE" default:"10"`
	SnapshotTTL       time.Duration `envconfig:"GAMEDEALS_CATALOG_SNAPSHOT_TTL" default:"5m"`
	DefaultUpperPrice float64       `envconfig:"GAMEDEALS_CATALOG_DEFAULT_UPPER_PRICE" default:"100"`
}

func (c CatalogConfig) validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("catalog page size must be positive, got %d", c.PageSize)
	}
	if c.SnapshotTTL <= 0 {
		return fmt.Errorf("catalog snapshot ttl must be positive, got %s", c.SnapshotTTL)
	}
	if c.DefaultUpperPrice <= 0 {
		return fmt.Errorf("catalog default upper price must be positive, got %v", c.DefaultUpperPrice)
	}
	return nil
}

// RedisConfig is optional; when URL is empty the snapshot cache stays
// process-local.
type RedisConfig struct {
	URL          string        `envconfig:"GAMEDEALS_REDIS_URL"`
	PoolSize     int           `envconfig:"GAMEDEALS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GAMEDEALS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GAMEDEALS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GAMEDEALS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GAMEDEALS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}
