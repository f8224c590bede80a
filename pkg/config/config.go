package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "pricepulse"

	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

type Config struct {
	App   AppConfig
	Feed  FeedConfig
	Deals DealsConfig
	CORS  CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Feed.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PRICEPULSE_APP_ENV" default:"dev"`
	Port         string `envconfig:"PRICEPULSE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PRICEPULSE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PRICEPULSE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// FeedConfig selects where the TV price snapshot comes from. URL wins when
// both are set; Path reads from local disk.
type FeedConfig struct {
	URL     string        `envconfig:"PRICEPULSE_FEED_URL"`
	Path    string        `envconfig:"PRICEPULSE_FEED_PATH" default:"data/lg-tvs.csv"`
	Timeout time.Duration `envconfig:"PRICEPULSE_FEED_TIMEOUT" default:"10s"`
}

func (f FeedConfig) validate() error {
	if strings.TrimSpace(f.URL) == "" && strings.TrimSpace(f.Path) == "" {
		return fmt.Errorf("feed: either PRICEPULSE_FEED_URL or PRICEPULSE_FEED_PATH must be set")
	}
	if f.Timeout <= 0 {
		return fmt.Errorf("feed: timeout must be positive")
	}
	return nil
}

type DealsConfig struct {
	Limit int `envconfig:"PRICEPULSE_DEALS_LIMIT" default:"8"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"PRICEPULSE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
