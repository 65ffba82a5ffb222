package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
)

type Config struct {
	App      App
	HTTP     HTTP
	Log      Log
	Deal     Deal
	Store    Store
	Redis    Redis
	Notifier Notifier
}

type App struct {
	Name            string        `env:"APP_NAME" envDefault:"closing-table"`
	Version         string        `env:"APP_VERSION" envDefault:"dev"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ProbeAddress    string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsAddress  string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

type HTTP struct {
	ListenAddress string `env:"HTTP_LISTEN_ADDRESS" envDefault:":3000"`
}

type Log struct {
	Level       slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	Format      string     `env:"LOG_FORMAT" envDefault:"text"`
	FieldMaxLen int        `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

// Store selects where offers and results live and how long they are kept.
type Store struct {
	Backend      string        `env:"STORE_BACKEND" envDefault:"memory"`
	OfferTTL     time.Duration `env:"OFFER_TTL" envDefault:"24h"`
	ResultTTL    time.Duration `env:"RESULT_TTL" envDefault:"168h"`
	ReapInterval time.Duration `env:"REAP_INTERVAL" envDefault:"15m"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Validate: %w", err)
	}

	return config, nil
}

// Validate checks cross-field constraints env tags cannot express. Deal
// parameters are checked by the mechanism itself.
func (c Config) Validate() error {
	var errs []error

	switch c.Store.Backend {
	case StoreBackendMemory, StoreBackendRedis:
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND: unknown backend %q", c.Store.Backend))
	}

	if c.Store.OfferTTL <= 0 {
		errs = append(errs, errors.New("OFFER_TTL must be positive"))
	}

	if c.Store.ResultTTL <= 0 {
		errs = append(errs, errors.New("RESULT_TTL must be positive"))
	}

	if c.Store.ReapInterval <= 0 {
		errs = append(errs, errors.New("REAP_INTERVAL must be positive"))
	}

	if c.Store.Backend == StoreBackendRedis && c.Redis.Address == "" {
		errs = append(errs, errors.New("REDIS_ADDRESS is required for the redis backend"))
	}

	errs = append(errs, c.Notifier.validate(c.Redis)...)

	return errors.Join(errs...)
}
