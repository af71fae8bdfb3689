package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from ORGS_* environment variables. CLI flags on the serve
// command override individual fields.
type Config struct {
	Addr                 string        `env:"ORGS_ADDR" envDefault:":8080"`
	Env                  string        `env:"ORGS_ENV" envDefault:"dev"`
	LogLevel             string        `env:"ORGS_LOG_LEVEL" envDefault:"info"`
	LogFormat            string        `env:"ORGS_LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout      time.Duration `env:"ORGS_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"ORGS_HOUSEKEEPING_INTERVAL" envDefault:"1h"`

	DBDriver    string `env:"ORGS_DB_DRIVER" envDefault:"sqlite"` // sqlite, postgres
	DBPath      string `env:"ORGS_DB_PATH" envDefault:"orgs.db"`
	DatabaseURL string `env:"ORGS_DATABASE_URL"`

	JWTAlgorithm string        `env:"ORGS_JWT_ALG" envDefault:"HS256"` // HS256, EdDSA
	JWTSecret    string        `env:"ORGS_JWT_SECRET"`
	JWTKeyPath   string        `env:"ORGS_JWT_KEY_PATH"`
	Issuer       string        `env:"ORGS_ISSUER" envDefault:"orgs"`
	Audience     []string      `env:"ORGS_AUDIENCE" envDefault:"orgs-api" envSeparator:","`
	AccessTTL    time.Duration `env:"ORGS_ACCESS_TTL" envDefault:"15m"`
	RefreshTTL   time.Duration `env:"ORGS_REFRESH_TTL" envDefault:"168h"`
	PepperPath   string        `env:"ORGS_PEPPER_PATH" envDefault:"pepper.key"`

	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	TracesEnabled bool   `env:"OTEL_TRACES_ENABLED" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadConfig parses the environment and validates the result.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("ORGS_DB_PATH is required for the sqlite driver")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("ORGS_DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported ORGS_DB_DRIVER %q (supported: sqlite, postgres)", c.DBDriver)
	}

	if c.Issuer == "" {
		return fmt.Errorf("ORGS_ISSUER must not be empty")
	}
	if c.AccessTTL <= 0 || c.RefreshTTL <= 0 {
		return fmt.Errorf("token lifetimes must be positive")
	}
	return nil
}
