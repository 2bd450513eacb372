package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

// Config is parsed once at process startup and passed explicitly to the
// components that need it. Core logic never reads process env on its own.
type Config struct {
	Production bool   `env:"PRODUCTION" envDefault:"false"`
	Port       string `env:"PORT" envDefault:"80"`

	PostgresURL string `env:"POSTGRES_URL,required"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis:6379"`

	Secret             string        `env:"SECRET,required"`
	JwtTTL             time.Duration `env:"TOKEN_TTL" envDefault:"20m"`
	SessionTTL         time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	SessionTokenLength int           `env:"SESSION_TOKEN_LENGTH" envDefault:"32"`

	ClientSecretPath string `env:"CLIENT_SECRET_PATH" envDefault:"secrets/client_secret.json"`
	ClientType       string `env:"CLIENT_TYPE" envDefault:"web"`
	RedirectURL      string `env:"REDIRECT_URL" envDefault:""`

	GateServiceURL string        `env:"GATE_SERVICE_URL" envDefault:""`
	GateCacheTTL   time.Duration `env:"GATE_CACHE_TTL" envDefault:"5m"`

	PaymentServiceURL string `env:"PAYMENT_SERVICE_URL" envDefault:""`

	FreePlanSlotLimit int `env:"FREE_PLAN_SLOT_LIMIT" envDefault:"15"`
}

func Parse() (*Config, error) {
	conf := &Config{}
	if err := env.Parse(conf); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return conf, nil
}
