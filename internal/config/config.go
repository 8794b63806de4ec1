package config

import (
	"github.com/caarlos0/env/v11"

	"adrotation/internal/config/configs"
)

// Config aggregates all configuration sections of the service. Fields are
// populated from environment variables; nested structs are read with the
// prefix given in their envPrefix tag. See the configs package for the
// defaults.
type Config struct {
	// Env names the deployment environment (prod, dev). It is attached to
	// every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP  configs.HTTP     `envPrefix:"HTTP_"`
	Log   configs.Logger   `envPrefix:"LOG_"`
	Psql  configs.Postgres `envPrefix:"PSQL_"`
	Store configs.Store    `envPrefix:"STORE_"`
	Redis configs.Redis    `envPrefix:"REDIS_"`
	Files configs.Files    `envPrefix:"FILES_"`
}

// Load reads the configuration from the environment. Missing variables
// take their defaults; malformed ones fail the load.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Store.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
