package config

import (
	"github.com/caarlos0/env/v11"

	"newsdesk/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (prod, dev). It is attached to
	// every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the optional lock backend (REDIS_*).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Publish configures the scheduled publication sweep (PUBLISH_*).
	Publish configs.Publish `envPrefix:"PUBLISH_"`

	// Auth holds the secrets used to verify admin and cron callers (AUTH_*).
	Auth configs.Auth `envPrefix:"AUTH_"`
}

// Load reads configuration from environment variables into a Config. Dotenv
// files are consulted first but never override variables that are already
// set. All fields are loaded with their specified defaults when no
// environment variable is provided.
func Load() (Config, error) {
	LoadDotEnv()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
