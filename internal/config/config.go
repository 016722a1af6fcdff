// Package config loads runtime configuration from environment variables.
//
// WHY A CONFIG STRUCT?
// Every tunable of the service lives in one typed struct that main.go parses
// once at startup and passes into constructors. Components never reach for
// os.Getenv themselves — that would be ambient global state, impossible to
// vary per test and easy to read in the wrong place at the wrong time.
//
// We use caarlos0/env to map environment variables onto struct fields via
// tags. Defaults are declared next to the field they belong to, so the whole
// configuration surface is visible in one place.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultJWTSecret is used when JWT_SECRET is unset.
//
// This is a deliberate convenience for local development — the original
// deployment behaved the same way. main.go logs a warning whenever the
// default is in effect; production must always set JWT_SECRET.
const DefaultJWTSecret = "insecure-local-dev-secret-change-me"

// Config holds all server configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"3000"`

	// UsersPath is the JSON file holding the full user collection.
	// Every mutation rewrites this file in full.
	UsersPath string `env:"USERS_PATH" envDefault:"data/users.json"`

	// StoriesPath is the read-only story catalog JSON file.
	StoriesPath string `env:"STORIES_PATH" envDefault:"data/stories.json"`

	// StoriesDriver selects the catalog backend: "jsonfile" (default) reads
	// StoriesPath; "sqlite" reads the stories table from StoriesDB.
	StoriesDriver string `env:"STORIES_DRIVER" envDefault:"jsonfile"`

	// StoriesDB is the sqlite database path, used only when
	// StoriesDriver is "sqlite".
	StoriesDB string `env:"STORIES_DB" envDefault:"data/stories.db"`

	// JWTSecret signs session tokens. Falls back to DefaultJWTSecret.
	JWTSecret string `env:"JWT_SECRET"`
}

// Load parses the environment into a Config and applies fallbacks.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DefaultJWTSecret
	}

	switch cfg.StoriesDriver {
	case "jsonfile", "sqlite":
	default:
		return nil, fmt.Errorf("config: unknown STORIES_DRIVER %q (want jsonfile or sqlite)", cfg.StoriesDriver)
	}

	return &cfg, nil
}

// UsingDefaultSecret reports whether the insecure development secret is in
// effect. main.go uses this to log a startup warning.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}
