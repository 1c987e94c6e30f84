// Package config loads the process-wide configuration once at startup.
// Components receive the Config by injection and never read the
// environment themselves.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every configuration parameter of the application.
// It is built once in main and treated as read-only afterwards.
type Config struct {
	// DatabaseURL is the Postgres connection string.
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// Env selects the runtime profile. "development" enables error
	// detail in 500 response bodies.
	Env string `env:"APP_ENV" envDefault:"production"`

	// JWTSecret signs identity tokens. Startup fails without it since
	// every data route is protected.
	JWTSecret string `env:"JWT_SECRET,required"`

	// JWTExpiresIn is the token lifetime.
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`

	// BcryptCost is the password hashing cost factor.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`

	// CORSOrigins is the strict cross-origin allow-list.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses the configuration from the environment. In development a
// .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}

// Development reports whether the development profile is active.
func (c *Config) Development() bool {
	return c.Env == "development"
}
