// Package config loads application configuration from the environment, with
// an optional .env file for development.
package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DBConfig holds the database connection settings.
type DBConfig struct {
	Url string `envconfig:"URL"`
}

// JwtConfig holds token signing settings.
type JwtConfig struct {
	Secret string        `envconfig:"SECRET_KEY" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"ledger"`
}

// RateLimitConfig holds the HTTP rate limiter settings.
type RateLimitConfig struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// AppConfig is the root configuration.
type AppConfig struct {
	Env       string          `envconfig:"APP_ENV" default:"development"`
	Host      string          `envconfig:"APP_HOST" default:"localhost"`
	Port      int             `envconfig:"APP_PORT" default:"3000"`
	DB        DBConfig        `envconfig:"DATABASE"`
	Jwt       JwtConfig       `envconfig:"JWT"`
	Log       LogConfig       `envconfig:"LOG"`
	RateLimit RateLimitConfig `envconfig:"RATE_LIMIT"`
}

// Load reads configuration from the environment, optionally preloading a
// .env file.
func Load(logger *slog.Logger, envFilePath ...string) (*AppConfig, error) {
	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		logger.Warn("No .env file found or specified, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"env", cfg.Env,
		"host", cfg.Host,
		"port", cfg.Port,
		"jwt_expiry", cfg.Jwt.Expiry,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}
