package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds the HTTP host settings read from the environment.
type ServerConfig struct {
	Addr       string        `env:"COMPOUND_ADDR"        envDefault:":8080"`
	RedisAddr  string        `env:"COMPOUND_REDIS_ADDR"`
	CacheTTL   time.Duration `env:"COMPOUND_CACHE_TTL"   envDefault:"10m"`
	RateLimit  int           `env:"COMPOUND_RATE_LIMIT"  envDefault:"60"`
	RateWindow time.Duration `env:"COMPOUND_RATE_WINDOW" envDefault:"1m"`
	LogLevel   string        `env:"COMPOUND_LOG_LEVEL"   envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerConfig reads ServerConfig from the environment and checks it.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.RateLimit <= 0 {
		return ServerConfig{}, fmt.Errorf("COMPOUND_RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}
	if cfg.RateWindow <= 0 {
		return ServerConfig{}, fmt.Errorf("COMPOUND_RATE_WINDOW must be positive, got %s", cfg.RateWindow)
	}
	if cfg.CacheTTL < 0 {
		return ServerConfig{}, fmt.Errorf("COMPOUND_CACHE_TTL cannot be negative, got %s", cfg.CacheTTL)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// ParseLogLevel maps a level name to a slog level.
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
