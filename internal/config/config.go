package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// HTTPCfg is http server configuration
type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LogCfg is logging configuration
type LogCfg struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Config is aggregated application configuration
type Config struct {
	HTTPCfg HTTPCfg
	LogCfg  LogCfg
}

// Build parses configuration from environment variables
func Build() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}
	return cfg, nil
}
