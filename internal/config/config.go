package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	DatabaseURL   string `env:"DATABASE_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	OpenRouterKey string `env:"OPENROUTER_API_KEY,required"`

	// Server
	Port int `env:"PORT" envDefault:"3000"`

	// Routing
	MaxCostPerRequest float64 `env:"MAX_COST_PER_REQUEST" envDefault:"0.01"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
