// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the client settings, read from POKEDEX_* variables.
type Config struct {
	BaseURL string        `env:"POKEDEX_API_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"POKEDEX_TIMEOUT" envDefault:"10s"`

	// Breaker enables the circuit breaker around the transport.
	Breaker bool `env:"POKEDEX_BREAKER" envDefault:"true"`
	Debug   bool `env:"POKEDEX_DEBUG"   envDefault:"false"`
}

// LoadConfig parses the client configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("apiclient: parse environment: %w", err)
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("apiclient: POKEDEX_TIMEOUT must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}
