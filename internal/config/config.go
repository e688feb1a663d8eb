// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by the command line tools and the engine
// tests. Flags given on the command line take precedence.
type Config struct {
	// LibraryPath is passed to dlopen; a bare name is searched on the
	// loader path.
	LibraryPath string `env:"CLIPPY_LIBRARY"   envDefault:"libclpsolve.so"`
	Symbol      string `env:"CLIPPY_SYMBOL"    envDefault:"clp_solve"`
	Mode        string `env:"CLIPPY_MODE"      envDefault:"primal"`
	LogLevel    string `env:"CLIPPY_LOG_LEVEL" envDefault:"info"`
	Jobs        int    `env:"CLIPPY_JOBS"      envDefault:"1"`
	Reentrant   bool   `env:"CLIPPY_REENTRANT"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.validate()
}

// LoadFrom reads Config from environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("CLIPPY_JOBS must be at least 1, got %d", c.Jobs)
	}
	return nil
}
