// SPDX-License-Identifier: MIT

// Package config holds the typed settings of the roadflow binary.
//
// Resolution order, later wins:
//  1. Default().
//  2. JSON file given to Load (fields absent from the file keep their default).
//  3. ROADFLOW_* environment variables, optionally seeded from a .env file via
//     LoadDotEnv.
//
// Validate is called by Load and Resolve; a Config built by hand should be
// validated before use.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/roadflow/simulation"
	"github.com/katalvlaran/roadflow/strategy"
)

// Sentinel errors.
var (
	// ErrInvalid indicates a configuration value that fails validation.
	ErrInvalid = errors.New("config: invalid value")

	// ErrBadEnv indicates an environment variable that cannot be parsed.
	ErrBadEnv = errors.New("config: bad environment variable")
)

// Config is the complete binary configuration.
type Config struct {
	Simulation Simulation `json:"simulation"`
	Data       Data       `json:"data"`
	Server     Server     `json:"server"`
	Logging    Logging    `json:"logging"`
}

// Simulation configures the scenario.
type Simulation struct {
	Strategy      string   `json:"strategy"`
	Origins       []string `json:"origins"`
	Destination   string   `json:"destination"`
	Step          float64  `json:"step"`
	MaxMultiplier float64  `json:"max_multiplier"`
	Seed          int64    `json:"seed"` // 0 seeds accident selection from the clock
}

// Data points at scenario files. An empty CityMap selects the built-in demo map.
type Data struct {
	CityMap string `json:"city_map"`
	Traffic string `json:"traffic"`
}

// Server configures the HTTP adapter.
type Server struct {
	Addr         string   `json:"addr"`
	AllowOrigins []string `json:"allow_origins"` // empty allows all
}

// Logging configures zap.
type Logging struct {
	Level       string `json:"level"`
	Development bool   `json:"development"`
}

// Default returns the demo scenario: vehicles from A, C and E to F, greedy,
// step 0.3, cap 3.0, serving on :8080.
func Default() Config {
	return Config{
		Simulation: Simulation{
			Strategy:      strategy.Greedy.String(),
			Origins:       append([]string(nil), simulation.DefaultOrigins...),
			Destination:   simulation.DefaultDestination,
			Step:          strategy.DefaultStep,
			MaxMultiplier: strategy.DefaultMaxMultiplier,
		},
		Server:  Server{Addr: ":8080"},
		Logging: Logging{Level: "info"},
	}
}

// Load reads path over Default and validates the result. Environment variables
// are not consulted; see Resolve.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err = json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Resolve loads path (Default when empty), applies the process environment and
// validates.
func Resolve(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Kind parses Simulation.Strategy.
func (s Simulation) Kind() (strategy.Kind, error) { return strategy.ParseKind(s.Strategy) }

// Params returns the congestion parameters.
func (s Simulation) Params() strategy.Params {
	return strategy.Params{Step: s.Step, MaxMultiplier: s.MaxMultiplier}
}

// Options converts the scenario settings into session options.
func (s Simulation) Options() ([]simulation.Option, error) {
	k, err := s.Kind()
	if err != nil {
		return nil, err
	}
	opts := []simulation.Option{
		simulation.WithStrategy(k),
		simulation.WithParams(s.Params()),
		simulation.WithOrigins(s.Origins...),
		simulation.WithDestination(s.Destination),
	}
	if s.Seed != 0 {
		opts = append(opts, simulation.WithSeed(s.Seed))
	}

	return opts, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := c.Simulation.Kind(); err != nil {
		return fmt.Errorf("%w: simulation.strategy: %v", ErrInvalid, err)
	}
	if err := c.Simulation.Params().Validate(); err != nil {
		return fmt.Errorf("%w: simulation: %v", ErrInvalid, err)
	}
	if len(c.Simulation.Origins) == 0 {
		return fmt.Errorf("%w: simulation.origins is empty", ErrInvalid)
	}
	for i, o := range c.Simulation.Origins {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("%w: simulation.origins[%d] is empty", ErrInvalid, i)
		}
	}
	if strings.TrimSpace(c.Simulation.Destination) == "" {
		return fmt.Errorf("%w: simulation.destination is empty", ErrInvalid)
	}
	if c.Data.Traffic != "" && c.Data.CityMap == "" {
		return fmt.Errorf("%w: data.traffic requires data.city_map", ErrInvalid)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}

	return nil
}

// NewLogger builds a zap logger at the configured level.
func (l Logging) NewLogger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
