// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvStrategy      = "ROADFLOW_STRATEGY"
	EnvOrigins       = "ROADFLOW_ORIGINS" // comma separated
	EnvDestination   = "ROADFLOW_DESTINATION"
	EnvStep          = "ROADFLOW_STEP"
	EnvMaxMultiplier = "ROADFLOW_MAX_MULTIPLIER"
	EnvSeed          = "ROADFLOW_SEED"
	EnvCityMap       = "ROADFLOW_CITY_MAP"
	EnvTraffic       = "ROADFLOW_TRAFFIC"
	EnvAddr          = "ROADFLOW_ADDR"
	EnvLogLevel      = "ROADFLOW_LOG_LEVEL"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv exports the variables of the given .env files (".env" when none)
// into the process environment without overriding variables already set.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// ReadDotEnv parses .env files without touching the process environment.
// The result plugs into ApplyEnv through MapLookup.
func ReadDotEnv(files ...string) (map[string]string, error) {
	return godotenv.Read(files...)
}

// MapLookup adapts a map to LookupFunc.
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// ApplyEnv overrides cfg with every ROADFLOW_* variable lookup finds.
// Empty values are ignored.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvStrategy); ok {
		cfg.Simulation.Strategy = v
	}
	if v, ok := get(EnvOrigins); ok {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Simulation.Origins = origins
	}
	if v, ok := get(EnvDestination); ok {
		cfg.Simulation.Destination = v
	}
	if v, ok := get(EnvStep); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrBadEnv, EnvStep, v)
		}
		cfg.Simulation.Step = f
	}
	if v, ok := get(EnvMaxMultiplier); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrBadEnv, EnvMaxMultiplier, v)
		}
		cfg.Simulation.MaxMultiplier = f
	}
	if v, ok := get(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrBadEnv, EnvSeed, v)
		}
		cfg.Simulation.Seed = n
	}
	if v, ok := get(EnvCityMap); ok {
		cfg.Data.CityMap = v
	}
	if v, ok := get(EnvTraffic); ok {
		cfg.Data.Traffic = v
	}
	if v, ok := get(EnvAddr); ok {
		cfg.Server.Addr = v
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}

	return nil
}
