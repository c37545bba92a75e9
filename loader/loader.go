// SPDX-License-Identifier: MIT

// Package loader reads scenario data from disk: the city map as JSON and the
// traffic multipliers as CSV.
//
// City map:
//
//	{"nodes": ["A", "B"], "edges": [{"from": "A", "to": "B", "base_cost": 4}]}
//
// Traffic (header required, extra columns ignored, column order free):
//
//	road,traffic_multiplier
//	A-B,1.5
//
// Loaders only parse. Validation belongs to topology.Validate and
// topology.ResolveTraffic, which ReadCityMap and LoadScenario call.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadflow/topology"
)

// CSV column names.
const (
	ColumnRoad       = "road"
	ColumnMultiplier = "traffic_multiplier"
)

// Sentinel errors.
var (
	// ErrBadCityMap indicates JSON that does not decode into a city map.
	ErrBadCityMap = errors.New("loader: malformed city map")

	// ErrMissingColumn indicates a traffic CSV without a required header column.
	ErrMissingColumn = errors.New("loader: traffic csv missing column")

	// ErrBadRecord indicates a traffic row with an empty road or a non-numeric multiplier.
	ErrBadRecord = errors.New("loader: malformed traffic record")

	// ErrDuplicateRoad indicates the same road key listed twice in one traffic file.
	ErrDuplicateRoad = errors.New("loader: duplicate traffic road")
)

// ReadCityMap decodes and validates a city map. Node IDs may not contain "-",
// the separator of the traffic CSV road column.
func ReadCityMap(r io.Reader) (topology.Topology, error) {
	var t topology.Topology
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return topology.Topology{}, fmt.Errorf("%w: %v", ErrBadCityMap, err)
	}
	if err := t.Validate(); err != nil {
		return topology.Topology{}, fmt.Errorf("loader: %w", err)
	}

	return t, nil
}

// LoadCityMap reads the city map at path.
func LoadCityMap(path string) (topology.Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return topology.Topology{}, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	t, err := ReadCityMap(f)
	if err != nil {
		return topology.Topology{}, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// ReadTraffic parses a traffic CSV into raw "<from>-<to>" keyed multipliers.
// Keys are kept verbatim; orientation is resolved by topology.ResolveTraffic.
func ReadTraffic(r io.Reader) (map[string]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMissingColumn, err)
	}
	roadCol, multCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case ColumnRoad:
			roadCol = i
		case ColumnMultiplier:
			multCol = i
		}
	}
	if roadCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnRoad)
	}
	if multCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnMultiplier)
	}

	out := make(map[string]float64)
	var rec []string
	var line int
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: traffic csv: %w", err)
		}
		line, _ = cr.FieldPos(0)
		if len(rec) <= roadCol || len(rec) <= multCol {
			return nil, fmt.Errorf("%w: line %d: %d fields", ErrBadRecord, line, len(rec))
		}
		road := strings.TrimSpace(rec[roadCol])
		if road == "" {
			return nil, fmt.Errorf("%w: line %d: empty road", ErrBadRecord, line)
		}
		m, perr := strconv.ParseFloat(strings.TrimSpace(rec[multCol]), 64)
		if perr != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, perr)
		}
		if _, dup := out[road]; dup {
			return nil, fmt.Errorf("%w: line %d: %s", ErrDuplicateRoad, line, road)
		}
		out[road] = m
	}

	return out, nil
}

// LoadTraffic reads the traffic CSV at path.
func LoadTraffic(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	raw, err := ReadTraffic(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return raw, nil
}

// LoadScenario loads a city map and, when trafficPath is non-empty, its traffic
// multipliers resolved against the map.
func LoadScenario(mapPath, trafficPath string) (topology.Topology, topology.Traffic, error) {
	t, err := LoadCityMap(mapPath)
	if err != nil {
		return topology.Topology{}, nil, err
	}
	if trafficPath == "" {
		return t, topology.Traffic{}, nil
	}
	raw, err := LoadTraffic(trafficPath)
	if err != nil {
		return topology.Topology{}, nil, err
	}
	tr, err := topology.ResolveTraffic(t, raw)
	if err != nil {
		return topology.Topology{}, nil, fmt.Errorf("%s: %w", trafficPath, err)
	}

	return t, tr, nil
}
