// SPDX-License-Identifier: MIT

package strategy

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/roadflow/core"
)

// Sentinel errors.
var (
	// ErrBadStep indicates a congestion step that is negative or not finite.
	ErrBadStep = errors.New("strategy: step must be finite and >= 0")

	// ErrBadMaxMultiplier indicates a cap below 1 or not finite.
	ErrBadMaxMultiplier = errors.New("strategy: max multiplier must be finite and >= 1")

	// ErrUnknownStrategy indicates an unrecognised strategy name or Kind.
	ErrUnknownStrategy = errors.New("strategy: unknown strategy")
)

// Defaults used by the demo scenario.
const (
	DefaultStep          = 0.3
	DefaultMaxMultiplier = 3.0
)

// Params carries the congestion knobs shared by all strategies.
type Params struct {
	Step          float64 `json:"step"`
	MaxMultiplier float64 `json:"max_multiplier"`
}

// DefaultParams returns Step=0.3, MaxMultiplier=3.0.
func DefaultParams() Params {
	return Params{Step: DefaultStep, MaxMultiplier: DefaultMaxMultiplier}
}

// Validate checks Step and MaxMultiplier.
func (p Params) Validate() error {
	if p.Step < 0 || math.IsNaN(p.Step) || math.IsInf(p.Step, 0) {
		return fmt.Errorf("%w: %v", ErrBadStep, p.Step)
	}
	if p.MaxMultiplier < 1 || math.IsNaN(p.MaxMultiplier) || math.IsInf(p.MaxMultiplier, 0) {
		return fmt.Errorf("%w: %v", ErrBadMaxMultiplier, p.MaxMultiplier)
	}

	return nil
}

// capped returns min(m, p.MaxMultiplier).
func (p Params) capped(m float64) float64 { return math.Min(m, p.MaxMultiplier) }

// Result is the routing outcome for one vehicle.
type Result struct {
	Vehicle     string // "<origin>→<destination>"
	Origin      string
	Destination string
	Path        []string // empty when unreachable
	Cost        float64  // +Inf when unreachable
}

// Reachable reports whether the vehicle found a route.
func (r Result) Reachable() bool { return len(r.Path) > 0 && !math.IsInf(r.Cost, 1) }

// VehicleID names the vehicle travelling from origin to destination.
func VehicleID(origin, destination string) string { return origin + "→" + destination }

// Usage tallies how many vehicles traverse each road.
type Usage map[core.RoadKey]int

// Add counts one traversal of every road on path.
func (u Usage) Add(path []string) {
	for _, k := range PathKeys(path) {
		u[k]++
	}
}

// Keys returns the tallied roads in RoadKey order.
func (u Usage) Keys() []core.RoadKey {
	keys := make([]core.RoadKey, 0, len(u))
	for k := range u {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	return keys
}

// PathKeys returns the road keys along path, in travel order.
func PathKeys(path []string) []core.RoadKey {
	if len(path) < 2 {
		return nil
	}
	keys := make([]core.RoadKey, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		keys = append(keys, core.NewRoadKey(path[i-1], path[i]))
	}

	return keys
}

// TotalCost sums the costs of reachable results.
func TotalCost(results []Result) float64 {
	var sum float64
	for _, r := range results {
		if r.Reachable() {
			sum += r.Cost
		}
	}

	return sum
}
