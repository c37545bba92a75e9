// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/roadflow/core"
)

// Traffic maps roads to their scenario multiplier. Roads absent from the map
// run at core.DefaultMultiplier.
type Traffic map[core.RoadKey]float64

// Multiplier returns the scenario multiplier for the road u–v.
func (tr Traffic) Multiplier(u, v string) float64 {
	if m, ok := tr[core.NewRoadKey(u, v)]; ok {
		return m
	}

	return core.DefaultMultiplier
}

// ResolveTraffic converts raw "<from>-<to>" keyed multipliers into Traffic for
// the roads of t. For each road "u-v" is looked up first, then "v-u"; keys
// that match no road are ignored.
//
// Errors:
//   - ErrBadMultiplier if a matched multiplier is not finite and > 0.
//
// Complexity: O(E).
func ResolveTraffic(t Topology, raw map[string]float64) (Traffic, error) {
	out := make(Traffic, len(raw))
	for _, r := range t.Roads {
		m, ok := raw[r.From+core.RoadSeparator+r.To]
		if !ok {
			m, ok = raw[r.To+core.RoadSeparator+r.From]
		}
		if !ok {
			continue
		}
		if !positiveFinite(m) {
			return nil, fmt.Errorf("%w: %s=%v", ErrBadMultiplier, r.Key(), m)
		}
		out[r.Key()] = m
	}

	return out, nil
}

// Capped returns a copy of tr with every multiplier above limit lowered to limit,
// and the roads that were lowered, in RoadKey order.
//
// Complexity: O(R log R).
func (tr Traffic) Capped(limit float64) (Traffic, []core.RoadKey) {
	if tr == nil {
		return nil, nil
	}
	out := make(Traffic, len(tr))
	var lowered []core.RoadKey
	for k, m := range tr {
		if m > limit {
			m = limit
			lowered = append(lowered, k)
		}
		out[k] = m
	}
	sort.Slice(lowered, func(i, j int) bool { return lowered[i].Less(lowered[j]) })

	return out, lowered
}
