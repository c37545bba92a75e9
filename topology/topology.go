// SPDX-License-Identifier: MIT

// Package topology describes the static road network handed to the builder:
// intersections, roads with a base cost, and the per-scenario traffic
// multipliers that seed the congestion state of every build.
//
// Topology is plain data; it is validated once by Validate and never mutated by
// the engine. Traffic is keyed by core.RoadKey, so road orientation never matters
// after ResolveTraffic has run.
package topology

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/roadflow/core"
)

// Sentinel errors for malformed topology or traffic input.
var (
	// ErrEmptyNodeID indicates a node (or road endpoint) with an empty identifier.
	ErrEmptyNodeID = errors.New("topology: empty node ID")

	// ErrBadNodeID indicates a node ID containing core.RoadSeparator, which would
	// make "<from>-<to>" traffic keys ambiguous.
	ErrBadNodeID = errors.New("topology: node ID contains the road separator")

	// ErrDuplicateNode indicates the same node listed twice.
	ErrDuplicateNode = errors.New("topology: duplicate node")

	// ErrUnknownNode indicates a road referencing a node that is not listed.
	ErrUnknownNode = errors.New("topology: road references unknown node")

	// ErrDuplicateRoad indicates two roads between the same pair of nodes.
	ErrDuplicateRoad = errors.New("topology: duplicate road")

	// ErrSelfLoop indicates a road whose endpoints coincide.
	ErrSelfLoop = errors.New("topology: road is a self-loop")

	// ErrBadBaseCost indicates a base cost that is not finite and > 0.
	ErrBadBaseCost = errors.New("topology: base cost must be finite and positive")

	// ErrBadMultiplier indicates a traffic multiplier that is not finite and > 0.
	ErrBadMultiplier = errors.New("topology: traffic multiplier must be finite and positive")
)

// Road is one undirected road of the input network.
type Road struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	BaseCost float64 `json:"base_cost"`
}

// Key returns the normalized key of r.
func (r Road) Key() core.RoadKey { return core.NewRoadKey(r.From, r.To) }

// Topology is the ordered node and road list of a network.
type Topology struct {
	Nodes []string `json:"nodes"`
	Roads []Road   `json:"edges"`
}

// Validate checks the invariants the builder relies on and returns the first
// violation found, in input order.
//
// Rules:
//  1. Node IDs are non-empty, unique and free of core.RoadSeparator.
//  2. Road endpoints are non-empty, distinct and listed in Nodes.
//  3. Base cost is finite and > 0.
//  4. At most one road per unordered node pair.
//
// Complexity: O(V + E).
func (t Topology) Validate() error {
	nodes := make(map[string]struct{}, len(t.Nodes))
	for i, id := range t.Nodes {
		if id == "" {
			return fmt.Errorf("%w: nodes[%d]", ErrEmptyNodeID, i)
		}
		if strings.Contains(id, core.RoadSeparator) {
			return fmt.Errorf("%w: %q", ErrBadNodeID, id)
		}
		if _, dup := nodes[id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
		}
		nodes[id] = struct{}{}
	}

	seen := make(map[core.RoadKey]int, len(t.Roads))
	for i, r := range t.Roads {
		if r.From == "" || r.To == "" {
			return fmt.Errorf("%w: edges[%d]", ErrEmptyNodeID, i)
		}
		if _, ok := nodes[r.From]; !ok {
			return fmt.Errorf("%w: edges[%d] from=%q", ErrUnknownNode, i, r.From)
		}
		if _, ok := nodes[r.To]; !ok {
			return fmt.Errorf("%w: edges[%d] to=%q", ErrUnknownNode, i, r.To)
		}
		if r.From == r.To {
			return fmt.Errorf("%w: edges[%d] %q", ErrSelfLoop, i, r.From)
		}
		if !positiveFinite(r.BaseCost) {
			return fmt.Errorf("%w: edges[%d] %s base_cost=%v", ErrBadBaseCost, i, r.Key(), r.BaseCost)
		}
		key := r.Key()
		if j, dup := seen[key]; dup {
			return fmt.Errorf("%w: edges[%d] and edges[%d] both connect %s", ErrDuplicateRoad, j, i, key)
		}
		seen[key] = i
	}

	return nil
}

// HasRoad reports whether the topology lists a road between u and v.
// Complexity: O(E).
func (t Topology) HasRoad(u, v string) bool {
	key := core.NewRoadKey(u, v)
	for _, r := range t.Roads {
		if r.Key() == key {
			return true
		}
	}

	return false
}

// HasNode reports whether id is listed.
// Complexity: O(V).
func (t Topology) HasNode(id string) bool {
	for _, n := range t.Nodes {
		if n == id {
			return true
		}
	}

	return false
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
