// SPDX-License-Identifier: MIT
// Package: roadflow/builder
//
// build.go: the per-cycle graph builder.
//
// Contract:
//   • Validate the topology first; no graph is returned on any validation error.
//   • Nodes are added in input order, roads in input order.
//   • The accident road (zero key = none) is skipped in either orientation.
//   • Each road starts at traffic.Multiplier(u, v); strategy-applied congestion
//     from earlier cycles never leaks in, because every call allocates a new graph.
//
// Complexity:
//   • Time O(V + E), Space O(V + E).

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadflow/core"
	"github.com/katalvlaran/roadflow/topology"
)

const methodBuild = "Build"

// Build composes t, traffic and the accident exclusion into a fresh weighted graph.
//
// Errors:
//   - topology.ErrEmptyNodeID, ErrDuplicateNode, ErrUnknownNode, ErrDuplicateRoad,
//     ErrSelfLoop, ErrBadBaseCost from validation.
//   - core.ErrBadMultiplier if traffic holds a non-positive or non-finite value.
func Build(t topology.Topology, traffic topology.Traffic, accident core.RoadKey) (*core.Graph, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	g := core.NewGraph()
	for _, id := range t.Nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodBuild, id, err)
		}
	}

	var m float64
	for _, r := range t.Roads {
		if !accident.IsZero() && r.Key() == accident {
			continue // road closed
		}
		m = traffic.Multiplier(r.From, r.To)
		if _, err := g.AddEdge(r.From, r.To, r.BaseCost, m); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%s): %w", methodBuild, r.Key(), err)
		}
	}

	return g, nil
}
