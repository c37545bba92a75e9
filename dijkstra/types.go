// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that start or end is not a vertex of the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates an edge whose weight is negative or NaN.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Unreachable is the cost reported for a target that cannot be reached.
var Unreachable = math.Inf(1)

// Path is the solver's answer for one (start, end) query.
//
// Nodes runs from start to end inclusive and is empty when end is unreachable.
// Cost is the sum of edge weights along Nodes, or +Inf when unreachable.
type Path struct {
	Nodes []string
	Cost  float64
}

// Reachable reports whether the path connects its endpoints.
func (p Path) Reachable() bool { return len(p.Nodes) > 0 && !math.IsInf(p.Cost, 1) }

// Hops returns the number of roads on the path.
func (p Path) Hops() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// unreachable returns the canonical unreachable result.
func unreachable() Path { return Path{Nodes: []string{}, Cost: Unreachable} }
