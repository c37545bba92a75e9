// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and read-only statistics.
// Determinism:
//   - Clone carries nextEdgeID so future AddEdge calls continue the same ID sequence.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the graph: vertices, roads (with their current
// multipliers) and adjacency. Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	clone.nextEdgeID = g.nextEdgeID
	var id string
	for id = range g.vertices {
		clone.vertices[id] = &Vertex{ID: id}
		clone.adjacency[id] = make(map[string]struct{}, len(g.adjacency[id]))
	}
	var (
		key RoadKey
		e   *edge
	)
	for key, e = range g.edges {
		clone.edges[key] = &edge{Edge: e.Edge}
		clone.adjacency[key.A][key.B] = struct{}{}
		clone.adjacency[key.B][key.A] = struct{}{}
	}

	return clone
}

// Stats produces a snapshot of sizes and congestion figures.
//
// Implementation:
//   - Stage 1: vertex count under muVert.
//   - Stage 2: single pass over roads under muEdgeAdj.
//
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	stats.EdgeCount = len(g.edges)
	var e *edge
	for _, e = range g.edges {
		if e.Multiplier > DefaultMultiplier {
			stats.CongestedCount++
		}
		if e.Multiplier > stats.MaxMultiplier {
			stats.MaxMultiplier = e.Multiplier
		}
		stats.TotalWeight += e.Weight
	}

	return stats
}
