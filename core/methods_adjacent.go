// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood API (Neighbors) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by neighbor vertex ID asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock.
// AI-HINT (file):
//   - Shortest-path tie-breaking relies on Neighbors() being sorted by neighbor ID.

package core

import "sort"

// Neighbors returns snapshots of all roads incident to id, sorted by the ID of
// the opposite endpoint.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), d = degree(id).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Same lock order as mutators (muVert -> muEdgeAdj).
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := g.adjacency[id]
	out := make([]Edge, 0, len(bucket))
	var nb string
	for nb = range bucket {
		e, ok := g.edges[NewRoadKey(id, nb)]
		if !ok {
			continue // adjacency and catalog are kept in sync; guard anyway
		}
		out = append(out, e.Edge)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Other(id) < out[j].Other(id) })

	return out, nil
}

// ensureAdjacency allocates the adjacency bucket for id if missing.
// Must be called under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
}
