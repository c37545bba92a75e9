// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Road lifecycle & queries: AddEdge/HasEdge/Road/Edges/EdgeCount,
//       plus multiplier mutation (SetMultiplier, UpdateMultipliers).
// Determinism:
//   - Edges() returns roads sorted by RoadKey (A, then B).
//   - Edge IDs are "e" + insertion sequence.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock; every read returns a value snapshot.
// AI-HINT (file):
//   - Weight is derived; there is no setter for it. Change Multiplier instead.
//   - UpdateMultipliers validates every new value before writing any of them.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected road from–to.
//
// Steps:
//  1. Validate IDs, loop, base cost and multiplier.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a parallel road.
//  4. Store the road, derive Weight, mirror adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadBaseCost, ErrBadMultiplier,
//     ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, baseCost, multiplier float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if !validPositive(baseCost) {
		return "", fmt.Errorf("%w: %s-%s base_cost=%v", ErrBadBaseCost, from, to, baseCost)
	}
	if !validPositive(multiplier) {
		return "", fmt.Errorf("%w: %s-%s multiplier=%v", ErrBadMultiplier, from, to, multiplier)
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	key := NewRoadKey(from, to)
	if _, exists := g.edges[key]; exists {
		return "", fmt.Errorf("%w: %s", ErrMultiEdgeNotAllowed, key)
	}

	g.nextEdgeID++
	e := &edge{
		Edge: Edge{
			ID:         formatEdgeID(g.nextEdgeID),
			From:       from,
			To:         to,
			BaseCost:   baseCost,
			Multiplier: multiplier,
		},
	}
	e.reweight()

	// 4) Store and mirror adjacency
	g.edges[key] = e
	ensureAdjacency(g, from)
	ensureAdjacency(g, to)
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}

	return e.ID, nil
}

// HasEdge reports whether a road between from and to exists, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[NewRoadKey(from, to)]

	return ok
}

// Road returns a snapshot of the road identified by key.
//
// Errors:
//   - ErrEdgeNotFound if the road does not exist.
//
// Complexity: O(1).
func (g *Graph) Road(key RoadKey) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[key]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s", ErrEdgeNotFound, key)
	}

	return e.Edge, nil
}

// Edges returns snapshots of all roads sorted by RoadKey.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	var e *edge
	for _, e = range g.edges {
		out = append(out, e.Edge)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of roads.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// SetMultiplier replaces the congestion multiplier of one road and recomputes its
// weight in the same critical section. It returns the updated snapshot.
//
// Errors:
//   - ErrBadMultiplier if m is not finite and > 0.
//   - ErrEdgeNotFound if the road does not exist.
//
// Complexity: O(1).
func (g *Graph) SetMultiplier(key RoadKey, m float64) (Edge, error) {
	if !validPositive(m) {
		return Edge{}, fmt.Errorf("%w: %s multiplier=%v", ErrBadMultiplier, key, m)
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[key]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s", ErrEdgeNotFound, key)
	}
	e.Multiplier = m
	e.reweight()

	return e.Edge, nil
}

// UpdateMultipliers sets every road's multiplier to fn(snapshot) in one critical
// section. fn is called in RoadKey order. If any returned value is invalid no road
// is modified. fn must not call back into g (the write lock is held).
//
// Errors:
//   - ErrBadMultiplier wrapping the first offending road.
//
// Complexity: O(E log E).
func (g *Graph) UpdateMultipliers(fn func(Edge) float64) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	records := make([]*edge, 0, len(g.edges))
	var e *edge
	for _, e = range g.edges {
		records = append(records, e)
	}
	sort.Slice(records, func(i, j int) bool { return lessKey(records[i].Key(), records[j].Key()) })

	next := make([]float64, len(records))
	var i int
	for i, e = range records {
		m := fn(e.Edge)
		if !validPositive(m) {
			return fmt.Errorf("%w: %s multiplier=%v", ErrBadMultiplier, e.Key(), m)
		}
		next[i] = m
	}
	for i, e = range records {
		e.Multiplier = next[i]
		e.reweight()
	}

	return nil
}

// formatEdgeID renders a sequence number as "e<seq>" without fmt allocations.
func formatEdgeID(seq uint64) string {
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}

// sortEdges orders snapshots by RoadKey.
func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool { return lessKey(es[i].Key(), es[j].Key()) })
}

func lessKey(x, y RoadKey) bool {
	if x.A != y.A {
		return x.A < y.A
	}

	return x.B < y.B
}
