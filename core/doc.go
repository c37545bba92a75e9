// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory road network used by every
// other roadflow package.
//
// A Graph G = (V,E) is always undirected, simple (no parallel roads) and loop-free.
// Each road (Edge) carries three cost fields:
//
//	BaseCost   – static traversal cost from the topology, > 0.
//	Multiplier – dynamic congestion factor, > 0 (1.0 means free-flowing).
//	Weight     – BaseCost * Multiplier, recomputed on every multiplier write.
//
// Weight is never stored independently of Multiplier: every mutation path
// (AddEdge, SetMultiplier, UpdateMultipliers) goes through the same reweight step
// under the edge lock, so a reader can never observe a stale Weight.
//
// Roads are addressed by RoadKey, a normalized unordered pair of vertex IDs.
// NewRoadKey("B","A") == NewRoadKey("A","B"), which removes the need to try
// both "u-v" and "v-u" spellings anywhere in the codebase.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error              // O(1), idempotent
//	HasVertex(id string) bool               // O(1)
//	Vertices() []string                     // O(V log V), sorted
//
//	// Edge lifecycle
//	AddEdge(from, to string, baseCost, multiplier float64) (edgeID string, err error)
//	HasEdge(from, to string) bool           // O(1), both orientations
//	Road(key RoadKey) (Edge, error)         // O(1), value snapshot
//	Edges() []Edge                          // O(E log E), sorted by RoadKey
//
//	// Congestion
//	SetMultiplier(key RoadKey, m float64) (Edge, error)   // O(1)
//	UpdateMultipliers(fn func(Edge) float64) error        // O(E), all-or-nothing
//
//	// Query
//	Neighbors(id string) ([]Edge, error)    // O(d log d), sorted by neighbor ID
//	Stats() GraphStats                      // O(V+E)
//	Clone() *Graph                          // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing road
//	ErrBadBaseCost         – base cost not finite and > 0
//	ErrBadMultiplier       – multiplier not finite and > 0
//	ErrLoopNotAllowed      – from == to
//	ErrMultiEdgeNotAllowed – a road between the same endpoints already exists
package core
