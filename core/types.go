// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, RoadKey and Graph declarations, sentinel errors, NewGraph.
// Concurrency:
//   - muVert guards vertices; muEdgeAdj guards edges and adjacency.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent road.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadBaseCost indicates a base cost that is not a finite positive number.
	ErrBadBaseCost = errors.New("core: base cost must be finite and positive")

	// ErrBadMultiplier indicates a congestion multiplier that is not a finite positive number.
	ErrBadMultiplier = errors.New("core: multiplier must be finite and positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel road was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// DefaultMultiplier is the free-flow congestion factor.
const DefaultMultiplier = 1.0

// RoadSeparator joins the two endpoints of a road in its textual key. Node IDs
// must not contain it.
const RoadSeparator = "-"

// RoadKey identifies an undirected road by its two endpoints.
// A is always lexicographically <= B; build keys with NewRoadKey.
type RoadKey struct {
	A string
	B string
}

// NewRoadKey returns the normalized key for the road between u and v.
// Complexity: O(1).
func NewRoadKey(u, v string) RoadKey {
	if v < u {
		u, v = v, u
	}

	return RoadKey{A: u, B: v}
}

// String renders the key as "A-B", the same spelling used by traffic data.
func (k RoadKey) String() string { return k.A + RoadSeparator + k.B }

// IsZero reports whether k is the zero key (no road).
func (k RoadKey) IsZero() bool { return k.A == "" && k.B == "" }

// Less orders keys by A, then B.
func (k RoadKey) Less(o RoadKey) bool { return lessKey(k, o) }

// Vertex represents an intersection.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge is a value snapshot of one undirected road.
//
// From/To keep the orientation the road was added with; equality between roads
// must always go through Key().
type Edge struct {
	// ID is a stable textual identifier ("e1", "e2", …) in insertion order.
	ID string

	// From and To are the endpoint vertex IDs.
	From string
	To   string

	// BaseCost is the static traversal cost.
	BaseCost float64

	// Multiplier is the dynamic congestion factor.
	Multiplier float64

	// Weight is BaseCost * Multiplier.
	Weight float64
}

// Key returns the normalized RoadKey of e.
func (e Edge) Key() RoadKey { return NewRoadKey(e.From, e.To) }

// Other returns the endpoint opposite to id.
// If id is not an endpoint the result is From.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// edge is the mutable catalog record behind an Edge snapshot.
type edge struct {
	Edge
}

// reweight recomputes Weight from BaseCost and Multiplier.
// Must be called under muEdgeAdj write lock.
func (e *edge) reweight() { e.Weight = e.BaseCost * e.Multiplier }

// GraphStats is a read-only snapshot of a graph's size and congestion.
type GraphStats struct {
	VertexCount    int
	EdgeCount      int
	CongestedCount int     // roads with Multiplier > DefaultMultiplier
	MaxMultiplier  float64 // 0 for an empty graph
	TotalWeight    float64
}

// Graph is the road network.
//
// It is undirected, simple and loop-free by construction; there are no options
// to relax these rules.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	nextEdgeID uint64             // monotonically increasing edge sequence
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[RoadKey]*edge  // road key → road

	// adjacency[u][v] exists iff a road u–v exists (mirrored for both endpoints).
	adjacency map[string]map[string]struct{}
}

// NewGraph creates an empty road network.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[RoadKey]*edge),
		adjacency: make(map[string]map[string]struct{}),
	}
}

// validPositive reports whether x is finite and strictly positive.
func validPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
