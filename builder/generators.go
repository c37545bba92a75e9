// SPDX-License-Identifier: MIT
// Package: roadflow/builder
//
// generators.go: deterministic topology generators.
//
// Contract:
//   • Nodes are emitted via cfg.idFn in ascending index order.
//   • Roads are emitted in a stable, documented order; base costs are drawn from
//     cfg.costFn in that same order, so a fixed seed reproduces the topology.
//   • Generators return only sentinel errors; they never panic at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadflow/topology"
)

const (
	methodPath         = "Path"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathNodes         = 2
	minGridDim           = 1
	minRandomSparseNodes = 1
)

// Path returns the line topology 0–1–…–(n-1).
//
// Errors:
//   - ErrTooFewVertices if n < 2.
//
// Complexity: O(n).
func Path(n int, opts ...Option) (topology.Topology, error) {
	if n < minPathNodes {
		return topology.Topology{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	t := topology.Topology{Nodes: nodeIDs(cfg, n)}
	for i := 1; i < n; i++ {
		t.Roads = append(t.Roads, topology.Road{From: t.Nodes[i-1], To: t.Nodes[i], BaseCost: cfg.costFn(cfg.rng)})
	}

	return t, nil
}

// Grid returns a rows×cols 4-neighbour grid. Nodes are numbered row-major and
// named by cfg.idFn; for each cell the right road is emitted before the bottom one.
//
// Errors:
//   - ErrTooFewVertices if rows or cols < 1.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...Option) (topology.Topology, error) {
	if rows < minGridDim || cols < minGridDim {
		return topology.Topology{}, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)
	t := topology.Topology{Nodes: nodeIDs(cfg, rows*cols)}
	at := func(r, c int) string { return t.Nodes[r*cols+c] }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				t.Roads = append(t.Roads, topology.Road{From: at(r, c), To: at(r, c+1), BaseCost: cfg.costFn(cfg.rng)})
			}
			if r+1 < rows {
				t.Roads = append(t.Roads, topology.Road{From: at(r, c), To: at(r+1, c), BaseCost: cfg.costFn(cfg.rng)})
			}
		}
	}

	return t, nil
}

// RandomSparse samples an Erdős–Rényi-like topology: each unordered pair {i,j},
// i<j, is a road with probability p. Trials run i asc, j asc.
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//   - ErrInvalidProbability if p ∉ [0,1].
//   - ErrNeedRandSource if 0 < p < 1 and no RNG is configured.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64, opts ...Option) (topology.Topology, error) {
	if n < minRandomSparseNodes {
		return topology.Topology{}, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return topology.Topology{}, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return topology.Topology{}, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}
	t := topology.Topology{Nodes: nodeIDs(cfg, n)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p == 0 {
				continue
			}
			if p < 1 && cfg.rng.Float64() >= p {
				continue
			}
			t.Roads = append(t.Roads, topology.Road{From: t.Nodes[i], To: t.Nodes[j], BaseCost: cfg.costFn(cfg.rng)})
		}
	}

	return t, nil
}

// CityMap returns the six-intersection demo network A–F used by the default
// configuration (vehicles from A, C and E heading to F).
//
//	      B ───── E
//	    / | \   / |
//	   A  |   D   |
//	    \ | /   \ |
//	      C ───── F
func CityMap() topology.Topology {
	return topology.Topology{
		Nodes: []string{"A", "B", "C", "D", "E", "F"},
		Roads: []topology.Road{
			{From: "A", To: "B", BaseCost: 4},
			{From: "A", To: "C", BaseCost: 2},
			{From: "B", To: "C", BaseCost: 1},
			{From: "B", To: "D", BaseCost: 5},
			{From: "C", To: "D", BaseCost: 3},
			{From: "B", To: "E", BaseCost: 8},
			{From: "D", To: "E", BaseCost: 2},
			{From: "D", To: "F", BaseCost: 4},
			{From: "E", To: "F", BaseCost: 3},
			{From: "C", To: "F", BaseCost: 9},
		},
	}
}

func nodeIDs(cfg config, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
	}

	return ids
}
