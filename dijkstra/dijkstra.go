// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/roadflow/core"
)

// ShortestPath returns the least-cost path from start to end in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be vertices of g (ErrVertexNotFound).
//  3. No edge may carry a negative or NaN weight (ErrNegativeWeight).
//
// The search stops as soon as end is settled.
//
// Complexity: O((V + E) log V).
func ShortestPath(g *core.Graph, start, end string) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return Path{}, fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	if !g.HasVertex(end) {
		return Path{}, fmt.Errorf("%w: end %q", ErrVertexNotFound, end)
	}
	if start == end {
		return Path{Nodes: []string{start}, Cost: 0}, nil
	}
	if err := checkWeights(g); err != nil {
		return Path{}, err
	}

	r := newRunner(g, start)
	if err := r.process(end); err != nil {
		return Path{}, err
	}
	if !r.visited[end] {
		return unreachable(), nil
	}

	return Path{Nodes: r.walkBack(end), Cost: r.dist[end]}, nil
}

// Distances returns the least cost from source to every vertex of g.
// Unreachable vertices map to +Inf; source maps to 0.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight.
//
// Complexity: O((V + E) log V).
func Distances(g *core.Graph, source string) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if err := checkWeights(g); err != nil {
		return nil, err
	}

	r := newRunner(g, source)
	if err := r.process(""); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// checkWeights fails fast on any weight Dijkstra cannot handle.
func checkWeights(g *core.Graph) error {
	for _, e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return fmt.Errorf("%w: edge %s weight=%v", ErrNegativeWeight, e.Key(), e.Weight)
		}
	}

	return nil
}

// runner holds the mutable state of a single solve.
type runner struct {
	g       *core.Graph
	source  string
	dist    map[string]float64 // best known distance from source
	prev    map[string]string  // predecessor on the best known path
	visited map[string]bool    // distance finalized
	pq      nodePQ
}

// newRunner sets dist[v] = +Inf for every vertex, dist[source] = 0 and seeds the heap.
func newRunner(g *core.Graph, source string) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		source:  source,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

// process pops vertices in (dist, id) order until the heap drains or target
// (if non-empty) is settled.
func (r *runner) process(target string) error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true
		if item.id == target {
			return nil
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distances of u's neighbours through u.
// Equal-cost alternatives never replace an existing predecessor.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	var v string
	var nd float64
	for _, e := range neighbors {
		v = e.Other(u)
		if r.visited[v] {
			continue
		}
		nd = r.dist[u] + e.Weight
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// walkBack rebuilds the source→end node sequence from prev.
func (r *runner) walkBack(end string) []string {
	var rev []string
	for v := end; v != r.source; v = r.prev[v] {
		rev = append(rev, v)
	}
	rev = append(rev, r.source)

	out := make([]string, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}

// nodeItem is one heap entry.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
