// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/roadflow/builder"
	"github.com/katalvlaran/roadflow/core"
	"github.com/katalvlaran/roadflow/dijkstra"
	"github.com/katalvlaran/roadflow/topology"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Distances(nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_UnknownEndpoints(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1, 1)
	require.NoError(t, err)

	_, err = dijkstra.ShortestPath(g, "X", "B")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.ShortestPath(g, "A", "X")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.Distances(g, "X")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// ------------------------------------------------------------------------
// 2. Core results
// ------------------------------------------------------------------------

func TestShortestPath_Line(t *testing.T) {
	tp, err := builder.Path(6)
	require.NoError(t, err)
	g, err := builder.Build(tp, nil, core.RoadKey{})
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(g, "A", "F")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, p.Nodes)
	assert.Equal(t, 5.0, p.Cost)
	assert.True(t, p.Reachable())
	assert.Equal(t, 5, p.Hops())
}

func TestShortestPath_IsolatedTarget(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("Z"))

	p, err := dijkstra.ShortestPath(g, "A", "Z")
	require.NoError(t, err)
	assert.Empty(t, p.Nodes)
	assert.True(t, math.IsInf(p.Cost, 1))
	assert.False(t, p.Reachable())
	assert.Equal(t, 0, p.Hops())
}

func TestShortestPath_StartEqualsEnd(t *testing.T) {
	g, err := builder.Build(builder.CityMap(), nil, core.RoadKey{})
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p.Nodes)
	assert.Equal(t, 0.0, p.Cost)
	assert.True(t, p.Reachable())
}

func TestShortestPath_NoEdges(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		p, err := dijkstra.ShortestPath(g, pair[0], pair[1])
		require.NoError(t, err)
		assert.False(t, p.Reachable())
	}
	p, err := dijkstra.ShortestPath(g, "B", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, p.Nodes)
}

func TestShortestPath_CityMap(t *testing.T) {
	g, err := builder.Build(builder.CityMap(), nil, core.RoadKey{})
	require.NoError(t, err)

	cases := []struct {
		from string
		want []string
		cost float64
	}{
		{"A", []string{"A", "C", "D", "F"}, 9},
		{"C", []string{"C", "D", "F"}, 7},
		{"E", []string{"E", "F"}, 3},
	}
	for _, tc := range cases {
		p, err := dijkstra.ShortestPath(g, tc.from, "F")
		require.NoError(t, err, tc.from)
		assert.Equal(t, tc.want, p.Nodes, tc.from)
		assert.Equal(t, tc.cost, p.Cost, tc.from)
	}
}

func TestShortestPath_ReadsCurrentWeights(t *testing.T) {
	g, err := builder.Build(builder.CityMap(), nil, core.RoadKey{})
	require.NoError(t, err)
	_, err = g.SetMultiplier(core.NewRoadKey("D", "F"), 3) // D-F: 4 → 12
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(g, "C", "F")
	require.NoError(t, err)
	// C-D-E-F = 3+2+3 = 8 now beats C-F = 9 and C-D-F = 15.
	assert.Equal(t, []string{"C", "D", "E", "F"}, p.Nodes)
	assert.Equal(t, 8.0, p.Cost)

	df, err := g.Road(core.NewRoadKey("D", "F"))
	require.NoError(t, err)
	assert.Equal(t, 12.0, df.Weight, "solver must not mutate the graph")
}

func TestShortestPath_TieBreakByID(t *testing.T) {
	// Two equal-cost routes A-B-D and A-C-D; B settles before C.
	g := core.NewGraph()
	for _, r := range [][2]string{{"A", "C"}, {"C", "D"}, {"A", "B"}, {"B", "D"}} {
		_, err := g.AddEdge(r[0], r[1], 1, 1)
		require.NoError(t, err)
	}
	for i := 0; i < 10; i++ {
		p, err := dijkstra.ShortestPath(g, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "D"}, p.Nodes)
	}
}

func TestDistances(t *testing.T) {
	g, err := builder.Build(builder.CityMap(), nil, core.NewRoadKey("E", "F"))
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("Z"))

	d, err := dijkstra.Distances(g, "F")
	require.NoError(t, err)
	assert.Equal(t, 0.0, d["F"])
	assert.Equal(t, 4.0, d["D"])
	assert.Equal(t, 6.0, d["E"]) // via D once E-F is closed
	assert.Equal(t, 7.0, d["C"])
	assert.True(t, math.IsInf(d["Z"], 1))
}

// ------------------------------------------------------------------------
// 3. Oracle: gonum's Dijkstra on random sparse maps
// ------------------------------------------------------------------------

func TestShortestPath_MatchesGonum(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		tp, err := builder.RandomSparse(15, 0.2,
			builder.WithSeed(seed), builder.WithCostFn(builder.UniformCostFn(1, 20)))
		require.NoError(t, err)
		g, err := builder.Build(tp, nil, core.RoadKey{})
		require.NoError(t, err)

		oracle, index := toGonum(tp)
		src := tp.Nodes[0]
		shortest := path.DijkstraFrom(simple.Node(index[src]), oracle)
		for _, dst := range tp.Nodes {
			p, err := dijkstra.ShortestPath(g, src, dst)
			require.NoError(t, err)
			want := shortest.WeightTo(index[dst])
			if math.IsInf(want, 1) {
				assert.False(t, p.Reachable(), "seed=%d dst=%s", seed, dst)
				continue
			}
			require.True(t, p.Reachable(), "seed=%d dst=%s", seed, dst)
			assert.InDelta(t, want, p.Cost, 1e-9, "seed=%d dst=%s", seed, dst)
			assert.InDelta(t, p.Cost, pathWeight(t, g, p.Nodes), 1e-9)
		}
	}
}

func toGonum(tp topology.Topology) (*simple.WeightedUndirectedGraph, map[string]int64) {
	index := make(map[string]int64, len(tp.Nodes))
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i, id := range tp.Nodes {
		index[id] = int64(i)
		g.AddNode(simple.Node(i))
	}
	for _, r := range tp.Roads {
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(index[r.From]),
			T: simple.Node(index[r.To]),
			W: r.BaseCost,
		})
	}

	return g, index
}

func pathWeight(t *testing.T, g *core.Graph, nodes []string) float64 {
	t.Helper()
	var sum float64
	for i := 1; i < len(nodes); i++ {
		e, err := g.Road(core.NewRoadKey(nodes[i-1], nodes[i]))
		require.NoError(t, err)
		sum += e.Weight
	}

	return sum
}
