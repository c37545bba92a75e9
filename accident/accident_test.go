// SPDX-License-Identifier: MIT
package accident_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadflow/accident"
	"github.com/katalvlaran/roadflow/builder"
	"github.com/katalvlaran/roadflow/core"
)

func TestInject_SeededIsReproducible(t *testing.T) {
	g, err := builder.Build(builder.CityMap(), nil, core.RoadKey{})
	require.NoError(t, err)
	edges := g.Edges()

	ref := rand.New(rand.NewSource(7))
	in := accident.New(accident.WithSeed(7))
	for i := 0; i < 20; i++ {
		road, ok := in.Inject(g)
		require.True(t, ok)
		assert.Equal(t, edges[ref.Intn(len(edges))].Key(), road)
		assert.True(t, g.HasEdge(road.A, road.B))
	}
}

func TestInject_WithRand(t *testing.T) {
	g, err := builder.Build(builder.CityMap(), nil, core.RoadKey{})
	require.NoError(t, err)

	a := accident.New(accident.WithRand(rand.New(rand.NewSource(99))))
	b := accident.New(accident.WithSeed(99))
	for i := 0; i < 10; i++ {
		ra, _ := a.Inject(g)
		rb, _ := b.Inject(g)
		assert.Equal(t, ra, rb)
	}
	assert.Panics(t, func() { accident.WithRand(nil) })
}

func TestInject_CoversEveryRoad(t *testing.T) {
	g, err := builder.Build(builder.CityMap(), nil, core.RoadKey{})
	require.NoError(t, err)

	in := accident.New(accident.WithSeed(1))
	seen := make(map[core.RoadKey]bool)
	for i := 0; i < 1000; i++ {
		road, ok := in.Inject(g)
		require.True(t, ok)
		seen[road] = true
	}
	assert.Len(t, seen, g.EdgeCount())
}

func TestInject_NoRoadsIsNoop(t *testing.T) {
	in := accident.New()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	road, ok := in.Inject(g)
	assert.False(t, ok)
	assert.True(t, road.IsZero())

	road, ok = in.Inject(nil)
	assert.False(t, ok)
	assert.True(t, road.IsZero())
}
