// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadflow/builder"
)

func TestPath(t *testing.T) {
	tp, err := builder.Path(6)
	require.NoError(t, err)
	require.NoError(t, tp.Validate())
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, tp.Nodes)
	require.Len(t, tp.Roads, 5)
	assert.Equal(t, "E", tp.Roads[4].From)
	assert.Equal(t, "F", tp.Roads[4].To)
	assert.Equal(t, 1.0, tp.Roads[4].BaseCost)

	_, err = builder.Path(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGrid(t *testing.T) {
	tp, err := builder.Grid(2, 3, builder.WithIDScheme(builder.DefaultIDFn), builder.WithCostFn(builder.ConstantCostFn(2)))
	require.NoError(t, err)
	require.NoError(t, tp.Validate())
	assert.Len(t, tp.Nodes, 6)
	// 2 rows × 2 horizontal + 3 vertical
	assert.Len(t, tp.Roads, 7)
	assert.True(t, tp.HasRoad("0", "1"))
	assert.True(t, tp.HasRoad("0", "3"))
	assert.False(t, tp.HasRoad("2", "3"), "no wrap-around between rows")
	for _, r := range tp.Roads {
		assert.Equal(t, 2.0, r.BaseCost)
	}

	_, err = builder.Grid(0, 3)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.RandomSparse(5, 0.5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomSparse(5, 1.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.RandomSparse(0, 0.5, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	full, err := builder.RandomSparse(5, 1)
	require.NoError(t, err)
	assert.Len(t, full.Roads, 10)

	empty, err := builder.RandomSparse(5, 0)
	require.NoError(t, err)
	assert.Empty(t, empty.Roads)

	opts := []builder.Option{builder.WithCostFn(builder.UniformCostFn(1, 10))}
	a, err := builder.RandomSparse(12, 0.3, append(opts, builder.WithSeed(42))...)
	require.NoError(t, err)
	b, err := builder.RandomSparse(12, 0.3, append(opts, builder.WithRand(rand.New(rand.NewSource(42))))...)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same topology")
	require.NoError(t, a.Validate())
	for _, r := range a.Roads {
		assert.GreaterOrEqual(t, r.BaseCost, 1.0)
		assert.Less(t, r.BaseCost, 10.0)
	}
}

func TestExcelColumnIDFn(t *testing.T) {
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
	assert.Panics(t, func() { builder.ConstantCostFn(0) })
	assert.Panics(t, func() { builder.UniformCostFn(5, 1) })
}

func TestCityMapValid(t *testing.T) {
	require.NoError(t, builder.CityMap().Validate())
}
