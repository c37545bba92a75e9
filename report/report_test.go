// SPDX-License-Identifier: MIT
package report_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/roadflow/core"
	"github.com/katalvlaran/roadflow/report"
	"github.com/katalvlaran/roadflow/strategy"
)

func result(cost float64, path ...string) strategy.Result {
	return strategy.Result{Path: path, Cost: cost}
}

func TestSummarize(t *testing.T) {
	s := report.Summarize([]strategy.Result{
		result(9, "A", "C", "D", "F"),
		result(7, "C", "D", "F"),
		result(math.Inf(1)),
		result(2, "E", "F"),
	})
	assert.Equal(t, 4, s.Vehicles)
	assert.Equal(t, 3, s.Reached)
	assert.Equal(t, 1, s.Unreachable)
	assert.Equal(t, 18.0, s.TotalCost)
	assert.Equal(t, 6.0, s.MeanCost)
	assert.InDelta(t, math.Sqrt(26.0/3), s.StdDevCost, 1e-12)
	assert.Equal(t, 2.0, s.MinCost)
	assert.Equal(t, 9.0, s.MaxCost)
}

func TestSummarize_NothingReached(t *testing.T) {
	s := report.Summarize([]strategy.Result{result(math.Inf(1))})
	assert.Equal(t, report.Summary{Vehicles: 1, Unreachable: 1}, s)
	assert.Equal(t, report.Summary{}, report.Summarize(nil))
}

func TestMeasureCongestion(t *testing.T) {
	c := report.MeasureCongestion([]core.Edge{
		{BaseCost: 1, Multiplier: 1},
		{BaseCost: 1, Multiplier: 1.6},
		{BaseCost: 1, Multiplier: 1.4},
	})
	assert.Equal(t, 3, c.Roads)
	assert.Equal(t, 2, c.Congested)
	assert.InDelta(t, 4.0/3, c.MeanMultiplier, 1e-12)
	assert.Equal(t, 1.6, c.PeakMultiplier)

	assert.Equal(t, report.Congestion{}, report.MeasureCongestion(nil))
}

func TestCompare(t *testing.T) {
	flat := []core.Edge{{Multiplier: 1}}
	hot := []core.Edge{{Multiplier: 2}}
	greedy := report.NewRun(strategy.Greedy, []strategy.Result{result(10, "A", "F")}, hot)
	coord := report.NewRun(strategy.Coordinated, []strategy.Result{result(10, "A", "F")}, flat)
	opt := report.NewRun(strategy.Optimized, []strategy.Result{result(12, "A", "F")}, flat)

	c := report.Compare([]report.Run{greedy, coord, opt})
	assert.Equal(t, strategy.Coordinated, c.Best, "equal totals fall back to peak multiplier")
	assert.Len(t, c.Runs, 3)

	lost := report.NewRun(strategy.Greedy, []strategy.Result{result(1, "A", "F"), result(math.Inf(1))}, flat)
	full := report.NewRun(strategy.Optimized, []strategy.Result{result(5, "A", "F"), result(5, "B", "F")}, flat)
	assert.Equal(t, strategy.Optimized, report.Compare([]report.Run{lost, full}).Best)

	assert.Empty(t, report.Compare(nil).Runs)
}
