// SPDX-License-Identifier: MIT

package simulation

import (
	"github.com/katalvlaran/roadflow/core"
	"github.com/katalvlaran/roadflow/report"
	"github.com/katalvlaran/roadflow/strategy"
)

// Cycle is the outcome of one build + routing pass.
type Cycle struct {
	Seq      int
	Strategy strategy.Kind
	Accident core.RoadKey      // zero when no road was closed
	Results  []strategy.Result // one per origin, origin order
	Roads    []core.Edge       // post-routing snapshot, RoadKey order
	Summary  report.Summary
	Traffic  report.Congestion
}

func newCycle(seq int, k strategy.Kind, acc core.RoadKey, results []strategy.Result, roads []core.Edge) *Cycle {
	return &Cycle{
		Seq:      seq,
		Strategy: k,
		Accident: acc,
		Results:  results,
		Roads:    roads,
		Summary:  report.Summarize(results),
		Traffic:  report.MeasureCongestion(roads),
	}
}

// Result returns the result of the vehicle starting at origin.
func (c *Cycle) Result(origin string) (strategy.Result, bool) {
	for _, r := range c.Results {
		if r.Origin == origin {
			return r, true
		}
	}

	return strategy.Result{}, false
}
