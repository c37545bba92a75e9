// SPDX-License-Identifier: MIT

package report

import (
	"github.com/katalvlaran/roadflow/core"
	"github.com/katalvlaran/roadflow/strategy"
)

// Run is the outcome of one strategy on its own fresh build.
type Run struct {
	Strategy strategy.Kind     `json:"strategy"`
	Results  []strategy.Result `json:"-"`
	Summary  Summary           `json:"summary"`
	Traffic  Congestion        `json:"congestion"`
}

// NewRun summarises results and the post-routing edges of one strategy.
func NewRun(k strategy.Kind, results []strategy.Result, edges []core.Edge) Run {
	return Run{
		Strategy: k,
		Results:  results,
		Summary:  Summarize(results),
		Traffic:  MeasureCongestion(edges),
	}
}

// Comparison ranks strategies run over the same batch.
type Comparison struct {
	Runs []Run         `json:"runs"`
	Best strategy.Kind `json:"best"`
}

// Compare picks the best run: most vehicles reached first, then lowest total
// cost, then lowest peak multiplier. Remaining ties keep input order.
// Best is meaningless when runs is empty.
func Compare(runs []Run) Comparison {
	c := Comparison{Runs: runs}
	if len(runs) == 0 {
		return c
	}
	best := 0
	for i := 1; i < len(runs); i++ {
		if better(runs[i], runs[best]) {
			best = i
		}
	}
	c.Best = runs[best].Strategy

	return c
}

func better(a, b Run) bool {
	if a.Summary.Reached != b.Summary.Reached {
		return a.Summary.Reached > b.Summary.Reached
	}
	if a.Summary.TotalCost != b.Summary.TotalCost {
		return a.Summary.TotalCost < b.Summary.TotalCost
	}

	return a.Traffic.PeakMultiplier < b.Traffic.PeakMultiplier
}
