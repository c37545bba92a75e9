// SPDX-License-Identifier: MIT

// Package report condenses routing results into cost statistics and ranks
// strategies against each other.
//
// Unreachable vehicles are counted, never averaged: every statistic is computed
// over reachable costs only. A batch with no reachable vehicle has all
// statistics at zero.
package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/roadflow/core"
	"github.com/katalvlaran/roadflow/strategy"
)

// Summary describes one routing batch.
type Summary struct {
	Vehicles    int     `json:"vehicles"`
	Reached     int     `json:"reached"`
	Unreachable int     `json:"unreachable"`
	TotalCost   float64 `json:"total_cost"`
	MeanCost    float64 `json:"mean_cost"`
	StdDevCost  float64 `json:"stddev_cost"`
	MinCost     float64 `json:"min_cost"`
	MaxCost     float64 `json:"max_cost"`
}

// Summarize computes Summary over results.
// StdDevCost is the population standard deviation.
func Summarize(results []strategy.Result) Summary {
	s := Summary{Vehicles: len(results)}
	costs := make([]float64, 0, len(results))
	for _, r := range results {
		if !r.Reachable() {
			s.Unreachable++
			continue
		}
		costs = append(costs, r.Cost)
	}
	s.Reached = len(costs)
	if s.Reached == 0 {
		return s
	}

	s.TotalCost = floats.Sum(costs)
	s.MeanCost, s.StdDevCost = stat.PopMeanStdDev(costs, nil)
	s.MinCost = floats.Min(costs)
	s.MaxCost = floats.Max(costs)

	return s
}

// Congestion describes the multiplier spread of a graph after routing.
type Congestion struct {
	Roads          int     `json:"roads"`
	Congested      int     `json:"congested"` // multiplier > 1
	MeanMultiplier float64 `json:"mean_multiplier"`
	PeakMultiplier float64 `json:"peak_multiplier"`
}

// MeasureCongestion summarises the multipliers of edges.
func MeasureCongestion(edges []core.Edge) Congestion {
	c := Congestion{Roads: len(edges)}
	if len(edges) == 0 {
		return c
	}
	mult := make([]float64, len(edges))
	for i, e := range edges {
		mult[i] = e.Multiplier
		if e.Multiplier > core.DefaultMultiplier {
			c.Congested++
		}
	}
	c.MeanMultiplier = stat.Mean(mult, nil)
	c.PeakMultiplier = floats.Max(mult)

	return c
}
