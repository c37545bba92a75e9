// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/katalvlaran/roadflow/core"
	"github.com/katalvlaran/roadflow/dijkstra"
	"github.com/katalvlaran/roadflow/report"
	"github.com/katalvlaran/roadflow/simulation"
	"github.com/katalvlaran/roadflow/strategy"
)

// unreachableCost is how an infinite cost is rendered.
const unreachableCost = "unreachable"

// Cost renders as a JSON number, or "unreachable" when infinite.
type Cost float64

// MarshalJSON implements json.Marshaler.
func (c Cost) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(c), 0) || math.IsNaN(float64(c)) {
		return json.Marshal(unreachableCost)
	}

	return []byte(strconv.FormatFloat(float64(c), 'f', -1, 64)), nil
}

// RoadView is one road with its congestion state.
type RoadView struct {
	Road       string  `json:"road"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	BaseCost   float64 `json:"base_cost"`
	Multiplier float64 `json:"multiplier"`
	Weight     float64 `json:"weight"`
}

// ResultView is one vehicle's outcome.
type ResultView struct {
	Vehicle     string   `json:"vehicle"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Path        []string `json:"path"`
	Cost        Cost     `json:"cost"`
}

// CycleView is a completed cycle.
type CycleView struct {
	Seq        int               `json:"seq"`
	Strategy   strategy.Kind     `json:"strategy"`
	Accident   *string           `json:"accident"`
	Results    []ResultView      `json:"results"`
	Roads      []RoadView        `json:"roads"`
	Summary    report.Summary    `json:"summary"`
	Congestion report.Congestion `json:"congestion"`
}

// StateView describes the session configuration.
type StateView struct {
	Strategy    strategy.Kind   `json:"strategy"`
	Origins     []string        `json:"origins"`
	Destination string          `json:"destination"`
	Params      strategy.Params `json:"params"`
	Accident    *string         `json:"accident"`
	Nodes       []string        `json:"nodes"`
}

// RouteView is a single shortest-path answer.
type RouteView struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Path []string `json:"path"`
	Hops int      `json:"hops"`
	Cost Cost     `json:"cost"`
}

// DistancesView is the least cost from one node to every node.
type DistancesView struct {
	From  string          `json:"from"`
	Costs map[string]Cost `json:"costs"`
}

func accidentView(k core.RoadKey) *string {
	if k.IsZero() {
		return nil
	}
	s := k.String()

	return &s
}

func roadViews(edges []core.Edge) []RoadView {
	out := make([]RoadView, len(edges))
	for i, e := range edges {
		out[i] = RoadView{
			Road:       e.Key().String(),
			From:       e.From,
			To:         e.To,
			BaseCost:   e.BaseCost,
			Multiplier: e.Multiplier,
			Weight:     e.Weight,
		}
	}

	return out
}

func resultViews(results []strategy.Result) []ResultView {
	out := make([]ResultView, len(results))
	for i, r := range results {
		path := r.Path
		if path == nil {
			path = []string{}
		}
		out[i] = ResultView{
			Vehicle:     r.Vehicle,
			Origin:      r.Origin,
			Destination: r.Destination,
			Path:        path,
			Cost:        Cost(r.Cost),
		}
	}

	return out
}

func cycleView(c *simulation.Cycle) CycleView {
	return CycleView{
		Seq:        c.Seq,
		Strategy:   c.Strategy,
		Accident:   accidentView(c.Accident),
		Results:    resultViews(c.Results),
		Roads:      roadViews(c.Roads),
		Summary:    c.Summary,
		Congestion: c.Traffic,
	}
}

func stateView(s *simulation.Session) StateView {
	acc, _ := s.Accident()

	return StateView{
		Strategy:    s.Strategy(),
		Origins:     s.Origins(),
		Destination: s.Destination(),
		Params:      s.Params(),
		Accident:    accidentView(acc),
		Nodes:       append([]string(nil), s.Topology().Nodes...),
	}
}

func routeView(from, to string, p dijkstra.Path) RouteView {
	path := p.Nodes
	if path == nil {
		path = []string{}
	}

	return RouteView{From: from, To: to, Path: path, Hops: p.Hops(), Cost: Cost(p.Cost)}
}

func distancesView(from string, d map[string]float64) DistancesView {
	costs := make(map[string]Cost, len(d))
	for id, c := range d {
		costs[id] = Cost(c)
	}

	return DistancesView{From: from, Costs: costs}
}
