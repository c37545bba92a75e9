// SPDX-License-Identifier: MIT

package strategy

import "github.com/katalvlaran/roadflow/core"

// greedy penalises each vehicle's path before the next vehicle is routed.
type greedy struct{}

func (greedy) Kind() Kind { return Greedy }

func (greedy) Route(g *core.Graph, origins []string, dest string, p Params) ([]Result, error) {
	if err := precheck(g, p); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(origins))
	for _, origin := range origins {
		r, err := solve(g, origin, dest)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
		if !r.Reachable() {
			continue
		}
		for _, key := range PathKeys(r.Path) {
			if err = raise(g, key, p.Step, p); err != nil {
				return nil, err
			}
		}
	}

	return results, nil
}

// coordinated routes every vehicle on the untouched graph, then applies the
// combined usage in one batch.
type coordinated struct{}

func (coordinated) Kind() Kind { return Coordinated }

func (coordinated) Route(g *core.Graph, origins []string, dest string, p Params) ([]Result, error) {
	if err := precheck(g, p); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(origins))
	usage := make(Usage)
	for _, origin := range origins {
		r, err := solve(g, origin, dest)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
		if r.Reachable() {
			usage.Add(r.Path)
		}
	}
	for _, key := range usage.Keys() {
		if err := raise(g, key, p.Step*float64(usage[key]), p); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// optimized re-projects congestion onto the whole graph from the running usage
// tally before every solve. Scenario multipliers are overwritten by the first
// projection.
type optimized struct{}

func (optimized) Kind() Kind { return Optimized }

func (optimized) Route(g *core.Graph, origins []string, dest string, p Params) ([]Result, error) {
	if err := precheck(g, p); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(origins))
	usage := make(Usage)
	project := func(e core.Edge) float64 {
		return p.capped(core.DefaultMultiplier + p.Step*float64(usage[e.Key()]))
	}
	for _, origin := range origins {
		if err := g.UpdateMultipliers(project); err != nil {
			return nil, err
		}
		r, err := solve(g, origin, dest)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
		if r.Reachable() {
			usage.Add(r.Path)
		}
	}

	return results, nil
}
