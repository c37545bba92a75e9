// SPDX-License-Identifier: MIT

package strategy

import (
	"fmt"

	"github.com/katalvlaran/roadflow/core"
	"github.com/katalvlaran/roadflow/dijkstra"
)

// Strategy routes origins (in order) to dest on g, mutating g's multipliers.
//
// Errors:
//   - ErrBadStep, ErrBadMaxMultiplier from p.Validate.
//   - dijkstra.ErrNilGraph, dijkstra.ErrVertexNotFound for bad inputs.
//   - core.ErrEdgeNotFound if g changes under the strategy.
type Strategy interface {
	Kind() Kind
	Route(g *core.Graph, origins []string, dest string, p Params) ([]Result, error)
}

// New returns the Strategy for k.
func New(k Kind) (Strategy, error) {
	switch k {
	case Greedy:
		return greedy{}, nil
	case Coordinated:
		return coordinated{}, nil
	case Optimized:
		return optimized{}, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(k))
}

// solve runs one vehicle and converts the solver output into a Result.
func solve(g *core.Graph, origin, dest string) (Result, error) {
	p, err := dijkstra.ShortestPath(g, origin, dest)
	if err != nil {
		return Result{}, fmt.Errorf("strategy: route %s: %w", VehicleID(origin, dest), err)
	}

	return Result{
		Vehicle:     VehicleID(origin, dest),
		Origin:      origin,
		Destination: dest,
		Path:        p.Nodes,
		Cost:        p.Cost,
	}, nil
}

// raise adds delta to the multiplier of key, capped by p.
func raise(g *core.Graph, key core.RoadKey, delta float64, p Params) error {
	e, err := g.Road(key)
	if err != nil {
		return err
	}
	_, err = g.SetMultiplier(key, p.capped(e.Multiplier+delta))

	return err
}

func precheck(g *core.Graph, p Params) error {
	if g == nil {
		return dijkstra.ErrNilGraph
	}

	return p.Validate()
}
