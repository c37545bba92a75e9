// SPDX-License-Identifier: MIT

// Package accident picks the road to close when an accident is simulated.
//
// The Injector only chooses; the caller owns the active accident, passes it to
// builder.Build and reruns routing. Selection is uniform over g.Edges(), which is
// sorted by RoadKey, so a fixed seed always closes the same road.
//
// An Injector is not safe for concurrent use: it wraps a *rand.Rand.
package accident

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/roadflow/core"
)

// Option customizes an Injector.
type Option func(*Injector)

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("accident: WithRand(nil)")
	}
	return func(in *Injector) { in.rng = r }
}

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option {
	return func(in *Injector) { in.rng = rand.New(rand.NewSource(seed)) }
}

// Injector selects accident roads.
type Injector struct {
	rng *rand.Rand
}

// New returns an Injector seeded from the clock unless an option overrides it.
func New(opts ...Option) *Injector {
	in := &Injector{}
	for _, opt := range opts {
		opt(in)
	}
	if in.rng == nil {
		in.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return in
}

// Inject returns a uniformly random road of g. ok is false, and nothing is
// consumed from the random source, when g is nil or has no roads.
//
// Complexity: O(E log E) for the sorted edge snapshot.
func (in *Injector) Inject(g *core.Graph) (road core.RoadKey, ok bool) {
	if g == nil {
		return core.RoadKey{}, false
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return core.RoadKey{}, false
	}

	return edges[in.rng.Intn(len(edges))].Key(), true
}
