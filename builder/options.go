// SPDX-License-Identifier: MIT
// Package: roadflow/builder
//
// options.go: functional options and resolved configuration for generators.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a topology generator.
type Option func(*config)

// config aggregates all generator knobs. Passed by value to generators.
type config struct {
	idFn   IDFn       // index → node ID
	rng    *rand.Rand // nil means "no randomness"
	costFn CostFn     // base cost per generated road
}

// newConfig resolves deterministic defaults, then applies opts in order.
// Defaults: ExcelColumnIDFn ("A","B",…,"AA"), no RNG, constant cost 1.
func newConfig(opts ...Option) config {
	cfg := config{
		idFn:   ExcelColumnIDFn,
		rng:    nil,
		costFn: ConstantCostFn(defaultBaseCost),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the node ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic generators. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostFn overrides the per-road base cost generator. Panics on nil.
func WithCostFn(fn CostFn) Option {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *config) { c.costFn = fn }
}
