// SPDX-License-Identifier: MIT

package simulation

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/roadflow/accident"
	"github.com/katalvlaran/roadflow/strategy"
)

// Defaults of the demo scenario.
var (
	DefaultOrigins     = []string{"A", "C", "E"}
	DefaultDestination = "F"
)

// DefaultRouteCacheSize bounds the number of cached single-route answers.
const DefaultRouteCacheSize = 256

// Option customizes a Session. Constructors panic on meaningless values.
type Option func(*settings)

type settings struct {
	logger    *zap.Logger
	injector  []accident.Option
	kind      strategy.Kind
	params    strategy.Params
	origins   []string
	dest      string
	cacheSize int
}

func newSettings(opts ...Option) settings {
	st := settings{
		logger:    zap.NewNop(),
		kind:      strategy.Greedy,
		params:    strategy.DefaultParams(),
		origins:   append([]string(nil), DefaultOrigins...),
		dest:      DefaultDestination,
		cacheSize: DefaultRouteCacheSize,
	}
	for _, opt := range opts {
		opt(&st)
	}

	return st
}

// WithLogger sets the session logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("simulation: WithLogger(nil)")
	}
	return func(st *settings) { st.logger = l }
}

// WithSeed makes accident selection reproducible.
func WithSeed(seed int64) Option {
	return func(st *settings) { st.injector = append(st.injector, accident.WithSeed(seed)) }
}

// WithRand uses r for accident selection. Panics on nil.
func WithRand(r *rand.Rand) Option {
	opt := accident.WithRand(r)
	return func(st *settings) { st.injector = append(st.injector, opt) }
}

// WithStrategy selects the initial strategy.
func WithStrategy(k strategy.Kind) Option {
	return func(st *settings) { st.kind = k }
}

// WithParams sets the congestion parameters.
func WithParams(p strategy.Params) Option {
	return func(st *settings) { st.params = p }
}

// WithOrigins sets the ordered vehicle batch.
func WithOrigins(origins ...string) Option {
	return func(st *settings) { st.origins = append([]string(nil), origins...) }
}

// WithDestination sets the shared destination.
func WithDestination(dest string) Option {
	return func(st *settings) { st.dest = dest }
}

// WithRouteCacheSize bounds the Route cache. Panics if n <= 0.
func WithRouteCacheSize(n int) Option {
	if n <= 0 {
		panic("simulation: WithRouteCacheSize must be > 0")
	}
	return func(st *settings) { st.cacheSize = n }
}
