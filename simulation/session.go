// SPDX-License-Identifier: MIT

// Package simulation owns one routing scenario: the topology, the traffic
// multipliers, the vehicle batch, the active strategy and the active accident.
//
// Every Run builds a fresh graph (so congestion never carries over between
// cycles), routes the batch with the active strategy and keeps the result as the
// last Cycle. InjectAccident closes a random road of the last cycle's graph and
// reruns at once.
//
// A Session is not safe for concurrent use; callers serialise access.
package simulation

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/roadflow/accident"
	"github.com/katalvlaran/roadflow/builder"
	"github.com/katalvlaran/roadflow/core"
	"github.com/katalvlaran/roadflow/dijkstra"
	"github.com/katalvlaran/roadflow/report"
	"github.com/katalvlaran/roadflow/strategy"
	"github.com/katalvlaran/roadflow/topology"
)

// Sentinel errors.
var (
	// ErrNoOrigins indicates an empty vehicle batch.
	ErrNoOrigins = errors.New("simulation: no origins")

	// ErrUnknownEndpoint indicates an origin, destination or route endpoint that
	// is not a node of the topology.
	ErrUnknownEndpoint = errors.New("simulation: endpoint not in topology")

	// ErrNoCycle indicates that no cycle has run yet.
	ErrNoCycle = errors.New("simulation: no cycle has run")
)

type routeKey struct{ from, to string }

// Session is a single-threaded simulation scenario.
type Session struct {
	topo     topology.Topology
	traffic  topology.Traffic
	params   strategy.Params
	kind     strategy.Kind
	origins  []string
	dest     string
	accident core.RoadKey

	injector *accident.Injector
	logger   *zap.Logger

	seq       int
	last      *Cycle
	lastGraph *core.Graph

	baseline *core.Graph
	routes   *lru.Cache[routeKey, dijkstra.Path]
}

// New validates the scenario and returns a Session with no cycle run yet.
//
// Errors:
//   - topology validation errors.
//   - strategy.ErrBadStep, ErrBadMaxMultiplier, ErrUnknownStrategy.
//   - ErrNoOrigins, ErrUnknownEndpoint.
func New(topo topology.Topology, traffic topology.Traffic, opts ...Option) (*Session, error) {
	if err := topo.Validate(); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	st := newSettings(opts...)
	if err := st.params.Validate(); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	if _, err := strategy.New(st.kind); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	if len(st.origins) == 0 {
		return nil, ErrNoOrigins
	}
	for _, id := range append([]string{st.dest}, st.origins...) {
		if !topo.HasNode(id) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, id)
		}
	}
	routes, err := lru.New[routeKey, dijkstra.Path](st.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("simulation: route cache: %w", err)
	}

	s := &Session{
		topo:     topo,
		params:   st.params,
		kind:     st.kind,
		origins:  st.origins,
		dest:     st.dest,
		injector: accident.New(st.injector...),
		logger:   st.logger,
		routes:   routes,
	}
	s.setTraffic(traffic)

	return s, nil
}

// Topology returns the scenario topology.
func (s *Session) Topology() topology.Topology { return s.topo }

// Strategy returns the active strategy.
func (s *Session) Strategy() strategy.Kind { return s.kind }

// Params returns the congestion parameters.
func (s *Session) Params() strategy.Params { return s.params }

// Origins returns a copy of the vehicle batch.
func (s *Session) Origins() []string { return append([]string(nil), s.origins...) }

// Destination returns the shared destination.
func (s *Session) Destination() string { return s.dest }

// Accident returns the active accident road; ok is false when none is active.
func (s *Session) Accident() (road core.RoadKey, ok bool) { return s.accident, !s.accident.IsZero() }

// Last returns the most recent cycle.
func (s *Session) Last() (*Cycle, error) {
	if s.last == nil {
		return nil, ErrNoCycle
	}

	return s.last, nil
}

// SetStrategy switches the active strategy for the next Run.
func (s *Session) SetStrategy(k strategy.Kind) error {
	if _, err := strategy.New(k); err != nil {
		return err
	}
	if k != s.kind {
		s.logger.Info("strategy changed", zap.Stringer("from", s.kind), zap.Stringer("to", k))
	}
	s.kind = k

	return nil
}

// NextStrategy advances Greedy → Coordinated → Optimized → Greedy.
func (s *Session) NextStrategy() strategy.Kind {
	_ = s.SetStrategy(s.kind.Next())

	return s.kind
}

// SetTraffic replaces the scenario multipliers for subsequent builds.
// Multipliers above Params().MaxMultiplier are lowered to it.
func (s *Session) SetTraffic(t topology.Traffic) {
	s.setTraffic(t)
	s.invalidate()
}

func (s *Session) setTraffic(t topology.Traffic) {
	capped, lowered := t.Capped(s.params.MaxMultiplier)
	if len(lowered) > 0 {
		s.logger.Warn("traffic multipliers capped",
			zap.Stringers("roads", lowered),
			zap.Float64("max_multiplier", s.params.MaxMultiplier),
		)
	}
	s.traffic = capped
}

// Run builds a fresh graph and routes the batch with the active strategy.
func (s *Session) Run() (*Cycle, error) {
	g, err := builder.Build(s.topo, s.traffic, s.accident)
	if err != nil {
		return nil, err
	}
	st, err := strategy.New(s.kind)
	if err != nil {
		return nil, err
	}
	results, err := st.Route(g, s.origins, s.dest, s.params)
	if err != nil {
		return nil, err
	}

	s.seq++
	c := newCycle(s.seq, s.kind, s.accident, results, g.Edges())
	s.last, s.lastGraph = c, g

	gs := g.Stats()
	s.logger.Info("cycle complete",
		zap.Int("seq", c.Seq),
		zap.Stringer("strategy", c.Strategy),
		zap.Stringer("accident", c.Accident),
		zap.Float64("total_cost", c.Summary.TotalCost),
		zap.Int("unreachable", c.Summary.Unreachable),
		zap.Int("roads", gs.EdgeCount),
		zap.Int("congested_roads", gs.CongestedCount),
		zap.Float64("peak_multiplier", gs.MaxMultiplier),
	)

	return c, nil
}

// InjectAccident closes a uniformly random road of the last cycle's graph
// (a fresh build if no cycle ran since New or ClearAccident), replacing any
// active accident, then reruns.
// When the graph has no roads nothing changes and (zero, nil, nil) is returned.
func (s *Session) InjectAccident() (core.RoadKey, *Cycle, error) {
	g := s.lastGraph
	if g == nil {
		var err error
		if g, err = builder.Build(s.topo, s.traffic, s.accident); err != nil {
			return core.RoadKey{}, nil, err
		}
	}
	road, ok := s.injector.Inject(g)
	if !ok {
		s.logger.Info("accident skipped: no roads")
		return core.RoadKey{}, nil, nil
	}
	s.accident = road
	s.invalidate()
	s.logger.Warn("accident occurred", zap.Stringer("road", road))

	c, err := s.Run()
	if err != nil {
		return road, nil, err
	}

	return road, c, nil
}

// ClearAccident reopens the closed road. It reports whether one was active.
// The next Run sees the full topology.
func (s *Session) ClearAccident() bool {
	if s.accident.IsZero() {
		return false
	}
	s.logger.Info("accident cleared", zap.Stringer("road", s.accident))
	s.accident = core.RoadKey{}
	s.lastGraph = nil
	s.invalidate()

	return true
}

// Compare runs every strategy on its own copy of one fresh build of the current
// scenario. The active strategy and last cycle are left untouched.
func (s *Session) Compare() (report.Comparison, error) {
	base, err := builder.Build(s.topo, s.traffic, s.accident)
	if err != nil {
		return report.Comparison{}, err
	}
	runs := make([]report.Run, 0, len(strategy.Kinds()))
	for _, k := range strategy.Kinds() {
		g := base.Clone()
		st, err := strategy.New(k)
		if err != nil {
			return report.Comparison{}, err
		}
		results, err := st.Route(g, s.origins, s.dest, s.params)
		if err != nil {
			return report.Comparison{}, err
		}
		runs = append(runs, report.NewRun(k, results, g.Edges()))
	}
	c := report.Compare(runs)
	s.logger.Debug("strategies compared", zap.Stringer("best", c.Best))

	return c, nil
}

// Route answers a single shortest-path query on the uncongested baseline
// (scenario traffic, active accident). Answers are cached until the accident
// or traffic changes.
func (s *Session) Route(from, to string) (dijkstra.Path, error) {
	if !s.topo.HasNode(from) {
		return dijkstra.Path{}, fmt.Errorf("%w: %q", ErrUnknownEndpoint, from)
	}
	if !s.topo.HasNode(to) {
		return dijkstra.Path{}, fmt.Errorf("%w: %q", ErrUnknownEndpoint, to)
	}
	key := routeKey{from: from, to: to}
	if p, ok := s.routes.Get(key); ok {
		return p, nil
	}
	g, err := s.baselineGraph()
	if err != nil {
		return dijkstra.Path{}, err
	}
	p, err := dijkstra.ShortestPath(g, from, to)
	if err != nil {
		return dijkstra.Path{}, err
	}
	s.routes.Add(key, p)

	return p, nil
}

// Distances returns the least baseline cost from `from` to every node, +Inf
// for nodes it cannot reach.
func (s *Session) Distances(from string) (map[string]float64, error) {
	if !s.topo.HasNode(from) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, from)
	}
	g, err := s.baselineGraph()
	if err != nil {
		return nil, err
	}

	return dijkstra.Distances(g, from)
}

func (s *Session) baselineGraph() (*core.Graph, error) {
	if s.baseline == nil {
		g, err := builder.Build(s.topo, s.traffic, s.accident)
		if err != nil {
			return nil, err
		}
		s.baseline = g
	}

	return s.baseline, nil
}

// invalidate drops every artefact derived from the scenario.
func (s *Session) invalidate() {
	s.baseline = nil
	s.routes.Purge()
}
