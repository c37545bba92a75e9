// SPDX-License-Identifier: MIT

// Package builder turns a validated topology, the scenario's traffic multipliers
// and the session's active accident into a weighted core.Graph ready for
// pathfinding. It also provides deterministic topology generators used for
// fixtures, benchmarks and synthetic scenarios.
//
// The package offers the following key components:
//
//   - Build(t, traffic, accident):
//     – validates t (topology sentinels surface unchanged through errors.Is);
//     – adds every node in input order;
//     – adds every road except the accident road (either orientation);
//     – seeds each road with traffic.Multiplier(u, v) (default 1.0) and derives Weight.
//   - Topology generators (Option-configured):
//     – Path(n), Grid(rows, cols), RandomSparse(n, p), CityMap().
//   - Vertex-ID schemes (IDFn): DefaultIDFn, ExcelColumnIDFn.
//   - Base-cost distributions (CostFn): ConstantCostFn, UniformCostFn.
//
// Guarantees:
//
//   - Determinism: identical inputs produce identical graphs. Build keeps no state
//     between calls; the accident road is an explicit argument, never ambient.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping package sentinels for invalid generator
//     parameters.
package builder
