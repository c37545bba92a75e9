// SPDX-License-Identifier: MIT

// Package dijkstra is the shortest-path solver of the routing engine.
//
// Overview:
//
//   - ShortestPath computes the least-cost route between two intersections of a
//     core.Graph, reading every edge's current Weight (BaseCost × Multiplier) at
//     solve time. The graph is never mutated.
//   - Distances computes the cost from one source to every vertex.
//   - Both use a binary-heap priority queue with lazy decrease-key.
//
// Determinism:
//
//   - The heap orders entries by (distance, vertex ID). Among equal-cost routes the
//     one whose vertices settle first in ID order wins, so repeated solves on the
//     same graph return the same path.
//
// Results, not errors:
//
//   - An unreachable target is a first-class result: Path.Nodes is empty and
//     Path.Cost is +Inf. Use Path.Reachable.
//   - start == end yields Nodes=[start], Cost=0.
//   - A graph with no edges is valid input; every distinct pair is unreachable.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if g is nil.
//   - ErrVertexNotFound  if start or end is not a vertex of g.
//   - ErrNegativeWeight  if any edge weight is negative or NaN.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holding up to E stale entries.
package dijkstra
