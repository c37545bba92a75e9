// SPDX-License-Identifier: MIT

// Package strategy routes an ordered batch of vehicles to a shared destination
// and applies congestion to the graph as a side effect.
//
// Three policies implement Strategy. They differ only in when and how edge
// multipliers change between individual shortest-path solves:
//
//   - Greedy: solve vehicle i on the current weights, then raise the multiplier of
//     every edge on its path by Step (capped at MaxMultiplier) before vehicle i+1.
//   - Coordinated: solve every vehicle on the unmodified graph, tally how many
//     vehicles use each edge, then raise each used edge by Step × usage in one
//     batch (capped).
//   - Optimized: before each solve, reset every edge to
//     min(1 + Step × usage so far, MaxMultiplier); solve; add 1 to the usage of
//     each edge on the path.
//
// An unreachable vehicle is recorded with an empty path and +Inf cost and adds
// no congestion.
//
// Results come back in origin order. The graph is mutated in place; callers that
// need the pre-routing state should Clone first. A strategy must be the only
// writer of its graph while Route runs.
package strategy
