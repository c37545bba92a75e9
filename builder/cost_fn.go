// SPDX-License-Identifier: MIT
// Package: roadflow/builder
//
// cost_fn.go: base-cost distributions for generated roads.
//
// Every CostFn must return a finite value > 0; generators surface anything else
// as topology.ErrBadBaseCost through Validate.

package builder

import (
	"fmt"
	"math/rand"
)

// defaultBaseCost is the road cost used when no CostFn is configured.
const defaultBaseCost = 1.0

// CostFn draws one base cost. rng may be nil for deterministic functions.
type CostFn func(rng *rand.Rand) float64

// ConstantCostFn always returns value. Panics if value <= 0.
func ConstantCostFn(value float64) CostFn {
	if value <= 0 {
		panic(fmt.Sprintf("builder: ConstantCostFn(%v): value must be > 0", value))
	}
	return func(_ *rand.Rand) float64 { return value }
}

// UniformCostFn draws uniformly from [min, max). With a nil rng it returns min.
// Panics unless 0 < min <= max.
func UniformCostFn(min, max float64) CostFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("builder: UniformCostFn(%v, %v): need 0 < min <= max", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}
