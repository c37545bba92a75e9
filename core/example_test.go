// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/roadflow/core"
)

// ExampleGraph_SetMultiplier shows that Weight always follows Multiplier.
func ExampleGraph_SetMultiplier() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 4, core.DefaultMultiplier)

	e, _ := g.SetMultiplier(core.NewRoadKey("B", "A"), 1.5)
	fmt.Printf("%s base=%.1f mult=%.1f weight=%.1f\n", e.Key(), e.BaseCost, e.Multiplier, e.Weight)
	// Output: A-B base=4.0 mult=1.5 weight=6.0
}
