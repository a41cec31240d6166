package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/builder"
	"github.com/katalvlaran/lvsteiner/core"
)

// ExampleBuildGraph builds a weighted 2×3 grid with constant weight 2.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithConstantWeight(2)},
		builder.Grid(2, 3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount(), g.TotalWeight())
	// Output: 6 7 14
}
