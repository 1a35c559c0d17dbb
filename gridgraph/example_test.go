package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/gridgraph"
)

// ExampleGridGraph_ConnectedComponents counts the separate open regions of a
// small map where '#' is wall.
func ExampleGridGraph_ConnectedComponents() {
	g := grid.New([][]byte{
		[]byte("..#.."),
		[]byte(".##.."),
		[]byte("#..##"),
	})
	gg, _ := gridgraph.NewGridGraph(g, gridgraph.GridOptions[byte]{
		Open: func(b byte) bool { return b == '.' },
	})

	for i, comp := range gg.ConnectedComponents() {
		fmt.Printf("component %d: %v\n", i, comp)
	}
	// Output:
	// component 0: [(0,0) (0,1) (1,0)]
	// component 1: [(3,0) (3,1) (4,0) (4,1)]
	// component 2: [(1,2) (2,2)]
}
