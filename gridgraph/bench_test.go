package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/gridgraph"
)

// randomMaze returns an n×n grid where roughly a third of the cells are walls.
func randomMaze(n int) *grid.Grid[byte] {
	r := rand.New(rand.NewSource(42))
	g := grid.Filled(n, n, byte('.'))
	for p := range g.Cells() {
		if r.Intn(3) == 0 {
			g.Set(p, '#')
		}
	}

	return g
}

func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(randomMaze(500), gridgraph.GridOptions[byte]{Open: notWall})
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

func BenchmarkContract(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(randomMaze(200), gridgraph.GridOptions[byte]{Open: notWall})
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Contract(gridgraph.ContractOptions{})
	}
}
