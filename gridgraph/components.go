package gridgraph

import (
	"github.com/katalvlaran/aoc2023/grid"
)

// ConnectedComponents finds all contiguous regions of open cells according
// to gg.Conn connectivity. Components are ordered by their first cell in
// row-major order; cells within a component are in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) ConnectedComponents() [][]grid.Position {
	seen := grid.Filled(gg.Width, gg.Height, false)
	var comps [][]grid.Position

	for p, v := range gg.cells.Cells() {
		if !gg.open(v) {
			continue
		}
		if done, _ := seen.Get(p); done {
			continue
		}
		seen.Set(p, true)
		queue := []grid.Position{p}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range gg.Neighbors(queue[qi]) {
				if done, _ := seen.Get(n); !done {
					seen.Set(n, true)
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
