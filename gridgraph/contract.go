package gridgraph

import (
	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/grid"
)

// Contract builds a directed, weighted multigraph whose vertices are the
// junctions of the open cells (cells with three or more open cardinal
// neighbors) plus opts.Keep. Every corridor walk from one vertex to another
// becomes an edge weighted by its step count. Walks that dead-end, return to
// their own start, or are refused by CanStep produce no edge.
//
// Contract always moves in the four cardinal directions, whatever gg.Conn is.
// Complexity: O(W×H) time, Memory: O(J + E).
func (gg *GridGraph[T]) Contract(opts ContractOptions) *core.Graph {
	canStep := opts.CanStep
	if canStep == nil {
		canStep = func(grid.Position, grid.Direction) bool { return true }
	}

	isVertex := make(map[grid.Position]bool)
	for _, p := range opts.Keep {
		if gg.IsOpen(p) {
			isVertex[p] = true
		}
	}
	for p, v := range gg.cells.Cells() {
		if gg.open(v) && len(gg.cardinalMoves(p, nil)) >= 3 {
			isVertex[p] = true
		}
	}

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	for p, v := range gg.cells.Cells() {
		if !gg.open(v) || !isVertex[p] {
			continue
		}
		_ = g.AddVertex(VertexID(p))
	}

	for p, v := range gg.cells.Cells() {
		if !gg.open(v) || !isVertex[p] {
			continue
		}
		for _, first := range gg.cardinalMoves(p, canStep) {
			end, steps, ok := gg.walkCorridor(p, first, isVertex, canStep)
			if !ok || end == p {
				continue
			}
			_, _ = g.AddEdge(VertexID(p), VertexID(end), int64(steps))
		}
	}

	return g
}

// walkCorridor follows the single-lane path that leaves from through next
// until it reaches a vertex. It reports false on a dead end.
func (gg *GridGraph[T]) walkCorridor(from, next grid.Position, isVertex map[grid.Position]bool, canStep func(grid.Position, grid.Direction) bool) (grid.Position, int, bool) {
	prev, cur, steps := from, next, 1
	for !isVertex[cur] {
		var onward []grid.Position
		for _, n := range gg.cardinalMoves(cur, canStep) {
			if n != prev {
				onward = append(onward, n)
			}
		}
		if len(onward) != 1 {
			return grid.Position{}, 0, false
		}
		prev, cur = cur, onward[0]
		steps++
	}

	return cur, steps, true
}

// cardinalMoves lists the open cells reachable from p in one cardinal step
// allowed by canStep (nil allows all).
func (gg *GridGraph[T]) cardinalMoves(p grid.Position, canStep func(grid.Position, grid.Direction) bool) []grid.Position {
	out := make([]grid.Position, 0, 4)
	for _, d := range grid.All() {
		if canStep != nil && !canStep(p, d) {
			continue
		}
		n, err := p.Step(d)
		if err != nil || !gg.IsOpen(n) {
			continue
		}
		out = append(out, n)
	}

	return out
}
