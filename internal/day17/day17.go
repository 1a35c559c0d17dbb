// Package day17 solves "Clumsy Crucible": the least heat loss from the
// top-left to the bottom-right block when a crucible must turn after a
// bounded straight run.
package day17

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/dijkstra"
	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/logging"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// ErrBadRun is returned for a run limit pair that allows no move.
var ErrBadRun = errors.New("day17: run limits must satisfy 1 <= min <= max")

// Run bounds how many blocks a crucible travels in a straight line between turns.
type Run struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Options configures Solve.
type Options struct {
	Crucible      Run `yaml:"crucible"`
	UltraCrucible Run `yaml:"ultra_crucible"`

	Logger *zap.Logger `yaml:"-"`
}

// DefaultOptions returns the run limits of the puzzle's two crucibles.
func DefaultOptions() Options {
	return Options{
		Crucible:      Run{Min: 1, Max: 3},
		UltraCrucible: Run{Min: 4, Max: 10},
	}
}

// Solve returns the least heat loss for the crucible (Part1) and the ultra
// crucible (Part2).
func Solve(r io.Reader, opts Options) (puzzle.Result, error) {
	log := logging.OrNop(opts.Logger)
	for _, run := range []Run{opts.Crucible, opts.UltraCrucible} {
		if run.Min < 1 || run.Max < run.Min {
			return puzzle.Result{}, fmt.Errorf("%w: got %d..%d", ErrBadRun, run.Min, run.Max)
		}
	}
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return puzzle.Result{}, err
	}
	g, err := puzzle.CharGrid(lines, 1, func(b byte) bool { return b >= '0' && b <= '9' })
	if err != nil {
		return puzzle.Result{}, err
	}

	part1, err := MinHeatLoss(g, opts.Crucible, log)
	if err != nil {
		return puzzle.Result{}, err
	}
	part2, err := MinHeatLoss(g, opts.UltraCrucible, log)
	if err != nil {
		return puzzle.Result{}, err
	}

	return puzzle.Result{Part1: part1, Part2: part2}, nil
}

// Axis of the move that brought the crucible onto a block.
type axis byte

const (
	horizontal axis = 'h'
	vertical   axis = 'v'
)

// turns lists the directions allowed after arriving along a.
func (a axis) turns() [2]grid.Direction {
	if a == horizontal {
		return [2]grid.Direction{grid.North, grid.South}
	}
	return [2]grid.Direction{grid.East, grid.West}
}

func (a axis) other() axis {
	if a == horizontal {
		return vertical
	}
	return horizontal
}

const (
	sourceID = "start"
	sinkID   = "goal"
)

func stateID(p grid.Position, a axis) string {
	return gridgraph.VertexID(p) + "/" + string(a)
}

// MinHeatLoss runs Dijkstra over a layered graph whose vertices are
// (block, arrival axis). Every edge is a full straight run of run.Min to
// run.Max blocks followed by a mandatory turn, weighted by the heat lost
// on the blocks entered.
func MinHeatLoss(g *grid.Grid[byte], run Run, log *zap.Logger) (int64, error) {
	w, h := g.Width(), g.Height()
	goal := grid.Position{X: w - 1, Y: h - 1}
	heat := func(p grid.Position) (int64, bool) {
		v, ok := g.Get(p)
		return int64(v - '0'), ok
	}

	cg := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for p := range g.Cells() {
		for _, a := range []axis{horizontal, vertical} {
			from := stateID(p, a)
			for _, d := range a.turns() {
				var lost int64
				at := p
				for k := 1; k <= run.Max; k++ {
					next, err := at.Step(d)
					if err != nil {
						break
					}
					cost, ok := heat(next)
					if !ok {
						break
					}
					at, lost = next, lost+cost
					if k >= run.Min {
						if _, err := cg.AddEdge(from, stateID(at, a.other()), lost); err != nil {
							return 0, err
						}
					}
				}
			}
		}
	}
	for _, a := range []axis{horizontal, vertical} {
		if _, err := cg.AddEdge(sourceID, stateID(grid.Position{}, a), 0); err != nil {
			return 0, err
		}
		if _, err := cg.AddEdge(stateID(goal, a), sinkID, 0); err != nil {
			return 0, err
		}
	}
	log.Debug("crucible graph built",
		zap.Int("min", run.Min), zap.Int("max", run.Max),
		zap.Int("vertices", cg.VertexCount()), zap.Int("edges", cg.EdgeCount()))

	dist, _, err := dijkstra.Dijkstra(cg, dijkstra.Source(sourceID), dijkstra.WithTarget(sinkID))
	if err != nil {
		return 0, err
	}
	if dist[sinkID] == dijkstra.Infinity {
		return 0, fmt.Errorf("%w: no run of %d..%d blocks reaches %v", puzzle.ErrMalformedInput, run.Min, run.Max, goal)
	}

	return dist[sinkID], nil
}
