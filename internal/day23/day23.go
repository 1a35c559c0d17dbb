// Package day23 solves "A Long Walk": the longest hike through a forest
// maze that never steps on the same tile twice.
package day23

import (
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/dfs"
	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/logging"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// Options configures Solve.
type Options struct {
	Logger *zap.Logger `yaml:"-"`
}

// slopes maps each slope glyph to the only direction it may be left in.
var slopes = map[byte]grid.Direction{
	'^': grid.North,
	'v': grid.South,
	'>': grid.East,
	'<': grid.West,
}

func validTile(b byte) bool {
	_, slope := slopes[b]
	return slope || b == '.' || b == '#'
}

// Solve returns the longest hike honoring slopes (Part1) and treating them
// as plain paths (Part2).
func Solve(r io.Reader, opts Options) (puzzle.Result, error) {
	log := logging.OrNop(opts.Logger)
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return puzzle.Result{}, err
	}
	g, err := puzzle.CharGrid(lines, 1, validTile)
	if err != nil {
		return puzzle.Result{}, err
	}
	start, err := gap(lines, 0)
	if err != nil {
		return puzzle.Result{}, err
	}
	end, err := gap(lines, len(lines)-1)
	if err != nil {
		return puzzle.Result{}, err
	}

	gg, err := gridgraph.NewGridGraph(g, gridgraph.GridOptions[byte]{
		Open: func(b byte) bool { return b != '#' },
	})
	if err != nil {
		return puzzle.Result{}, err
	}
	downhill := func(from grid.Position, d grid.Direction) bool {
		tile, _ := g.Get(from)
		forced, ok := slopes[tile]
		return !ok || forced == d
	}

	part1, err := longestHike(gg, start, end, downhill, log)
	if err != nil {
		return puzzle.Result{}, err
	}
	part2, err := longestHike(gg, start, end, nil, log)
	if err != nil {
		return puzzle.Result{}, err
	}

	return puzzle.Result{Part1: part1, Part2: part2}, nil
}

// gap locates the single path tile of row y.
func gap(lines []string, y int) (grid.Position, error) {
	row := lines[y]
	x := strings.IndexByte(row, '.')
	if x < 0 || strings.Count(row, ".") != 1 {
		return grid.Position{}, puzzle.Malformed(y+1, "want exactly one path tile in %q", row)
	}

	return grid.Position{X: x, Y: y}, nil
}

func longestHike(gg *gridgraph.GridGraph[byte], start, end grid.Position, canStep func(grid.Position, grid.Direction) bool, log *zap.Logger) (int64, error) {
	junctions := gg.Contract(gridgraph.ContractOptions{
		CanStep: canStep,
		Keep:    []grid.Position{start, end},
	})
	log.Debug("maze contracted",
		zap.Bool("slopes", canStep != nil),
		zap.Int("junctions", junctions.VertexCount()),
		zap.Int("corridors", junctions.EdgeCount()))

	n, err := dfs.LongestPath(junctions, gridgraph.VertexID(start), gridgraph.VertexID(end))
	if err != nil {
		return 0, puzzle.Malformed(start.Y+1, "no hike from %v to %v: %v", start, end, err)
	}

	return n, nil
}
