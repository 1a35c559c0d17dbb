// Package day21 solves "Step Counter": how many garden plots an elf can
// stand on after an exact number of steps, on the map and on its infinite
// tiling.
package day21

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/gridgraph"
	"github.com/katalvlaran/aoc2023/internal/logging"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

var (
	// ErrBadSteps is returned for a negative step count.
	ErrBadSteps = errors.New("day21: step counts must not be negative")
	// ErrNotSquare is returned when extrapolation is needed on a garden
	// whose tiling period differs between the axes.
	ErrNotSquare = errors.New("day21: extrapolation needs a square garden")
)

// Options configures Solve.
type Options struct {
	// Steps1 is the step count on the bounded map (Part 1).
	Steps1 int `yaml:"steps1"`
	// Steps2 is the step count on the infinite tiling (Part 2).
	Steps2 int `yaml:"steps2"`
	// ExactLimit is the largest Steps2 counted by direct search; larger
	// counts are extrapolated from three period-spaced samples.
	ExactLimit int `yaml:"exact_limit"`

	Logger *zap.Logger `yaml:"-"`
}

// DefaultOptions returns the puzzle's step counts.
func DefaultOptions() Options {
	return Options{Steps1: 64, Steps2: 26_501_365, ExactLimit: 1000}
}

// Solve counts the plots reachable in exactly opts.Steps1 steps on the map
// (Part1) and in exactly opts.Steps2 steps on its infinite tiling (Part2).
func Solve(r io.Reader, opts Options) (puzzle.Result, error) {
	log := logging.OrNop(opts.Logger)
	if opts.Steps1 < 0 || opts.Steps2 < 0 {
		return puzzle.Result{}, fmt.Errorf("%w: got %d and %d", ErrBadSteps, opts.Steps1, opts.Steps2)
	}
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return puzzle.Result{}, err
	}
	g, err := puzzle.CharGrid(lines, 1, func(b byte) bool { return b == '.' || b == '#' || b == 'S' })
	if err != nil {
		return puzzle.Result{}, err
	}
	isStart := func(b byte) bool { return b == 'S' }
	start, ok := g.Find(isStart)
	if !ok || g.Count(isStart) != 1 {
		return puzzle.Result{}, puzzle.Malformed(1, "want exactly one start tile S")
	}

	part1, err := reachableOnMap(g, start, opts.Steps1)
	if err != nil {
		return puzzle.Result{}, err
	}

	var part2 int64
	if opts.Steps2 <= opts.ExactLimit {
		part2 = reachableTiled(g, start, []int{opts.Steps2})[0]
	} else {
		part2, err = extrapolate(g, start, opts.Steps2, log)
		if err != nil {
			return puzzle.Result{}, err
		}
	}

	return puzzle.Result{Part1: part1, Part2: part2}, nil
}

func isPlot(b byte) bool { return b != '#' }

// reachableOnMap runs a depth-limited BFS over the plot graph. A plot is
// reachable in exactly steps steps when its distance fits and has the same
// parity, since the elf can always step back and forth.
func reachableOnMap(g *grid.Grid[byte], start grid.Position, steps int) (int64, error) {
	gg, err := gridgraph.NewGridGraph(g, gridgraph.GridOptions[byte]{Open: isPlot})
	if err != nil {
		return 0, err
	}
	res, err := bfs.BFS(gg.ToCoreGraph(), gridgraph.VertexID(start), bfs.WithMaxDepth(steps))
	if err != nil {
		return 0, err
	}

	return int64(res.CountWithin(steps)), nil
}

// reachableTiled runs one BFS over the infinitely repeated garden and
// answers every requested step count from the same distance table.
func reachableTiled(g *grid.Grid[byte], start grid.Position, steps []int) []int64 {
	limit := 0
	for _, s := range steps {
		limit = max(limit, s)
	}

	dist := map[grid.SignedPosition]int{start.ToSigned(): 0}
	frontier := []grid.SignedPosition{start.ToSigned()}
	for d := 1; d <= limit && len(frontier) > 0; d++ {
		var next []grid.SignedPosition
		for _, p := range frontier {
			for _, dir := range grid.All() {
				n := p.Add(dir.UnitVector())
				if _, done := dist[n]; done {
					continue
				}
				if tile, _ := g.Get(g.Wrapped(n)); !isPlot(tile) {
					continue
				}
				dist[n] = d
				next = append(next, n)
			}
		}
		frontier = next
	}

	out := make([]int64, len(steps))
	for _, d := range dist {
		for i, s := range steps {
			if d <= s && d%2 == s%2 {
				out[i]++
			}
		}
	}

	return out
}

// extrapolate exploits that on a square garden the reachable count grows
// quadratically in whole periods: with steps = n·W + r, samples at r, r+W
// and r+2W determine the count for any n by Newton forward differences.
func extrapolate(g *grid.Grid[byte], start grid.Position, steps int, log *zap.Logger) (int64, error) {
	w := g.Width()
	if w != g.Height() {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, w, g.Height())
	}
	r := steps % w
	samples := reachableTiled(g, start, []int{r, r + w, r + 2*w})
	a0, a1, a2 := samples[0], samples[1], samples[2]
	n := int64(steps / w)
	log.Debug("extrapolating tiled garden",
		zap.Int("period", w), zap.Int("remainder", r), zap.Int64("periods", n),
		zap.Int64s("samples", samples))

	return a0 + n*(a1-a0) + n*(n-1)/2*(a2-2*a1+a0), nil
}
