// Package day13 solves "Point of Incidence": locating the mirror line of
// each ash/rock pattern, first exactly and then with one smudge.
package day13

import (
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/internal/logging"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// Options configures Solve.
type Options struct {
	Logger *zap.Logger `yaml:"-"`
}

// Solve sums the reflection scores of every pattern with zero differences
// (Part1) and with exactly one difference (Part2).
func Solve(r io.Reader, opts Options) (puzzle.Result, error) {
	log := logging.OrNop(opts.Logger)
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return puzzle.Result{}, err
	}
	blocks, first := puzzle.Blocks(lines)
	if len(blocks) == 0 {
		return puzzle.Result{}, puzzle.Malformed(1, "no patterns")
	}

	var res puzzle.Result
	for i, block := range blocks {
		g, err := puzzle.CharGrid(block, first[i], func(b byte) bool { return b == '.' || b == '#' })
		if err != nil {
			return puzzle.Result{}, err
		}
		clean, ok := Score(g, 0)
		if !ok {
			return puzzle.Result{}, puzzle.Malformed(first[i], "pattern has no mirror line")
		}
		smudged, ok := Score(g, 1)
		if !ok {
			return puzzle.Result{}, puzzle.Malformed(first[i], "pattern has no smudged mirror line")
		}
		log.Debug("pattern scored", zap.Int("line", first[i]), zap.Int("clean", clean), zap.Int("smudged", smudged))
		res.Part1 += int64(clean)
		res.Part2 += int64(smudged)
	}

	return res, nil
}

// Score finds the first mirror line whose reflection differs in exactly
// want cells. Vertical lines are tried first and score the number of
// columns to their left; horizontal lines score 100 per row above.
func Score(g *grid.Grid[byte], want int) (int, bool) {
	w, h := g.Width(), g.Height()
	col := func(i, along int) byte {
		v, _ := g.Get(grid.Position{X: i, Y: along})
		return v
	}
	row := func(i, along int) byte {
		v, _ := g.Get(grid.Position{X: along, Y: i})
		return v
	}
	if c, ok := mirrorLine(w, h, want, col); ok {
		return c, true
	}
	if r, ok := mirrorLine(h, w, want, row); ok {
		return 100 * r, true
	}

	return 0, false
}

// mirrorLine scans an axis of length size for the first line before index
// line whose mirrored cells differ in exactly want places. span is the
// length of the other axis.
func mirrorLine(size, span, want int, at func(i, along int) byte) (int, bool) {
	for line := 1; line < size; line++ {
		diff := 0
		for i := 0; line-1-i >= 0 && line+i < size && diff <= want; i++ {
			for along := 0; along < span; along++ {
				if at(line-1-i, along) != at(line+i, along) {
					diff++
				}
			}
		}
		if diff == want {
			return line, true
		}
	}

	return 0, false
}
