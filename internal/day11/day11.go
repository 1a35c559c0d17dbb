// Package day11 solves "Cosmic Expansion": the sum of shortest paths between
// every pair of galaxies after empty rows and columns grow.
package day11

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/internal/logging"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// ErrBadFactor is returned for an expansion factor below 1.
var ErrBadFactor = errors.New("day11: expansion factor must be at least 1")

// Options configures Solve.
type Options struct {
	// Factor1 and Factor2 are how many rows (columns) each empty row
	// (column) becomes in Part 1 and Part 2.
	Factor1 int `yaml:"factor1"`
	Factor2 int `yaml:"factor2"`

	Logger *zap.Logger `yaml:"-"`
}

// DefaultOptions returns the puzzle's expansion factors.
func DefaultOptions() Options {
	return Options{Factor1: 2, Factor2: 1_000_000}
}

// Solve returns the summed pairwise distances for both expansion factors.
func Solve(r io.Reader, opts Options) (puzzle.Result, error) {
	log := logging.OrNop(opts.Logger)
	if opts.Factor1 < 1 || opts.Factor2 < 1 {
		return puzzle.Result{}, fmt.Errorf("%w: got %d and %d", ErrBadFactor, opts.Factor1, opts.Factor2)
	}
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return puzzle.Result{}, err
	}
	g, err := puzzle.CharGrid(lines, 1, func(b byte) bool { return b == '.' || b == '#' })
	if err != nil {
		return puzzle.Result{}, err
	}

	u := survey(g)
	log.Debug("image surveyed",
		zap.Int("galaxies", len(u.galaxies)),
		zap.Int("empty_rows", u.emptyRowsBefore[g.Height()]),
		zap.Int("empty_cols", u.emptyColsBefore[g.Width()]))

	return puzzle.Result{
		Part1: u.distanceSum(opts.Factor1),
		Part2: u.distanceSum(opts.Factor2),
	}, nil
}

type universe struct {
	galaxies []grid.Position
	// emptyRowsBefore[y] counts empty rows strictly above row y; the extra
	// last entry holds the total. Same for columns.
	emptyRowsBefore []int
	emptyColsBefore []int
}

func survey(g *grid.Grid[byte]) *universe {
	u := &universe{}
	rowHas := make([]bool, g.Height())
	colHas := make([]bool, g.Width())
	for p, v := range g.Cells() {
		if v == '#' {
			u.galaxies = append(u.galaxies, p)
			rowHas[p.Y] = true
			colHas[p.X] = true
		}
	}
	u.emptyRowsBefore = prefixEmpty(rowHas)
	u.emptyColsBefore = prefixEmpty(colHas)

	return u
}

func prefixEmpty(has []bool) []int {
	out := make([]int, len(has)+1)
	for i, h := range has {
		out[i+1] = out[i]
		if !h {
			out[i+1]++
		}
	}

	return out
}

// expanded maps an image position to its position in a universe where each
// empty row and column is factor wide.
func (u *universe) expanded(p grid.Position, factor int) grid.SignedPosition {
	grow := factor - 1

	return p.ToSigned().Add(grid.Vector{
		DX: grow * u.emptyColsBefore[p.X],
		DY: grow * u.emptyRowsBefore[p.Y],
	})
}

func (u *universe) distanceSum(factor int) int64 {
	at := make([]grid.SignedPosition, len(u.galaxies))
	for i, p := range u.galaxies {
		at[i] = u.expanded(p, factor)
	}
	var sum int64
	for i := range at {
		for j := i + 1; j < len(at); j++ {
			sum += int64(at[j].Sub(at[i]).ManhattanDistance())
		}
	}

	return sum
}
