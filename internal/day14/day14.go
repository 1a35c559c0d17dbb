// Package day14 solves "Parabolic Reflector Dish": tilting a platform of
// rolling rocks and measuring the load on its north support beams.
package day14

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/internal/logging"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// Platform cells.
const (
	Round byte = 'O'
	Cube  byte = '#'
	Empty byte = '.'
)

// ErrBadCycles is returned for a negative spin cycle count.
var ErrBadCycles = errors.New("day14: spin cycles must not be negative")

// spinOrder is the tilt sequence of one spin cycle.
var spinOrder = [...]grid.Direction{grid.North, grid.West, grid.South, grid.East}

// Options configures Solve.
type Options struct {
	// Cycles is the number of spin cycles run for Part 2.
	Cycles int `yaml:"cycles"`

	Logger *zap.Logger `yaml:"-"`
}

// DefaultOptions returns the puzzle's spin cycle count.
func DefaultOptions() Options {
	return Options{Cycles: 1_000_000_000}
}

// Solve returns the north load after one northward tilt (Part1) and after
// opts.Cycles spin cycles (Part2).
func Solve(r io.Reader, opts Options) (puzzle.Result, error) {
	log := logging.OrNop(opts.Logger)
	if opts.Cycles < 0 {
		return puzzle.Result{}, fmt.Errorf("%w: %d", ErrBadCycles, opts.Cycles)
	}
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return puzzle.Result{}, err
	}
	g, err := puzzle.CharGrid(lines, 1, func(b byte) bool { return b == Round || b == Cube || b == Empty })
	if err != nil {
		return puzzle.Result{}, err
	}

	tilted := g.Clone()
	Tilt(tilted, grid.North)

	return puzzle.Result{
		Part1: NorthLoad(tilted),
		Part2: spinLoad(g, opts.Cycles, log),
	}, nil
}

// Tilt rolls every round rock as far as it goes towards d.
func Tilt(g *grid.Grid[byte], d grid.Direction) {
	w, h := g.Width(), g.Height()
	lanes, length := w, h
	if !d.IsVertical() {
		lanes, length = h, w
	}
	for lane := 0; lane < lanes; lane++ {
		// Walk the lane from the wall d points at; next is the slot the
		// following round rock settles into.
		next := 0
		for i := 0; i < length; i++ {
			p := lanePosition(d, lane, i, w, h)
			switch v, _ := g.Get(p); v {
			case Cube:
				next = i + 1
			case Round:
				g.Set(p, Empty)
				g.Set(lanePosition(d, lane, next, w, h), Round)
				next++
			}
		}
	}
}

// lanePosition returns the i-th cell of a lane counted from the edge that d
// faces.
func lanePosition(d grid.Direction, lane, i, w, h int) grid.Position {
	switch d {
	case grid.North:
		return grid.Position{X: lane, Y: i}
	case grid.South:
		return grid.Position{X: lane, Y: h - 1 - i}
	case grid.West:
		return grid.Position{X: i, Y: lane}
	default:
		return grid.Position{X: w - 1 - i, Y: lane}
	}
}

// Spin runs one spin cycle: tilts north, west, south, then east.
func Spin(g *grid.Grid[byte]) {
	for _, d := range spinOrder {
		Tilt(g, d)
	}
}

// NorthLoad sums, over round rocks, the number of rows from the rock to
// the south edge inclusive.
func NorthLoad(g *grid.Grid[byte]) int64 {
	h := g.Height()
	var load int64
	for p, v := range g.Cells() {
		if v == Round {
			load += int64(h - p.Y)
		}
	}

	return load
}

func encodeCell(dst []byte, c byte) []byte { return append(dst, c) }

// spinLoad spins a copy of g cycles times and returns its north load. Once
// a platform state repeats, the remaining cycles are skipped by period.
func spinLoad(g *grid.Grid[byte], cycles int, log *zap.Logger) int64 {
	g = g.Clone()
	seen := make(map[uint64][]int)
	var states []*grid.Grid[byte]
	var loads []int64

	for i := 0; i < cycles; i++ {
		fp := g.Fingerprint(encodeCell)
		for _, j := range seen[fp] {
			if !grid.Equal(states[j], g) {
				continue
			}
			period := i - j
			at := j + (cycles-j)%period
			log.Debug("spin cycle found", zap.Int("first", j), zap.Int("period", period), zap.Int("state", at))
			return loads[at]
		}
		seen[fp] = append(seen[fp], i)
		states = append(states, g.Clone())
		loads = append(loads, NorthLoad(g))
		Spin(g)
	}

	return NorthLoad(g)
}
