// Package day16 solves "The Floor Will Be Lava": tracing light beams
// through a contraption of mirrors and splitters.
package day16

import (
	"fmt"
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

func validTile(b byte) bool {
	switch b {
	case '.', '/', '\\', '|', '-':
		return true
	}
	return false
}

// Solve returns the tiles energized by a beam entering the top-left corner
// heading east (Part1) and the best count over every edge entry (Part2).
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

	part1, err := Energize(g, grid.NewActor(grid.Position{}, grid.East))
	if err != nil {
		return puzzle.Result{}, err
	}

	best, bestFrom := 0, grid.Actor{}
	for _, start := range edgeEntries(g.Width(), g.Height()) {
		n, err := Energize(g, start)
		if err != nil {
			return puzzle.Result{}, err
		}
		if n > best {
			best, bestFrom = n, start
		}
	}
	log.Debug("best entry", zap.Stringer("pos", bestFrom.Pos), zap.Stringer("vector", bestFrom.Vector), zap.Int("energized", best))

	return puzzle.Result{Part1: int64(part1), Part2: int64(best)}, nil
}

// Energize counts the tiles crossed by the beam start and all of its splits.
func Energize(g *grid.Grid[byte], start grid.Actor) (int, error) {
	lit, err := Energized(g, start)
	if err != nil {
		return 0, err
	}

	return lit.Count(func(on bool) bool { return on }), nil
}

// Energized marks the tiles crossed by the beam start and all of its
// splits. A start without a cardinal heading yields grid.ErrNonCardinal.
func Energized(g *grid.Grid[byte], start grid.Actor) (*grid.Grid[bool], error) {
	energized := grid.Filled(g.Width(), g.Height(), false)
	seen := make(map[grid.Actor]struct{})

	beams := []grid.Actor{start}
	for len(beams) > 0 {
		beam := beams[len(beams)-1]
		beams = beams[:len(beams)-1]

		tile, ok := g.Get(beam.Pos)
		if !ok {
			continue
		}
		if _, dup := seen[beam]; dup {
			continue
		}
		seen[beam] = struct{}{}
		energized.Set(beam.Pos, true)

		out, err := deflect(beam, tile)
		if err != nil {
			return nil, err
		}
		for _, next := range out {
			if next.Advance() == nil {
				beams = append(beams, next)
			}
		}
	}

	return energized, nil
}

// deflect returns the beams leaving tile for a beam arriving as beam.
func deflect(beam grid.Actor, tile byte) ([]grid.Actor, error) {
	heading, ok := beam.Heading()
	if !ok {
		return nil, fmt.Errorf("day16: beam at %v: %w", beam.Pos, grid.ErrNonCardinal)
	}
	vertical := heading.IsVertical()

	var turns []grid.RelativeDirection
	switch {
	case tile == '/' && vertical, tile == '\\' && !vertical:
		turns = []grid.RelativeDirection{grid.Right}
	case tile == '/', tile == '\\':
		turns = []grid.RelativeDirection{grid.Left}
	case tile == '|' && !vertical, tile == '-' && vertical:
		turns = []grid.RelativeDirection{grid.Left, grid.Right}
	default:
		turns = []grid.RelativeDirection{grid.Forward}
	}
	out := make([]grid.Actor, 0, len(turns))
	for _, rel := range turns {
		a := beam
		if err := a.Turn(rel); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

// edgeEntries lists every beam entering the grid from outside: down each
// column, up each column, rightwards along each row and leftwards.
func edgeEntries(w, h int) []grid.Actor {
	out := make([]grid.Actor, 0, 2*(w+h))
	for x := 0; x < w; x++ {
		out = append(out,
			grid.NewActor(grid.Position{X: x}, grid.South),
			grid.NewActor(grid.Position{X: x, Y: h - 1}, grid.North))
	}
	for y := 0; y < h; y++ {
		out = append(out,
			grid.NewActor(grid.Position{Y: y}, grid.East),
			grid.NewActor(grid.Position{X: w - 1, Y: y}, grid.West))
	}

	return out
}
