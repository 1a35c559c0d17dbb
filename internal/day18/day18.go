// Package day18 solves "Lavaduct Lagoon": the volume of a lagoon dug from
// a list of trench instructions.
package day18

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/internal/logging"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// Options configures Solve.
type Options struct {
	Logger *zap.Logger `yaml:"-"`
}

// ErrBadStep is returned for a dig step with a negative distance.
var ErrBadStep = errors.New("day18: negative step distance")

// Step is one dig instruction: move Dist meters towards Dir.
type Step struct {
	Dir  grid.Direction
	Dist int
}

var letterDirs = map[string]grid.Direction{
	"U": grid.North,
	"D": grid.South,
	"L": grid.West,
	"R": grid.East,
}

// hexDirs maps the last hex digit of a color code to a direction.
var hexDirs = [...]grid.Direction{grid.East, grid.South, grid.West, grid.North}

// Solve digs the plan as written (Part1, on a grid) and as decoded from the
// color codes (Part2, by the shoelace formula).
func Solve(r io.Reader, opts Options) (puzzle.Result, error) {
	log := logging.OrNop(opts.Logger)
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return puzzle.Result{}, err
	}
	plan, decoded, err := parse(lines)
	if err != nil {
		return puzzle.Result{}, err
	}

	part1, err := ExcavatedVolume(plan)
	if err != nil {
		return puzzle.Result{}, err
	}
	part2 := LagoonVolume(decoded)
	log.Debug("lagoon dug", zap.Int("steps", len(plan)), zap.Int64("volume", part1), zap.Int64("decoded_volume", part2))

	return puzzle.Result{Part1: part1, Part2: part2}, nil
}

// parse reads lines of the form "R 6 (#70c710)".
func parse(lines []string) (plan, decoded []Step, err error) {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lineNo := i + 1
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, nil, puzzle.Malformed(lineNo, "want 3 fields, got %d", len(fields))
		}
		dir, ok := letterDirs[fields[0]]
		if !ok {
			return nil, nil, puzzle.Malformed(lineNo, "unknown direction %q", fields[0])
		}
		dist, err := puzzle.ParseInt[int](fields[1], 10)
		if err != nil || dist < 0 {
			return nil, nil, puzzle.Malformed(lineNo, "bad distance %q", fields[1])
		}
		color, ok := strings.CutPrefix(fields[2], "(#")
		if ok {
			color, ok = strings.CutSuffix(color, ")")
		}
		if !ok || len(color) != 6 {
			return nil, nil, puzzle.Malformed(lineNo, "bad color %q", fields[2])
		}
		hexDist, err := puzzle.ParseInt[int](color[:5], 16)
		if err != nil {
			return nil, nil, puzzle.Malformed(lineNo, "bad color %q", fields[2])
		}
		hexDir, err := puzzle.ParseInt[uint8](color[5:], 16)
		if err != nil || int(hexDir) >= len(hexDirs) {
			return nil, nil, puzzle.Malformed(lineNo, "bad color direction %q", fields[2])
		}
		plan = append(plan, Step{Dir: dir, Dist: dist})
		decoded = append(decoded, Step{Dir: hexDirs[hexDir], Dist: hexDist})
	}
	if len(plan) == 0 {
		return nil, nil, puzzle.Malformed(1, "empty dig plan")
	}

	return plan, decoded, nil
}

// Terrain of the excavation map.
const (
	level byte = iota
	trench
	exterior
)

// ExcavatedVolume digs the trench on a grid and counts every cell the
// exterior flood cannot reach. The trench path may start anywhere, so its
// signed bounds are shifted to leave a one-cell margin on every side.
// Steps with a negative distance yield ErrBadStep.
func ExcavatedVolume(plan []Step) (int64, error) {
	var at, lo, hi grid.SignedPosition
	for i, s := range plan {
		if s.Dist < 0 {
			return 0, fmt.Errorf("%w: step %d moves %d", ErrBadStep, i, s.Dist)
		}
		at = at.Add(s.Dir.UnitVector().Scale(s.Dist))
		lo = grid.SignedPosition{X: min(lo.X, at.X), Y: min(lo.Y, at.Y)}
		hi = grid.SignedPosition{X: max(hi.X, at.X), Y: max(hi.Y, at.Y)}
	}
	origin := grid.SignedPosition{X: 1, Y: 1}.Sub(lo)
	m := grid.Filled(hi.X-lo.X+3, hi.Y-lo.Y+3, level)

	digger := grid.Actor{Pos: grid.Position{X: origin.DX, Y: origin.DY}}
	m.Set(digger.Pos, trench)
	for _, s := range plan {
		digger.Face(s.Dir)
		for k := 0; k < s.Dist; k++ {
			if err := digger.Advance(); err != nil {
				return 0, fmt.Errorf("day18: digger left the map at %v: %w", digger.Pos, err)
			}
			m.Set(digger.Pos, trench)
		}
	}

	m.Set(grid.Position{}, exterior)
	outside := 1
	work := []grid.Position{{}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		for _, d := range grid.All() {
			n, err := p.Step(d)
			if err != nil {
				continue
			}
			if cell, ok := m.GetMut(n); ok && *cell == level {
				*cell = exterior
				outside++
				work = append(work, n)
			}
		}
	}

	return int64(m.Width()*m.Height() - outside), nil
}

// LagoonVolume computes the dug volume from the trench polygon alone: the
// shoelace area of the cell centers plus the half of each boundary cell
// that lies outside that polygon (Pick's theorem).
func LagoonVolume(plan []Step) int64 {
	var at grid.SignedPosition
	var twiceArea, boundary int64
	for _, s := range plan {
		next := at.Add(s.Dir.UnitVector().Scale(s.Dist))
		twiceArea += int64(at.X)*int64(next.Y) - int64(next.X)*int64(at.Y)
		boundary += int64(s.Dist)
		at = next
	}
	if twiceArea < 0 {
		twiceArea = -twiceArea
	}

	return (twiceArea+boundary)/2 + 1
}
