// Package day10 solves "Pipe Maze": the length of the pipe loop through S
// and the number of tiles it encloses.
package day10

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

// pipeEnds lists the two directions each pipe glyph connects.
var pipeEnds = map[byte][2]grid.Direction{
	'|': {grid.North, grid.South},
	'-': {grid.West, grid.East},
	'L': {grid.North, grid.East},
	'J': {grid.North, grid.West},
	'7': {grid.West, grid.South},
	'F': {grid.South, grid.East},
}

func validTile(b byte) bool {
	_, pipe := pipeEnds[b]
	return pipe || b == '.' || b == 'S'
}

// Solve returns the farthest loop distance from S (Part1) and the enclosed
// tile count (Part2).
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
	loop, err := traceLoop(g)
	if err != nil {
		return puzzle.Result{}, err
	}
	log.Debug("loop traced", zap.Int("length", len(loop.order)))

	steps := int64(len(loop.order))

	return puzzle.Result{
		Part1: steps/2 + steps%2,
		Part2: int64(enclosed(g, loop)),
	}, nil
}

// pipeLoop is the closed path through S: tiles in walking order and the
// ends of every loop tile, with S resolved to a real pipe shape.
type pipeLoop struct {
	order []grid.Position
	ends  map[grid.Position][2]grid.Direction
}

func traceLoop(g *grid.Grid[byte]) (*pipeLoop, error) {
	start, ok := g.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		return nil, puzzle.Malformed(1, "no start tile S")
	}
	if g.Count(func(b byte) bool { return b == 'S' }) > 1 {
		return nil, puzzle.Malformed(1, "more than one start tile S")
	}

	var exits []grid.Direction
	for _, d := range grid.All() {
		n, err := start.Step(d)
		if err != nil {
			continue
		}
		tile, _ := g.Get(n)
		if e, ok := pipeEnds[tile]; ok && (e[0] == d.Opposite() || e[1] == d.Opposite()) {
			exits = append(exits, d)
		}
	}
	if len(exits) < 2 {
		return nil, puzzle.Malformed(start.Y+1, "start %v joins %d pipes, want 2", start, len(exits))
	}

	// A pipe may point at S without belonging to the loop; the first exit
	// whose walk returns to S wins.
	var err error
	for _, d := range exits {
		var loop *pipeLoop
		if loop, err = walkLoop(g, start, d); err == nil {
			return loop, nil
		}
	}

	return nil, err
}

// walkLoop follows pipes from start leaving toward exit until it is back at
// start. The ends of S are the exit and the side the walk re-entered from.
func walkLoop(g *grid.Grid[byte], start grid.Position, exit grid.Direction) (*pipeLoop, error) {
	loop := &pipeLoop{
		order: []grid.Position{start},
		ends:  map[grid.Position][2]grid.Direction{},
	}
	walker := grid.NewActor(start, exit)
	for {
		if err := walker.Advance(); err != nil {
			return nil, puzzle.Malformed(walker.Pos.Y+1, "loop leaves the map at %v", walker.Pos)
		}
		heading, _ := walker.Heading()
		if walker.Pos == start {
			loop.ends[start] = [2]grid.Direction{exit, heading.Opposite()}
			return loop, nil
		}
		tile, _ := g.Get(walker.Pos)
		e, ok := pipeEnds[tile]
		switch {
		case !ok:
			return nil, puzzle.Malformed(walker.Pos.Y+1, "loop broken at %v", walker.Pos)
		case e[0] == heading.Opposite():
			walker.Face(e[1])
		case e[1] == heading.Opposite():
			walker.Face(e[0])
		default:
			return nil, puzzle.Malformed(walker.Pos.Y+1, "pipe %q at %v does not connect", tile, walker.Pos)
		}
		loop.order = append(loop.order, walker.Pos)
		loop.ends[walker.Pos] = e
	}
}

const (
	free byte = iota
	wall
	outside
)

// enclosed counts tiles inside the loop. The map is drawn at double
// resolution with a one-cell margin so that the exterior flood can squeeze
// between adjacent pipes that do not connect.
func enclosed(g *grid.Grid[byte], loop *pipeLoop) int {
	fine := grid.Filled(2*g.Width()+1, 2*g.Height()+1, free)
	scale := func(p grid.Position) grid.Position { return grid.Position{X: 2*p.X + 1, Y: 2*p.Y + 1} }
	for _, p := range loop.order {
		c := scale(p)
		fine.Set(c, wall)
		for _, d := range loop.ends[p] {
			if mid, err := c.Step(d); err == nil {
				fine.Set(mid, wall)
			}
		}
	}

	fine.Set(grid.Position{}, outside)
	work := []grid.Position{{}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		for _, d := range grid.All() {
			n, err := p.Step(d)
			if err != nil {
				continue
			}
			if cell, ok := fine.GetMut(n); ok && *cell == free {
				*cell = outside
				work = append(work, n)
			}
		}
	}

	inside := 0
	for p := range g.Cells() {
		if v, _ := fine.Get(scale(p)); v == free {
			inside++
		}
	}

	return inside
}
