package gridgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/grid"
)

var diagonals = []grid.Vector{{DX: 1, DY: -1}, {DX: 1, DY: 1}, {DX: -1, DY: 1}, {DX: -1, DY: -1}}

// NewGridGraph wraps a non-empty rectangular grid.
// Returns ErrEmptyGrid if the grid has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
func NewGridGraph[T any](g *grid.Grid[T], opts GridOptions[T]) (*GridGraph[T], error) {
	if g == nil || g.Height() == 0 || g.Width() == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		if g.RowLen(y) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, g.RowLen(y), w)
		}
	}
	offsets := make([]grid.Vector, 0, 8)
	for _, d := range grid.All() {
		offsets = append(offsets, d.UnitVector())
	}
	if opts.Conn == Conn8 {
		offsets = append(offsets, diagonals...)
	}
	open := opts.Open
	if open == nil {
		open = func(T) bool { return true }
	}

	return &GridGraph[T]{
		Width:   w,
		Height:  h,
		Conn:    opts.Conn,
		cells:   g,
		open:    open,
		offsets: offsets,
	}, nil
}

// InBounds reports whether p lies within the grid boundaries.
func (gg *GridGraph[T]) InBounds(p grid.Position) bool {
	return p.X < gg.Width && p.Y < gg.Height
}

// IsOpen reports whether p is in bounds and its cell passes the Open predicate.
func (gg *GridGraph[T]) IsOpen(p grid.Position) bool {
	v, ok := gg.cells.Get(p)

	return ok && gg.open(v)
}

// Neighbors returns the open cells adjacent to p under gg.Conn, in
// connectivity order.
func (gg *GridGraph[T]) Neighbors(p grid.Position) []grid.Position {
	out := make([]grid.Position, 0, len(gg.offsets))
	for _, off := range gg.offsets {
		n, err := p.Add(off)
		if err != nil || !gg.IsOpen(n) {
			continue
		}
		out = append(out, n)
	}

	return out
}

// VertexID formats the graph vertex identifier "x,y" for p.
func VertexID(p grid.Position) string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// ParseVertexID is the inverse of VertexID.
func ParseVertexID(id string) (grid.Position, error) {
	xs, ys, ok := strings.Cut(id, ",")
	if !ok {
		return grid.Position{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return grid.Position{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}

	return grid.Position{X: x, Y: y}, nil
}

// ToCoreGraph converts the open cells into an unweighted, undirected
// *core.Graph. Each cell becomes a vertex "x,y" with metadata {x, y};
// neighboring open cells are joined by one edge.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph[T]) ToCoreGraph() *core.Graph {
	g := core.NewGraph()
	for p, v := range gg.cells.Cells() {
		if !gg.open(v) {
			continue
		}
		id := VertexID(p)
		_ = g.AddVertex(id)
		if vx, err := g.Vertex(id); err == nil {
			vx.Metadata["x"] = p.X
			vx.Metadata["y"] = p.Y
		}
	}
	for p, v := range gg.cells.Cells() {
		if !gg.open(v) {
			continue
		}
		for _, n := range gg.Neighbors(p) {
			if n.Less(p) {
				continue // added from n
			}
			_, _ = g.AddEdge(VertexID(p), VertexID(n), 0)
		}
	}

	return g
}
