package grid

import (
	"iter"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Grid is a row-major 2D container addressed by Position.
// Rows may differ in length; lookups are checked against the row they hit.
// The zero value is an empty grid ready for AppendRow.
type Grid[T any] struct {
	rows [][]T
}

// New wraps rows without copying them; the Grid takes ownership.
func New[T any](rows [][]T) *Grid[T] {
	return &Grid[T]{rows: rows}
}

// Filled returns a width×height grid with every cell set to v.
func Filled[T any](width, height int, v T) *Grid[T] {
	rows := make([][]T, height)
	for y := range rows {
		row := make([]T, width)
		for x := range row {
			row[x] = v
		}
		rows[y] = row
	}
	return &Grid[T]{rows: rows}
}

// AppendRow adds row below the existing rows.
func (g *Grid[T]) AppendRow(row []T) {
	g.rows = append(g.rows, row)
}

// Height is the number of rows.
func (g *Grid[T]) Height() int {
	return len(g.rows)
}

// Width is the length of the first row, or 0 for an empty grid.
func (g *Grid[T]) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// RowLen returns the length of row y, or 0 when y is out of range.
func (g *Grid[T]) RowLen(y int) int {
	if y < 0 || y >= len(g.rows) {
		return 0
	}
	return len(g.rows[y])
}

// Row returns row y without copying it. It panics if y is out of range.
func (g *Grid[T]) Row(y int) []T {
	return g.rows[y]
}

// InBounds reports whether p addresses an existing cell.
func (g *Grid[T]) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.Y < len(g.rows) && p.X < len(g.rows[p.Y])
}

// Get returns the cell at p and whether it exists.
func (g *Grid[T]) Get(p Position) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.rows[p.Y][p.X], true
}

// GetMut returns a pointer to the cell at p for in-place mutation.
func (g *Grid[T]) GetMut(p Position) (*T, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	return &g.rows[p.Y][p.X], true
}

// Set stores v at p, reporting false when p is out of bounds.
func (g *Grid[T]) Set(p Position, v T) bool {
	cell, ok := g.GetMut(p)
	if ok {
		*cell = v
	}
	return ok
}

// Wrapped projects a point of the infinitely tiled plane onto the grid using
// the Euclidean remainder of Height and Width (the first row's length).
// The result is only meaningful for rectangular grids. An empty grid maps
// everything to the zero Position.
func (g *Grid[T]) Wrapped(p SignedPosition) Position {
	h, w := g.Height(), g.Width()
	if h == 0 || w == 0 {
		return Position{}
	}
	return Position{X: euclidMod(p.X, w), Y: euclidMod(p.Y, h)}
}

// Cells yields every position and value in row-major order.
func (g *Grid[T]) Cells() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for y, row := range g.rows {
			for x, v := range row {
				if !yield(Position{x, y}, v) {
					return
				}
			}
		}
	}
}

// Find returns the first position, in row-major order, whose cell matches pred.
func (g *Grid[T]) Find(pred func(T) bool) (Position, bool) {
	for p, v := range g.Cells() {
		if pred(v) {
			return p, true
		}
	}
	return Position{}, false
}

// Count returns the number of cells matching pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.Cells() {
		if pred(v) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the cell storage.
func (g *Grid[T]) Clone() *Grid[T] {
	rows := make([][]T, len(g.rows))
	for y, row := range g.rows {
		rows[y] = slices.Clone(row)
	}
	return &Grid[T]{rows: rows}
}

// Format renders the grid one line per row using glyph for each cell.
func (g *Grid[T]) Format(glyph func(T) rune) string {
	var sb strings.Builder
	for y, row := range g.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			sb.WriteRune(glyph(v))
		}
	}
	return sb.String()
}

// Fingerprint hashes every cell with xxhash. encode appends the bytes of a
// single cell to dst. Row boundaries are part of the digest, so grids that
// differ only in shape hash differently.
func (g *Grid[T]) Fingerprint(encode func(dst []byte, cell T) []byte) uint64 {
	d := xxhash.New()
	var buf []byte
	for _, row := range g.rows {
		buf = buf[:0]
		for _, v := range row {
			buf = encode(buf, v)
		}
		buf = append(buf, '\n')
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

// Equal reports whether a and b have the same shape and cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	return slices.EqualFunc(a.rows, b.rows, func(x, y []T) bool {
		return slices.Equal(x, y)
	})
}

func euclidMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
