package gridgraph

import (
	"errors"

	"github.com/katalvlaran/aoc2023/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadVertexID indicates a vertex ID that is not of the form "x,y".
	ErrBadVertexID = errors.New("gridgraph: malformed vertex ID")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses the cardinal directions in grid.All order: N, S, E, W.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals after the cardinals: NE, SE, SW, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions[T any] struct {
	// Open reports whether a cell takes part in the graph. Nil means all cells.
	Open func(T) bool
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// ContractOptions tunes GridGraph.Contract.
type ContractOptions struct {
	// CanStep reports whether a walker standing on from may move in
	// direction d. Nil allows every move between open cells.
	CanStep func(from grid.Position, d grid.Direction) bool
	// Keep lists extra positions that become vertices even though they are
	// not junctions, typically the entry and exit of a maze.
	Keep []grid.Position
}

// GridGraph treats a rectangular grid as a graph. It does not copy the grid;
// callers must not resize it while the GridGraph is in use.
type GridGraph[T any] struct {
	Width, Height int
	Conn          Connectivity

	cells   *grid.Grid[T]
	open    func(T) bool
	offsets []grid.Vector
}
