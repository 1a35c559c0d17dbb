// Package gridgraph treats a rectangular grid.Grid as a graph, so that grid
// puzzles can reuse the generic graph algorithms of this module.
//
// What:
//
//   - GridGraph wraps a *grid.Grid[T] with an Open predicate over cells.
//   - Neighbors and ConnectedComponents work directly on positions.
//   - ToCoreGraph emits an unweighted undirected *core.Graph of open cells.
//   - Contract collapses corridors between junctions into weighted directed
//     edges, optionally constrained per step (one-way slopes).
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbors).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//   - Contract:            O(W×H),   Memory: O(J + E) for J junctions.
//
// Options:
//
//   - GridOptions.Open: which cells take part; nil means every cell.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadVertexID: a vertex ID does not encode a position.
package gridgraph
