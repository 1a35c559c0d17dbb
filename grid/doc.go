// Package grid is the coordinate toolkit shared by the grid puzzle solvers.
//
// What:
//
//   - Vector: a signed displacement (DX, DY) with add, subtract, scale and
//     Manhattan distance, plus a partial classification into a Direction.
//   - Direction: North, South, East, West with canonical unit vectors and
//     relative turns (Forward, Backward, Left, Right).
//   - Position: an unsigned cell address. Adding a Vector that would drive a
//     coordinate negative fails with ErrOutOfRange instead of wrapping.
//   - SignedPosition: an address on an unbounded plane, projected back onto a
//     finite Grid with Grid.Wrapped.
//   - Grid[T]: rows of cells addressed by Position, bounds-checked.
//   - Actor: a Position plus heading Vector that can Advance and Turn.
//
// Coordinates are row-major: North decreases Y, matching the order in which
// rows are read from text input.
//
// Complexity:
//
//   - All Vector, Direction, Position and Actor operations are O(1).
//   - Grid.Get, Grid.GetMut, Grid.Wrapped: O(1).
//   - Grid.Clone, Grid.Fingerprint, Equal: O(W×H).
//
// Errors:
//
//   - ErrOutOfRange: arithmetic would produce a negative coordinate.
//     Callers usually read this as "no such neighbor".
//   - ErrNonCardinal: an Actor was asked to turn while its vector is zero
//     or diagonal.
package grid
