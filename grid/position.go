package grid

import (
	"cmp"
	"fmt"
)

// Position is a cell address inside a Grid. Both coordinates are
// non-negative; arithmetic that would break this returns ErrOutOfRange.
type Position struct {
	X, Y int
}

// SignedPosition is a cell address on an unbounded plane.
type SignedPosition struct {
	X, Y int
}

// Add returns p + v, or ErrOutOfRange if either coordinate would be negative.
func (p Position) Add(v Vector) (Position, error) {
	x, y := p.X+v.DX, p.Y+v.DY
	if x < 0 || y < 0 {
		return Position{}, fmt.Errorf("%w: %v + %v", ErrOutOfRange, p, v)
	}
	return Position{x, y}, nil
}

// SubVector returns p - v with the same range rule as Add.
func (p Position) SubVector(v Vector) (Position, error) {
	return p.Add(v.Neg())
}

// Sub returns the displacement from q to p.
func (p Position) Sub(q Position) Vector {
	return Vector{p.X - q.X, p.Y - q.Y}
}

// Step moves one cell toward d.
func (p Position) Step(d Direction) (Position, error) {
	return p.Add(d.UnitVector())
}

// ToSigned widens p onto the unbounded plane.
func (p Position) ToSigned() SignedPosition {
	return SignedPosition(p)
}

// Compare orders positions row-major: Y first, then X.
func (p Position) Compare(q Position) int {
	if c := cmp.Compare(p.Y, q.Y); c != 0 {
		return c
	}
	return cmp.Compare(p.X, q.X)
}

// Less reports whether p sorts before q in row-major order.
func (p Position) Less(q Position) bool {
	return p.Compare(q) < 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p + v. It never fails.
func (p SignedPosition) Add(v Vector) SignedPosition {
	return SignedPosition{p.X + v.DX, p.Y + v.DY}
}

// Sub returns the displacement from q to p.
func (p SignedPosition) Sub(q SignedPosition) Vector {
	return Vector{p.X - q.X, p.Y - q.Y}
}

// ToPosition narrows p, failing with ErrOutOfRange when a coordinate is negative.
func (p SignedPosition) ToPosition() (Position, error) {
	if p.X < 0 || p.Y < 0 {
		return Position{}, fmt.Errorf("%w: %v", ErrOutOfRange, p)
	}
	return Position(p), nil
}

// Compare orders positions row-major: Y first, then X.
func (p SignedPosition) Compare(q SignedPosition) int {
	if c := cmp.Compare(p.Y, q.Y); c != 0 {
		return c
	}
	return cmp.Compare(p.X, q.X)
}

func (p SignedPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
