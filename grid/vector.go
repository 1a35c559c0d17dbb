package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vector is a signed 2D displacement.
type Vector struct {
	DX, DY int
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.DX + w.DX, v.DY + w.DY}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.DX - w.DX, v.DY - w.DY}
}

// Scale multiplies both components by k.
func (v Vector) Scale(k int) Vector {
	return Vector{v.DX * k, v.DY * k}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// ManhattanDistance returns |DX| + |DY|.
func (v Vector) ManhattanDistance() int {
	return abs(v.DX) + abs(v.DY)
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Direction classifies a purely horizontal or purely vertical vector.
// Zero and diagonal vectors report false.
func (v Vector) Direction() (Direction, bool) {
	switch {
	case v.DX == 0 && v.DY < 0:
		return North, true
	case v.DX == 0 && v.DY > 0:
		return South, true
	case v.DY == 0 && v.DX > 0:
		return East, true
	case v.DY == 0 && v.DX < 0:
		return West, true
	}
	return 0, false
}

func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d)", v.DX, v.DY)
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
