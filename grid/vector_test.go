package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/grid"
)

// TestVector_Arithmetic covers Add, Sub, Scale and ManhattanDistance.
func TestVector_Arithmetic(t *testing.T) {
	v := grid.Vector{DX: 3, DY: -2}
	w := grid.Vector{DX: -1, DY: 5}

	assert.Equal(t, grid.Vector{DX: 2, DY: 3}, v.Add(w))
	assert.Equal(t, grid.Vector{DX: 4, DY: -7}, v.Sub(w))
	assert.Equal(t, grid.Vector{DX: -9, DY: 6}, v.Scale(-3))
	assert.Equal(t, grid.Vector{DX: -3, DY: 2}, v.Neg())
	assert.Equal(t, 5, v.ManhattanDistance())
	assert.Equal(t, 0, grid.Vector{}.ManhattanDistance())
}

// TestVector_Direction checks the partial classification into headings.
func TestVector_Direction(t *testing.T) {
	cases := []struct {
		name string
		v    grid.Vector
		want grid.Direction
		ok   bool
	}{
		{"North", grid.Vector{DX: 0, DY: -4}, grid.North, true},
		{"South", grid.Vector{DX: 0, DY: 1}, grid.South, true},
		{"East", grid.Vector{DX: 7, DY: 0}, grid.East, true},
		{"West", grid.Vector{DX: -1, DY: 0}, grid.West, true},
		{"Zero", grid.Vector{}, 0, false},
		{"Diagonal", grid.Vector{DX: 1, DY: 1}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := tc.v.Direction()
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, d)
			}
		})
	}
}

// TestVector_CardinalRoundTrip: for every cardinal vector v, scaling the unit
// vector of v's direction by v's magnitude reproduces v.
func TestVector_CardinalRoundTrip(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for _, v := range []grid.Vector{{DX: n}, {DX: -n}, {DY: n}, {DY: -n}} {
			d, ok := v.Direction()
			require.True(t, ok, "vector %v", v)
			assert.Equal(t, v, d.UnitVector().Scale(v.ManhattanDistance()))
		}
	}
}

// TestDirection_Turns verifies the fixed turn table and its inverses.
func TestDirection_Turns(t *testing.T) {
	assert.Equal(t, grid.West, grid.North.Turned(grid.Left))
	assert.Equal(t, grid.East, grid.North.Turned(grid.Right))
	assert.Equal(t, grid.North, grid.East.Turned(grid.Left))
	assert.Equal(t, grid.South, grid.East.Turned(grid.Right))
	assert.Equal(t, grid.East, grid.South.Turned(grid.Left))
	assert.Equal(t, grid.South, grid.West.Turned(grid.Left))

	for _, d := range grid.All() {
		assert.Equal(t, d, d.Turned(grid.Forward))
		assert.Equal(t, d, d.Turned(grid.Backward).Turned(grid.Backward), "double reversal of %v", d)
		assert.Equal(t, d.Opposite(), d.Turned(grid.Backward))
		for _, r := range []grid.RelativeDirection{grid.Left, grid.Right} {
			assert.Equal(t, d, d.Turned(r).Turned(r.Opposite()), "%v turned %v and back", d, r)
		}
		// Unit vectors of opposite headings cancel out.
		assert.True(t, d.UnitVector().Add(d.Opposite().UnitVector()).IsZero())
	}
}

// TestDirection_AllOrder pins the enumeration order used for tie-breaking.
func TestDirection_AllOrder(t *testing.T) {
	assert.Equal(t, [4]grid.Direction{grid.North, grid.South, grid.East, grid.West}, grid.All())
	assert.Equal(t, grid.Vector{DX: 0, DY: -1}, grid.North.UnitVector())
	assert.Equal(t, grid.Vector{DX: 0, DY: 1}, grid.South.UnitVector())
	assert.Equal(t, grid.Vector{DX: 1, DY: 0}, grid.East.UnitVector())
	assert.Equal(t, grid.Vector{DX: -1, DY: 0}, grid.West.UnitVector())
	assert.Equal(t, "West", grid.West.String())
}
