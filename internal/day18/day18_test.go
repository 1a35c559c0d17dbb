package day18_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/internal/day18"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const sample = `R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c7a0)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
`

func TestSolve(t *testing.T) {
	res, err := day18.Solve(strings.NewReader(sample), day18.Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(62), res.Part1)
}

func TestSolve_DecodedRectangle(t *testing.T) {
	// Written plan: 4×3 rectangle. Decoded plan: 11×6 rectangle.
	input := `R 3 (#0000a0)
D 2 (#000051)
L 3 (#0000a2)
U 2 (#000053)
`
	res, err := day18.Solve(strings.NewReader(input), day18.Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Part1)
	assert.Equal(t, int64(66), res.Part2)
}

func TestVolumesAgree(t *testing.T) {
	plan := []day18.Step{
		{Dir: grid.West, Dist: 3},
		{Dir: grid.North, Dist: 4},
		{Dir: grid.East, Dist: 1},
		{Dir: grid.South, Dist: 2},
		{Dir: grid.East, Dist: 2},
		{Dir: grid.South, Dist: 2},
	}
	dug, err := day18.ExcavatedVolume(plan)
	require.NoError(t, err)
	assert.Equal(t, dug, day18.LagoonVolume(plan))
	assert.Equal(t, int64(16), day18.LagoonVolume(plan))
}

func TestExcavatedVolume_NegativeStep(t *testing.T) {
	_, err := day18.ExcavatedVolume([]day18.Step{{Dir: grid.East, Dist: 2}, {Dir: grid.South, Dist: -1}})
	assert.ErrorIs(t, err, day18.ErrBadStep)
}

func TestSolve_Malformed(t *testing.T) {
	for name, input := range map[string]string{
		"empty":         "",
		"fields":        "R 6\n",
		"direction":     "X 6 (#70c710)\n",
		"distance":      "R six (#70c710)\n",
		"color":         "R 6 (#70c71)\n",
		"color digit":   "R 6 (#70c714)\n",
		"color not hex": "R 6 (#zzzzz0)\n",
		"bare color":    "R 6 70c710\n",
		"unclosed":      "R 6 (#70c710\n",
		"unopened":      "R 6 #70c710)\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := day18.Solve(strings.NewReader(input), day18.Options{})
			assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
		})
	}
}
