// Package puzzle holds the input plumbing shared by the daily solvers:
// line reading, character grids, blank-line blocks and number parsing.
package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/aoc2023/grid"
)

// ErrMalformedInput is wrapped by every solver error caused by bad input.
var ErrMalformedInput = errors.New("puzzle: malformed input")

// Result carries the answers to both parts of a day.
type Result struct {
	Part1 int64
	Part2 int64
}

// Malformed builds an ErrMalformedInput error pointing at a 1-based line.
func Malformed(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, line, fmt.Sprintf(format, args...))
}

// ReadLines reads r to the end and returns its lines without terminators.
// Trailing blank lines are dropped.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: read input: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// Blocks splits lines into groups separated by blank lines. firstLine holds
// the 1-based line number of each block's first line.
func Blocks(lines []string) (blocks [][]string, firstLine []int) {
	var cur []string
	start := 1
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				firstLine = append(firstLine, start)
			}
			cur = nil
			continue
		}
		if cur == nil {
			start = i + 1
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
		firstLine = append(firstLine, start)
	}

	return blocks, firstLine
}

// CharGrid turns lines into a rectangular byte grid. firstLine is used for
// error positions. Every byte must satisfy valid when valid is non-nil.
func CharGrid(lines []string, firstLine int, valid func(byte) bool) (*grid.Grid[byte], error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, Malformed(firstLine, "empty grid")
	}
	g := grid.New[byte](nil)
	w := len(lines[0])
	for y, l := range lines {
		if len(l) != w {
			return nil, Malformed(firstLine+y, "row has %d cells, want %d", len(l), w)
		}
		if valid != nil {
			for x := 0; x < len(l); x++ {
				if !valid(l[x]) {
					return nil, Malformed(firstLine+y, "unexpected %q at column %d", l[x], x+1)
				}
			}
		}
		g.AppendRow([]byte(l))
	}

	return g, nil
}

// ParseInt parses s in the given base into any integer type, reporting
// overflow of T as an error.
func ParseInt[T constraints.Integer](s string, base int) (T, error) {
	var zero T
	n, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return zero, err
	}
	if T(n) < 0 != (n < 0) || int64(T(n)) != n {
		return zero, fmt.Errorf("puzzle: %q overflows %T", s, zero)
	}

	return T(n), nil
}

// ParseInts parses every whitespace-separated field of s as a base-10 integer.
func ParseInts[T constraints.Integer](s string) ([]T, error) {
	fields := strings.Fields(s)
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		n, err := ParseInt[T](f, 10)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}
