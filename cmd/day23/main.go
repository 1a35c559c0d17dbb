// Command day23 reads a puzzle input on stdin and prints both answers.
package main

import (
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/day23"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func main() {
	cli.Main("day23", func(r io.Reader, _ *config.Config, logger *zap.Logger) (puzzle.Result, error) {
		return day23.Solve(r, day23.Options{Logger: logger})
	})
}
