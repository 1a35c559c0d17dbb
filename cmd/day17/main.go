// Command day17 reads a puzzle input on stdin and prints both answers.
package main

import (
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/day17"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func main() {
	cli.Main("day17", func(r io.Reader, cfg *config.Config, logger *zap.Logger) (puzzle.Result, error) {
		opts := cfg.Day17
		opts.Logger = logger
		return day17.Solve(r, opts)
	})
}
