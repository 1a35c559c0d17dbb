// Package cli is the shared main of the day binaries: flags, config,
// logging, and printing the two answers.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/logging"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

// SolveFunc solves one day from its input using cfg and logger.
type SolveFunc func(r io.Reader, cfg *config.Config, logger *zap.Logger) (puzzle.Result, error)

// Main runs the named day against stdin and exits with Run's status.
func Main(name string, solve SolveFunc) {
	os.Exit(Run(name, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, solve))
}

// Run parses args, solves the puzzle read from stdin and prints
// "Part 1: <n>" and "Part 2: <n>" to stdout. It returns the process exit
// status: 0 on success, 1 on solve failure, 2 on usage or setup errors.
func Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer, solve SolveFunc) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "optional YAML file with solver tunables")
	logLevel := fs.String("log-level", "", "override log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			return 2
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 2
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("day", name))

	logger.Info("solving", zap.String("config", *configPath))
	began := time.Now()
	res, err := solve(stdin, cfg, logger)
	if err != nil {
		logger.Error("solve failed", zap.Error(err))
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}
	logger.Info("solved", zap.Duration("took", time.Since(began)))

	fmt.Fprintf(stdout, "Part 1: %d\n", res.Part1)
	fmt.Fprintf(stdout, "Part 2: %d\n", res.Part2)

	return 0
}
