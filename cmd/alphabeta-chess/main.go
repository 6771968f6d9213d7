// alphabeta-chess analyses chess positions and plays games with a
// fixed-depth alpha-beta search.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/alphabeta-chess/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("alphabeta-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run dispatches to the mode selected on the command line.
func run(ctx context.Context, cfg *config.Config) error {
	pos, err := cfg.Game.Position()
	if err != nil {
		return err
	}

	switch {
	case *perftDepth > 0:
		return runPerft(cfg, pos, *perftDepth)
	case *divideDepth > 0:
		return runDivide(ctx, cfg, pos, *divideDepth)
	case *playMode:
		return runPlay(ctx, cfg, pos, os.Stdin)
	}
	return runAnalyse(ctx, cfg, pos)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	// Colour codes only make sense on a terminal.
	cfg.Output.Colour = false
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: alphabeta-chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Analyses a chess position or plays a game with alpha-beta search.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  (default)   print the best move for the side to move\n")
	fmt.Fprintf(os.Stderr, "  -perft N    count leaf nodes to depth N\n")
	fmt.Fprintf(os.Stderr, "  -divide N   perft split by root move\n")
	fmt.Fprintf(os.Stderr, "  -play       play against the engine; enter moves like e2e4 or e7e8n,\n")
	fmt.Fprintf(os.Stderr, "              'board' to redraw, 'moves' for the move list, 'quit' to stop\n")
}
