// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/config"
)

var (
	// Position options
	fenString   = flag.String("fen", chess.InitialFEN, "Starting position in FEN")
	blackBottom = flag.Bool("black-bottom", false, "Seat Black at the bottom of the board")
	side        = flag.String("side", "auto", "Side the engine plays: white, black or auto")

	// Search options
	depth     = flag.Int("depth", config.DefaultDepth, "Search depth in plies (1-6)")
	parallel  = flag.Bool("parallel", false, "Split the search at the root across workers")
	workers   = flag.Int("workers", 0, "Number of search workers (0 = auto-detect based on CPU cores)")
	evaluator = flag.String("eval", "simple", "Position evaluator: simple, material")
	heuristic = flag.String("order", "capture", "Move ordering: capture, none")

	// Modes
	perftDepth  = flag.Int("perft", 0, "Count leaf nodes to depth N and exit")
	divideDepth = flag.Int("divide", 0, "Count leaf nodes below each root move to depth N and exit")
	playMode    = flag.Bool("play", false, "Play a game against the engine, reading moves from stdin")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	noColour   = flag.Bool("no-color", false, "Disable terminal colours")
	noBoard    = flag.Bool("noboard", false, "Don't print the board")
	candidates = flag.Bool("candidates", false, "List every root move with its score")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Log search progress")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (results only)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applySearchFlags(cfg)
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Commentary
	}
}

// applyGameFlags configures the position and the engine's side.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.FEN = *fenString
	cfg.Game.WhiteAtBottom = !*blackBottom
	cfg.Game.Automated = *side
}

// applySearchFlags configures the searcher.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Parallel = *parallel
	cfg.Search.Workers = *workers
	cfg.Search.Evaluator = *evaluator
	cfg.Search.Heuristic = *heuristic
}

// applyOutputFlags configures what gets printed.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Colour = !*noColour
	cfg.Output.ShowBoard = !*noBoard && !*quiet
	cfg.Output.ShowCandidates = *candidates
}
