package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/config"
	"github.com/lgbarn/alphabeta-chess/internal/engine"
	"github.com/lgbarn/alphabeta-chess/internal/game"
	"github.com/lgbarn/alphabeta-chess/internal/search"
)

// newSearcher builds the searcher described by cfg.
func newSearcher(cfg *config.Config) (search.Searcher, error) {
	opts, err := cfg.Search.Options(cfg.Logger())
	if err != nil {
		return nil, err
	}
	return search.New(opts)
}

// runAnalyse prints the best move for the side to move, or for the
// configured side when one is named.
func runAnalyse(ctx context.Context, cfg *config.Config, pos *chess.Position) error {
	s, err := newSearcher(cfg)
	if err != nil {
		return err
	}
	automated := pos.SideToMove()
	if cfg.Game.Automated != "auto" {
		if automated, err = cfg.Game.AutomatedColour(); err != nil {
			return err
		}
	}

	w := cfg.OutputFile
	if cfg.Output.ShowBoard {
		renderBoard(w, pos, cfg.Output.Colour)
		fmt.Fprintln(w)
	}

	res, err := s.FindBestMove(ctx, pos, automated)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "bestmove %s (%s) score %.1f\n",
		res.Move.UCI(pos, chess.Queen), game.SAN(pos, res.Move, chess.Queen), res.Score)
	if cfg.Verbosity >= config.Normal {
		fmt.Fprintf(w, "%d nodes at depth %d\n", res.Nodes, cfg.Search.Depth)
	}
	if cfg.Output.ShowCandidates {
		for _, c := range res.Candidates {
			fmt.Fprintf(w, "  %-6s %10.1f\n", c.Move.UCI(pos, chess.Queen), c.Score)
		}
	}
	return nil
}

// runPerft prints the perft count of pos.
func runPerft(cfg *config.Config, pos *chess.Position, depth int) error {
	fmt.Fprintf(cfg.OutputFile, "perft %d: %d\n", depth, engine.Perft(pos, depth))
	return nil
}

// runDivide prints the perft count below each root move and the total.
func runDivide(ctx context.Context, cfg *config.Config, pos *chess.Position, depth int) error {
	entries, err := engine.Divide(ctx, pos, depth, cfg.Search.Workers)
	if err != nil {
		return err
	}
	var total uint64
	for _, e := range entries {
		fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.Move, e.Nodes)
		total += e.Nodes
	}
	fmt.Fprintf(cfg.OutputFile, "\n%d moves, %d nodes\n", len(entries), total)
	return nil
}

// runPlay plays a game: the engine moves for the automated side and the
// player's moves are read from in, one per line.
func runPlay(ctx context.Context, cfg *config.Config, pos *chess.Position, in io.Reader) error {
	s, err := newSearcher(cfg)
	if err != nil {
		return err
	}
	automated, err := cfg.Game.AutomatedColour()
	if err != nil {
		return err
	}
	session := game.NewSession(pos, s, automated, game.WithLogger(cfg.Logger()))

	w := cfg.OutputFile
	showBoard := func() {
		if cfg.Output.ShowBoard {
			renderBoard(w, session.Position(), cfg.Output.Colour)
		}
	}
	showBoard()

	scanner := bufio.NewScanner(in)
	for !session.Outcome().Over() {
		if session.Position().SideToMove() == automated {
			if _, err := session.ComputerMove(ctx); err != nil {
				return err
			}
			moves := session.Moves()
			fmt.Fprintf(w, "engine plays %s\n", moves[len(moves)-1].SAN)
			showBoard()
			continue
		}

		fmt.Fprintf(w, "%s> ", session.Position().SideToMove())
		if !scanner.Scan() {
			fmt.Fprintln(w)
			break
		}
		switch line := strings.TrimSpace(scanner.Text()); line {
		case "":
		case "quit", "exit":
			fmt.Fprintln(w, session.Notation())
			return nil
		case "board":
			renderBoard(w, session.Position(), cfg.Output.Colour)
		case "moves":
			fmt.Fprintln(w, session.Notation())
		default:
			if _, err := session.PlayUCI(line); err != nil {
				fmt.Fprintf(w, "%v\n", err)
				continue
			}
			showBoard()
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if out := session.Outcome(); out.Over() {
		fmt.Fprintf(w, "%s\n", out)
	}
	fmt.Fprintln(w, session.Notation())
	return nil
}
