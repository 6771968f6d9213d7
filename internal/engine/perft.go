package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth,
// promoting to queens only. pos is restored before returning.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	colour := pos.SideToMove()
	var nodes uint64
	for _, p := range pos.Board.PiecesOf(colour) {
		for _, to := range LegalMoves(pos, p) {
			if depth == 1 {
				nodes++
				continue
			}
			from := p.Coord
			snap := Make(pos, p, to, chess.Queen)
			nodes += Perft(pos, depth-1)
			pos.UndoMove(snap, p, from)
		}
	}
	return nodes
}

// DivideEntry is the subtree size below one root move.
type DivideEntry struct {
	Move  string // long algebraic, e.g. "e2e4"
	Nodes uint64
}

// Divide runs Perft below each root move concurrently, at most workers at a
// time (unlimited when workers < 1). Entries follow move generation order.
func Divide(ctx context.Context, pos *chess.Position, depth, workers int) ([]DivideEntry, error) {
	moves := AllLegalMoves(pos, pos.SideToMove())
	entries := make([]DivideEntry, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, m := range moves {
		i, m := i, m
		name := m.UCI(pos, chess.Queen)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			branch := pos.Clone()
			FastApply(branch, branch.Board.Get(m.From), m.To)
			entries[i] = DivideEntry{Move: name, Nodes: Perft(branch, depth-1)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
