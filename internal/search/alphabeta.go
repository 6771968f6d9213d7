package search

import (
	"context"
	"math"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/engine"
)

// AlphaBeta is the single-threaded searcher. It shares its bounds across
// root moves, so root candidates after the first may carry a bound rather
// than an exact score; a bound never exceeds the best score found.
type AlphaBeta struct {
	opts Options
}

// NewAlphaBeta returns a sequential searcher. Unset options take defaults.
func NewAlphaBeta(opts Options) *AlphaBeta {
	return &AlphaBeta{opts: opts.withDefaults()}
}

// Depth returns the search depth in plies.
func (s *AlphaBeta) Depth() int { return s.opts.Depth }

// FindBestMove implements Searcher. Cancellation is checked between root
// moves.
func (s *AlphaBeta) FindBestMove(ctx context.Context, pos *chess.Position, automated chess.Colour) (Result, error) {
	work := pos.Clone()
	r := newRun(s.opts, work, automated)
	moves, err := r.rootMoves(work)
	if err != nil {
		return Result{}, err
	}

	alpha, beta := math.Inf(-1), math.Inf(1)
	candidates := make([]Candidate, 0, len(moves))
	for _, m := range moves {
		if err := cancelled(ctx); err != nil {
			return Result{}, err
		}
		from := m.From
		snap := engine.Make(work, m.Piece, m.To, chess.Queen)
		score := r.alphaBeta(work, s.opts.Depth-1, alpha, beta, automated.Opposite())
		work.UndoMove(snap, m.Piece, from)

		candidates = append(candidates, Candidate{Move: m, Score: score})
		alpha = math.Max(alpha, score)
	}

	res := pick(pos, candidates, r.nodes)
	s.opts.Logger.Printf("alpha-beta depth %d: %s scores %.1f over %d root moves, %d nodes",
		s.opts.Depth, res.Move.UCI(pos, chess.Queen), res.Score, len(candidates), res.Nodes)
	return res, nil
}
