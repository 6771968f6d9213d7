// Package search picks a move for the automated side with fixed-depth
// alpha-beta minimax, either sequentially or split at the root across a
// worker pool.
package search

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/engine"
	"github.com/lgbarn/alphabeta-chess/internal/errors"
	"github.com/lgbarn/alphabeta-chess/internal/eval"
	"github.com/lgbarn/alphabeta-chess/internal/ordering"
)

// CheckmateScore is the base score of a mate. Remaining depth is added so a
// mate found nearer the root outranks a deeper one.
const CheckmateScore = 1_000_000

// Candidate is a root move and the score the search gave it.
type Candidate struct {
	Move  chess.Move
	Score float64
}

// Result is the outcome of a search. Move and every candidate refer to the
// pieces of the position passed to FindBestMove.
type Result struct {
	Move       chess.Move
	Score      float64
	Candidates []Candidate
	Nodes      uint64
}

// Searcher selects a move for the automated colour. The position is never
// modified.
type Searcher interface {
	FindBestMove(ctx context.Context, pos *chess.Position, automated chess.Colour) (Result, error)
}

// Options configures a searcher.
type Options struct {
	Depth     int
	Parallel  bool
	Workers   int // 0 means runtime.NumCPU()
	Evaluator eval.Evaluator
	Heuristic ordering.Heuristic
	Logger    *log.Logger
}

// DefaultOptions returns a depth-2 sequential search with the simple
// evaluator and capture ordering.
func DefaultOptions() Options {
	return Options{
		Depth:     2,
		Evaluator: eval.Simple{},
		Heuristic: ordering.CaptureValue{},
	}
}

// New builds the searcher described by opts.
func New(opts Options) (Searcher, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Parallel {
		return NewParallel(opts), nil
	}
	return NewAlphaBeta(opts), nil
}

func (o Options) validate() error {
	if o.Depth < 1 {
		return fmt.Errorf("search depth %d: %w", o.Depth, errors.ErrInvalidConfig)
	}
	if o.Workers < 0 {
		return fmt.Errorf("search workers %d: %w", o.Workers, errors.ErrInvalidConfig)
	}
	if o.Evaluator == nil || o.Heuristic == nil {
		return fmt.Errorf("search needs an evaluator and a heuristic: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// withDefaults fills unset fields so a zero Options is usable.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Depth < 1 {
		o.Depth = d.Depth
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Evaluator == nil {
		o.Evaluator = d.Evaluator
	}
	if o.Heuristic == nil {
		o.Heuristic = d.Heuristic
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard, "", 0)
	}
	return o
}

// run holds the per-call state shared by every node of one search.
type run struct {
	automated chess.Colour
	sign      float64 // +1 when the automated side sits at the top
	evaluator eval.Evaluator
	heuristic ordering.Heuristic
	nodes     uint64
}

func newRun(o Options, pos *chess.Position, automated chess.Colour) *run {
	r := &run{
		automated: automated,
		sign:      1,
		evaluator: o.Evaluator,
		heuristic: o.Heuristic,
	}
	if automated != pos.TopColour() {
		r.sign = -1
	}
	return r
}

// evaluate scores pos from the automated side's point of view.
func (r *run) evaluate(pos *chess.Position) float64 {
	return r.sign * r.evaluator.Evaluate(pos)
}

// terminal scores a node whose mover has no legal moves.
func (r *run) terminal(pos *chess.Position, mover chess.Colour, depth int) float64 {
	if !engine.InCheck(pos, mover) {
		return 0
	}
	mate := float64(CheckmateScore + depth)
	if mover == r.automated {
		return -mate
	}
	return mate
}

// alphaBeta returns the minimax value of pos with mover to play and depth
// plies left. The automated side maximises.
func (r *run) alphaBeta(pos *chess.Position, depth int, alpha, beta float64, mover chess.Colour) float64 {
	atomic.AddUint64(&r.nodes, 1)

	if depth == 0 {
		if !engine.HasLegalMoves(pos, mover) {
			return r.terminal(pos, mover, depth)
		}
		return r.evaluate(pos)
	}

	moves := r.heuristic.Order(pos, pos.Board.PiecesOf(mover))
	if len(moves) == 0 {
		return r.terminal(pos, mover, depth)
	}

	maximizing := mover == r.automated
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}

	for _, m := range moves {
		from := m.From
		snap := engine.Make(pos, m.Piece, m.To, chess.Queen)
		score := r.alphaBeta(pos, depth-1, alpha, beta, mover.Opposite())
		pos.UndoMove(snap, m.Piece, from)

		if maximizing {
			best = math.Max(best, score)
			alpha = math.Max(alpha, best)
		} else {
			best = math.Min(best, score)
			beta = math.Min(beta, best)
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// rootMoves orders the automated side's moves in work, failing with
// ErrGameOver when there are none.
func (r *run) rootMoves(work *chess.Position) ([]chess.Move, error) {
	moves := r.heuristic.Order(work, work.Board.PiecesOf(r.automated))
	if len(moves) == 0 {
		status, err := engine.Classify(work, r.automated)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s has no moves (%s): %w", r.automated, status, errors.ErrGameOver)
	}
	return moves, nil
}

// toCaller re-targets a move found on a copy at the equivalent piece of the
// caller's position.
func toCaller(pos *chess.Position, m chess.Move) chess.Move {
	return chess.Move{Piece: pos.Board.Get(m.From), From: m.From, To: m.To}
}

// pick chooses the first candidate with the highest score.
func pick(pos *chess.Position, candidates []Candidate, nodes uint64) Result {
	res := Result{Score: math.Inf(-1), Nodes: nodes}
	for i := range candidates {
		candidates[i].Move = toCaller(pos, candidates[i].Move)
		if candidates[i].Score > res.Score {
			res.Move = candidates[i].Move
			res.Score = candidates[i].Score
		}
	}
	res.Candidates = candidates
	return res
}

// cancelled wraps a context error for the caller.
func cancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "search aborted")
	}
	return nil
}
