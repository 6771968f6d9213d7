package search

import (
	"context"
	"fmt"
	"math"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/engine"
	"github.com/lgbarn/alphabeta-chess/internal/errors"
	"github.com/lgbarn/alphabeta-chess/internal/worker"
)

// Parallel splits the search at the root: every root move becomes a task
// on a worker pool with its own copy of the position and its own bounds.
// Every candidate score is exact.
type Parallel struct {
	opts Options
}

// NewParallel returns a root-split searcher. Workers defaults to the
// number of CPUs.
func NewParallel(opts Options) *Parallel {
	return &Parallel{opts: opts.withDefaults()}
}

// Workers returns the pool size used per search.
func (s *Parallel) Workers() int { return s.opts.Workers }

// FindBestMove implements Searcher. A task that fails or panics fails the
// whole search with ErrSearchFailed. Cancelling ctx stops tasks that have
// not started yet.
func (s *Parallel) FindBestMove(ctx context.Context, pos *chess.Position, automated chess.Colour) (Result, error) {
	root := pos.Clone()
	r := newRun(s.opts, root, automated)
	moves, err := r.rootMoves(root)
	if err != nil {
		return Result{}, err
	}
	if err := cancelled(ctx); err != nil {
		return Result{}, err
	}

	pool := worker.NewPool(s.opts.Workers, len(moves), func(item worker.WorkItem) worker.ProcessResult {
		score := r.alphaBeta(item.Position, s.opts.Depth-1, math.Inf(-1), math.Inf(1), automated.Opposite())
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Score: score}
	})
	pool.Start()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-done:
		}
	}()

	// The work buffer holds every root move, so TrySubmit only refuses
	// once the pool has been stopped.
	for i, m := range moves {
		task := root.Clone()
		engine.FastApply(task, task.Board.Get(m.From), m.To)
		if !pool.TrySubmit(worker.WorkItem{Index: i, Position: task, Move: m}) {
			break
		}
	}
	pool.Close()
	close(done)

	candidates := make([]Candidate, len(moves))
	received := 0
	for res := range pool.Results() {
		if res.Err != nil {
			return Result{}, fmt.Errorf("root move %s: %w", res.Move.UCI(root, chess.Queen), wrapFailure(res.Err))
		}
		candidates[res.Index] = Candidate{Move: res.Move, Score: res.Score}
		received++
	}
	if err := cancelled(ctx); err != nil {
		return Result{}, err
	}
	if received != len(moves) {
		return Result{}, fmt.Errorf("%d of %d root tasks reported: %w", received, len(moves), errors.ErrSearchFailed)
	}

	res := pick(pos, candidates, r.nodes)
	s.opts.Logger.Printf("parallel depth %d on %d workers: %s scores %.1f over %d root moves, %d nodes",
		s.opts.Depth, pool.NumWorkers(), res.Move.UCI(pos, chess.Queen), res.Score, len(candidates), res.Nodes)
	return res, nil
}

// wrapFailure makes sure a task error matches ErrSearchFailed.
func wrapFailure(err error) error {
	if errors.Is(err, errors.ErrSearchFailed) {
		return err
	}
	return fmt.Errorf("%v: %w", err, errors.ErrSearchFailed)
}
