// Package game drives one game: it serialises player input against the
// automated search, keeps the move list and reports the outcome after
// every move.
package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/engine"
	"github.com/lgbarn/alphabeta-chess/internal/errors"
	"github.com/lgbarn/alphabeta-chess/internal/search"
)

// Session is a game in progress. All methods are safe for concurrent use;
// a move and a search never overlap.
type Session struct {
	mu        sync.Mutex
	pos       *chess.Position
	searcher  search.Searcher
	automated chess.Colour
	promotion engine.PromotionChooser
	notation  Notation
	outcome   Outcome
	logger    *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithPromotion sets how human pawns are promoted. The default is a queen.
func WithPromotion(choose engine.PromotionChooser) Option {
	return func(s *Session) {
		s.promotion = choose
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession starts a game from pos, which the session takes ownership of.
// The searcher plays the automated colour.
func NewSession(pos *chess.Position, searcher search.Searcher, automated chess.Colour, opts ...Option) *Session {
	s := &Session{
		pos:       pos,
		searcher:  searcher,
		automated: automated,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Position returns a copy of the current position.
func (s *Session) Position() *chess.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.Clone()
}

// Automated returns the colour the searcher plays.
func (s *Session) Automated() chess.Colour {
	return s.automated
}

// Outcome returns the outcome after the last move.
func (s *Session) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Notation returns the move list so far, e.g. "1. e4 e5 2. Nf3".
func (s *Session) Notation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notation.String()
}

// Moves returns the recorded half-moves.
func (s *Session) Moves() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notation.Entries()
}

// LegalMoves lists the destinations of the piece on from, or nil when the
// square is empty or not the side to move.
func (s *Session) LegalMoves(from chess.Coordinate) []chess.Coordinate {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.pos.Board.Get(from)
	if p == nil || p.Colour != s.pos.SideToMove() {
		return nil
	}
	return engine.LegalMoves(s.pos, p)
}

// Play makes the side to move's piece on from go to to. An illegal request
// returns a *errors.MoveError wrapping ErrIllegalMove and leaves the game
// unchanged.
func (s *Session) Play(from, to chess.Coordinate) (Outcome, error) {
	return s.play(from, to, s.promotion, false)
}

// play makes the move. An explicit promotion is only accepted on a pawn
// move to the last rank.
func (s *Session) play(from, to chess.Coordinate, promotion engine.PromotionChooser, explicit bool) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome.Over() {
		return s.outcome, fmt.Errorf("%s: %w", s.outcome, errors.ErrGameOver)
	}
	p := s.pos.Board.Get(from)
	if p == nil || p.Colour != s.pos.SideToMove() {
		return s.outcome, s.moveError(p, from, to)
	}
	if explicit && (p.Kind != chess.Pawn || to.Rank != s.pos.PromotionRank(p.Colour)) {
		return s.outcome, s.moveError(p, from, to)
	}
	mc := engine.MoveContext{Promotion: promotion, Record: s.notation.Record}
	if !engine.Apply(mc, s.pos, p, to) {
		return s.outcome, s.moveError(p, from, to)
	}
	return s.afterMove(p.Colour)
}

// PlayUCI plays a move given in long algebraic form, e.g. "e2e4" or
// "e7e8n". A promotion letter overrides the session's chooser and is
// rejected on any other move.
func (s *Session) PlayUCI(move string) (Outcome, error) {
	if len(move) != 4 && len(move) != 5 {
		return s.Outcome(), fmt.Errorf("move %q: %w", move, errors.ErrIllegalMove)
	}
	wab := s.pos.WhiteAtBottom
	from, err := chess.ParseSquare(move[0:2], wab)
	if err != nil {
		return s.Outcome(), errors.Wrapf(err, "move %q", move)
	}
	to, err := chess.ParseSquare(move[2:4], wab)
	if err != nil {
		return s.Outcome(), errors.Wrapf(err, "move %q", move)
	}
	if len(move) == 4 {
		return s.Play(from, to)
	}
	kind, ok := chess.KindFromLetter(move[4])
	switch {
	case !ok, kind == chess.Pawn, kind == chess.King:
		return s.Outcome(), fmt.Errorf("move %q: promotion %q: %w", move, move[4], errors.ErrIllegalMove)
	}
	return s.play(from, to, func(chess.Colour) chess.Kind { return kind }, true)
}

// ComputerMove searches for and plays the automated side's move.
func (s *Session) ComputerMove(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome.Over() {
		return s.outcome, fmt.Errorf("%s: %w", s.outcome, errors.ErrGameOver)
	}
	if s.pos.SideToMove() != s.automated {
		return s.outcome, fmt.Errorf("%s is not to move: %w", s.automated, errors.ErrIllegalMove)
	}

	res, err := s.searcher.FindBestMove(ctx, s.pos, s.automated)
	if err != nil {
		return s.outcome, err
	}
	s.logger.Printf("%s plays %s (score %.1f, %d nodes)", s.automated, res.Move.UCI(s.pos, chess.Queen), res.Score, res.Nodes)

	if !engine.Apply(engine.MoveContext{Record: s.notation.Record}, s.pos, res.Move.Piece, res.Move.To) {
		return s.outcome, fmt.Errorf("search returned %s: %w", res.Move.UCI(s.pos, chess.Queen), errors.ErrSearchFailed)
	}
	return s.afterMove(s.automated)
}

// afterMove classifies the position for the side now to move.
func (s *Session) afterMove(mover chess.Colour) (Outcome, error) {
	next := mover.Opposite()
	status, err := engine.Classify(s.pos, next)
	if err != nil {
		return s.outcome, err
	}
	s.outcome = Outcome{Status: status, Loser: next}
	if s.outcome.Over() {
		s.notation.Finish(s.outcome)
		s.logger.Printf("game over: %s", s.outcome)
	}
	return s.outcome, nil
}

func (s *Session) moveError(p *chess.Piece, from, to chess.Coordinate) error {
	return &errors.MoveError{
		Err:   errors.ErrIllegalMove,
		Piece: p.String(),
		From:  from.Algebraic(s.pos.WhiteAtBottom),
		To:    to.Algebraic(s.pos.WhiteAtBottom),
		Ply:   s.notation.Len() + 1,
	}
}
