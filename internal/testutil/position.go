package testutil

import (
	"testing"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
)

// Well-known positions used across packages.
const (
	// KiwipeteFEN exercises castling, pins and en passant.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// EndgameFEN has rank pins around en passant.
	EndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// FoolsMateFEN is checkmate with White to move.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// StalemateFEN is stalemate with Black to move.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// MateInOneFEN is a back-rank mate in one for White: Ra8#.
	MateInOneFEN = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"

	// HangingQueenFEN leaves Black's queen en prise to the e4 pawn.
	HangingQueenFEN = "rnb1kbnr/pppp1ppp/8/3q4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3"
)

// MustPosition parses fen with White at the bottom or fails the test.
func MustPosition(t testing.TB, fen string) *chess.Position {
	t.Helper()
	return MustPositionOriented(t, fen, true)
}

// MustPositionOriented parses fen with the given orientation or fails the test.
func MustPositionOriented(t testing.TB, fen string, whiteAtBottom bool) *chess.Position {
	t.Helper()
	pos, err := chess.ParseFEN(fen, whiteAtBottom)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return pos
}

// Square converts an algebraic square name for pos's orientation or fails the test.
func Square(t testing.TB, pos *chess.Position, name string) chess.Coordinate {
	t.Helper()
	c, err := chess.ParseSquare(name, pos.WhiteAtBottom)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", name, err)
	}
	return c
}

// PieceAt returns the piece on the named square or fails the test.
func PieceAt(t testing.TB, pos *chess.Position, name string) *chess.Piece {
	t.Helper()
	p := pos.Board.Get(Square(t, pos, name))
	if p == nil {
		t.Fatalf("no piece on %s in %s", name, pos.FEN())
	}
	return p
}

// Squares names each coordinate for pos's orientation, e.g. for comparing
// destination sets against literals.
func Squares(pos *chess.Position, coords []chess.Coordinate) []string {
	names := make([]string, len(coords))
	for i, c := range coords {
		names[i] = c.Algebraic(pos.WhiteAtBottom)
	}
	return names
}

// PieceState is the comparable part of a piece, for before/after checks.
type PieceState struct {
	Kind        chess.Kind
	Colour      chess.Colour
	Coord       chess.Coordinate
	Moved       int
	Castled     bool
	CastleSide  chess.CastleSide
	SinceCastle int
}

// State lists every piece's state in board order.
func State(pos *chess.Position) []PieceState {
	var states []PieceState
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range pos.Board.PiecesOf(colour) {
			states = append(states, PieceState{
				Kind:        p.Kind,
				Colour:      p.Colour,
				Coord:       p.Coord,
				Moved:       p.Moved,
				Castled:     p.Castled,
				CastleSide:  p.CastleSide,
				SinceCastle: p.SinceCastle,
			})
		}
	}
	return states
}
