package engine

import "github.com/lgbarn/alphabeta-chess/internal/chess"

// LegalMoves returns the destinations of p that do not leave its own king
// attacked. Each candidate is tried on pos and undone.
func LegalMoves(pos *chess.Position, p *chess.Piece) []chess.Coordinate {
	candidates := rules[p.Kind].candidates(pos, p)
	legal := make([]chess.Coordinate, 0, len(candidates))
	for _, to := range candidates {
		if kingSafeAfter(pos, p, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// IsLegal reports whether p may move to to.
func IsLegal(pos *chess.Position, p *chess.Piece, to chess.Coordinate) bool {
	for _, sq := range rules[p.Kind].candidates(pos, p) {
		if sq == to {
			return kingSafeAfter(pos, p, to)
		}
	}
	return false
}

// kingSafeAfter makes the move, counts enemy attackers on the mover's king
// and restores pos.
func kingSafeAfter(pos *chess.Position, p *chess.Piece, to chess.Coordinate) bool {
	from := p.Coord
	snap := Make(pos, p, to, chess.Queen)
	safe := true
	if king := pos.Board.King(p.Colour); king != nil {
		safe = CountAttackers(pos, king.Coord, p.Colour.Opposite()) == 0
	}
	pos.UndoMove(snap, p, from)
	return safe
}

// AllLegalMoves returns every legal move of the colour, pieces in board
// order and destinations in generation order.
func AllLegalMoves(pos *chess.Position, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, p := range pos.Board.PiecesOf(colour) {
		for _, to := range LegalMoves(pos, p) {
			moves = append(moves, chess.NewMove(p, to))
		}
	}
	return moves
}

// AllLegalMoveCount returns the number of legal moves of the colour.
func AllLegalMoveCount(pos *chess.Position, colour chess.Colour) int {
	n := 0
	for _, p := range pos.Board.PiecesOf(colour) {
		n += len(LegalMoves(pos, p))
	}
	return n
}

// HasLegalMoves returns true if the colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for _, p := range pos.Board.PiecesOf(colour) {
		for _, to := range rules[p.Kind].candidates(pos, p) {
			if kingSafeAfter(pos, p, to) {
				return true
			}
		}
	}
	return false
}
