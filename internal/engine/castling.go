package engine

import "github.com/lgbarn/alphabeta-chess/internal/chess"

var castleSides = []chess.CastleSide{chess.Kingside, chess.Queenside}

// kingCandidates returns the adjacent squares plus any castling destination.
func kingCandidates(pos *chess.Position, p *chess.Piece) []chess.Coordinate {
	squares := kingAttacks(pos, p)
	for _, side := range castleSides {
		if canCastle(pos, p, side) {
			squares = append(squares, pos.Castling(p.Colour, side).KingTo)
		}
	}
	return squares
}

// canCastle requires an unmoved king and rook on their home squares, empty
// squares between them, and no attack on the king's start, transit or
// destination square.
func canCastle(pos *chess.Position, king *chess.Piece, side chess.CastleSide) bool {
	g := pos.Castling(king.Colour, side)
	if king.Coord != g.KingFrom || !pos.CanStillCastle(king.Colour, side) {
		return false
	}
	for _, sq := range g.Between {
		if !pos.Board.Empty(sq) {
			return false
		}
	}
	enemy := king.Colour.Opposite()
	for _, sq := range g.Safe {
		if CountAttackers(pos, sq, enemy) > 0 {
			return false
		}
	}
	return true
}

// castleSideFor returns the side being castled when a king moves from its
// home square to a castling destination.
func castleSideFor(pos *chess.Position, king *chess.Piece, to chess.Coordinate) (chess.CastleSide, bool) {
	for _, side := range castleSides {
		g := pos.Castling(king.Colour, side)
		if king.Coord == g.KingFrom && to == g.KingTo {
			return side, true
		}
	}
	return chess.NoCastle, false
}

// applyKing moves the king. A two-square move along the home rank also
// moves the rook and starts the post-castle counter.
func applyKing(pos *chess.Position, p *chess.Piece, to chess.Coordinate, _ chess.Kind) {
	pos.EnPassant.Allowed = false

	side, castling := castleSideFor(pos, p, to)
	if castling {
		g := pos.Castling(p.Colour, side)
		if rook := pos.Board.Remove(g.RookFrom); rook != nil {
			pos.Board.Put(g.RookTo, rook)
			rook.Moved++
		}
		p.Castled = true
		p.CastleSide = side
		p.SinceCastle = 0
	} else if p.SinceCastle >= 0 {
		p.SinceCastle++
	}

	pos.Board.Remove(p.Coord)
	pos.Board.Put(to, p)
	p.Moved++
}
