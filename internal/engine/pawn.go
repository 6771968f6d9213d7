package engine

import "github.com/lgbarn/alphabeta-chess/internal/chess"

// pawnAttacks returns both forward diagonals whether or not they are
// occupied, minus squares held by the pawn's own side.
func pawnAttacks(pos *chess.Position, p *chess.Piece) []chess.Coordinate {
	if p.Coord.Rank == 0 || p.Coord.Rank == chess.BoardSize-1 {
		return nil
	}
	dir := pos.Forward(p.Colour)
	squares := make([]chess.Coordinate, 0, 2)
	for _, df := range []int{-1, 1} {
		to, ok := p.Coord.Offset(dir, df)
		if !ok {
			continue
		}
		if occ := pos.Board.Get(to); occ != nil && occ.Colour == p.Colour {
			continue
		}
		squares = append(squares, to)
	}
	return squares
}

// pawnCandidates returns pushes, captures and en passant captures.
func pawnCandidates(pos *chess.Position, p *chess.Piece) []chess.Coordinate {
	dir := pos.Forward(p.Colour)
	var squares []chess.Coordinate

	if one, ok := p.Coord.Offset(dir, 0); ok && pos.Board.Empty(one) {
		squares = append(squares, one)
		if p.Coord.Rank == pos.PawnRank(p.Colour) {
			if two, ok := one.Offset(dir, 0); ok && pos.Board.Empty(two) {
				squares = append(squares, two)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to, ok := p.Coord.Offset(dir, df)
		if !ok {
			continue
		}
		if occ := pos.Board.Get(to); occ != nil && occ.Colour != p.Colour {
			squares = append(squares, to)
		}
	}

	if to, ok := enPassantTarget(pos, p); ok {
		squares = append(squares, to)
	}
	return squares
}

// enPassantTarget returns the landing square when p may capture the pawn
// recorded in the position's en passant state.
func enPassantTarget(pos *chess.Position, p *chess.Piece) (chess.Coordinate, bool) {
	ep := pos.EnPassant
	if !ep.Allowed || ep.Square.Rank != p.Coord.Rank {
		return chess.Coordinate{}, false
	}
	if df := ep.Square.File - p.Coord.File; df != 1 && df != -1 {
		return chess.Coordinate{}, false
	}
	victim := pos.Board.Get(ep.Square)
	if victim == nil || victim.Kind != chess.Pawn || victim.Colour == p.Colour {
		return chess.Coordinate{}, false
	}
	to, ok := chess.Coord(p.Coord.Rank, ep.Square.File).Offset(pos.Forward(p.Colour), 0)
	if !ok || !pos.Board.Empty(to) {
		return chess.Coordinate{}, false
	}
	return to, true
}

// applyPawn moves a pawn, removing an en passant victim, recording a double
// push and replacing the pawn on its last rank.
func applyPawn(pos *chess.Position, p *chess.Piece, to chess.Coordinate, promotion chess.Kind) {
	from := p.Coord

	if to.File != from.File && pos.Board.Empty(to) {
		if ep, ok := enPassantTarget(pos, p); ok && ep == to {
			pos.Board.Remove(pos.EnPassant.Square)
		}
	}

	pos.EnPassant.Allowed = false
	if d := to.Rank - from.Rank; d == 2 || d == -2 {
		pos.EnPassant = chess.EnPassant{Square: to, Allowed: true}
	}

	pos.Board.Remove(from)
	if to.Rank == pos.PromotionRank(p.Colour) {
		pos.Board.Put(to, chess.NewPiece(promotion, p.Colour, to))
		return
	}
	pos.Board.Put(to, p)
}
