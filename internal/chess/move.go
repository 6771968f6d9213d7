package chess

// Move is an edge in the game tree: a piece and the square it goes to.
// From is the piece's square when the move was generated.
type Move struct {
	Piece *Piece
	From  Coordinate
	To    Coordinate
}

// NewMove creates a move for p from its current square.
func NewMove(p *Piece, to Coordinate) Move {
	return Move{Piece: p, From: p.Coord, To: to}
}

// Equal reports whether both moves use the same piece instance and destination.
func (m Move) Equal(o Move) bool {
	return m.Piece == o.Piece && m.To == o.To
}

// IsZero reports whether the move is unset.
func (m Move) IsZero() bool {
	return m.Piece == nil
}

// UCI returns the move in long algebraic form, e.g. "e2e4" or "e7e8q" when a
// pawn reaches its promotion rank.
func (m Move) UCI(pos *Position, promotion Kind) string {
	s := m.From.Algebraic(pos.WhiteAtBottom) + m.To.Algebraic(pos.WhiteAtBottom)
	if m.Piece != nil && m.Piece.Kind == Pawn && m.To.Rank == pos.PromotionRank(m.Piece.Colour) {
		s += string(rune(promotion.Letter() + 'a' - 'A'))
	}
	return s
}
