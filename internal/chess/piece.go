package chess

import (
	"fmt"
	"strings"
)

// Piece is a chess man on the board. Pieces are compared by identity: two
// pawns of the same colour on the same square in different positions are
// different pieces unless one was produced by CloneByReference.
type Piece struct {
	Kind   Kind
	Colour Colour
	Coord  Coordinate

	// Moved counts moves made by a rook or king; castling requires zero.
	Moved int

	// Castling state, kings only.
	Castled     bool
	CastleSide  CastleSide
	SinceCastle int // moves since castling; -1 if the king never castled
}

// NewPiece creates a piece at the given coordinate.
func NewPiece(kind Kind, colour Colour, at Coordinate) *Piece {
	return &Piece{Kind: kind, Colour: colour, Coord: at, SinceCastle: -1}
}

// Clone returns an independent copy carrying the moved and castling state.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Value returns the material value of the piece.
func (p *Piece) Value() int {
	return p.Kind.Value()
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p *Piece) FENLetter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String describes the piece, e.g. "white knight".
func (p *Piece) String() string {
	if p == nil {
		return "empty"
	}
	return strings.ToLower(fmt.Sprintf("%s %s", p.Colour, p.Kind))
}
