// Package chess provides the board model: colours, piece kinds, coordinates,
// pieces with identity, the 8x8 grid and the position that wraps it.
package chess

import (
	"fmt"

	"github.com/lgbarn/alphabeta-chess/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
	NumColours
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind is the type of a chess piece.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [NumKinds]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// Material values in pawns. The king's value only has to dominate the rest.
var kindValues = [NumKinds]int{1, 3, 3, 5, 9, 1000}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Value returns the material value of the kind.
func (k Kind) Value() int {
	if k >= 0 && k < NumKinds {
		return kindValues[k]
	}
	return 0
}

// Letter returns the uppercase SAN/FEN letter for the kind.
func (k Kind) Letter() byte {
	letters := [NumKinds]byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && k < NumKinds {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a FEN letter of either case to a kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// CastleSide records which way a king castled.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "Kingside"
	case Queenside:
		return "Queenside"
	}
	return "None"
}

// BoardSize is the number of ranks and files.
const BoardSize = 8

// Coordinate addresses a square. Rank 0 is the top row as displayed and
// file 0 the left column; which colour sits at the bottom is a property of
// the position.
type Coordinate struct {
	Rank int
	File int
}

// Coord builds a coordinate without range checking.
func Coord(rank, file int) Coordinate {
	return Coordinate{Rank: rank, File: file}
}

// NewCoordinate builds a coordinate, rejecting values outside 0..7.
func NewCoordinate(rank, file int) (Coordinate, error) {
	c := Coordinate{Rank: rank, File: file}
	if !c.Valid() {
		return Coordinate{}, fmt.Errorf("rank %d, file %d: %w", rank, file, errors.ErrInvalidCoordinate)
	}
	return c, nil
}

// Valid reports whether the coordinate lies on the board.
func (c Coordinate) Valid() bool {
	return c.Rank >= 0 && c.Rank < BoardSize && c.File >= 0 && c.File < BoardSize
}

// Offset returns the coordinate shifted by (dr, df) and whether it is on the board.
func (c Coordinate) Offset(dr, df int) (Coordinate, bool) {
	n := Coordinate{Rank: c.Rank + dr, File: c.File + df}
	return n, n.Valid()
}

// String returns the raw grid form, e.g. "(6,4)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Rank, c.File)
}

// Algebraic returns the square name ("e4") for the given orientation.
func (c Coordinate) Algebraic(whiteAtBottom bool) string {
	file, rank := c.File, BoardSize-1-c.Rank
	if !whiteAtBottom {
		file, rank = BoardSize-1-c.File, c.Rank
	}
	return string([]byte{byte('a' + file), byte('1' + rank)})
}

// SquareCoord converts a file (0 = a) and rank (0 = rank 1) to a grid
// coordinate for the given orientation.
func SquareCoord(file, rank int, whiteAtBottom bool) Coordinate {
	if whiteAtBottom {
		return Coordinate{Rank: BoardSize - 1 - rank, File: file}
	}
	return Coordinate{Rank: rank, File: BoardSize - 1 - file}
}

// ParseSquare converts an algebraic square name ("e4") to a grid coordinate.
func ParseSquare(s string, whiteAtBottom bool) (Coordinate, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Coordinate{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	return SquareCoord(int(s[0]-'a'), int(s[1]-'1'), whiteAtBottom), nil
}
