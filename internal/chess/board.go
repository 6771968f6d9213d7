package chess

import (
	"fmt"

	"github.com/lgbarn/alphabeta-chess/internal/errors"
)

// Board is the 8x8 grid of piece references, indexed [rank][file].
// A nil entry is an empty square.
type Board [BoardSize][BoardSize]*Piece

// Get returns the piece at c, or nil for an empty or off-board square.
func (b *Board) Get(c Coordinate) *Piece {
	if !c.Valid() {
		return nil
	}
	return b[c.Rank][c.File]
}

// Empty reports whether c is on the board and unoccupied.
func (b *Board) Empty(c Coordinate) bool {
	return c.Valid() && b[c.Rank][c.File] == nil
}

// Put places p at c and updates its coordinate.
func (b *Board) Put(c Coordinate, p *Piece) {
	b[c.Rank][c.File] = p
	if p != nil {
		p.Coord = c
	}
}

// Remove clears c and returns whatever was there.
func (b *Board) Remove(c Coordinate) *Piece {
	p := b[c.Rank][c.File]
	b[c.Rank][c.File] = nil
	return p
}

// PlaceMove relocates the piece on from to to, overwriting any occupant.
// It does no rule checking.
func (b *Board) PlaceMove(from, to Coordinate) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("move %v-%v: %w", from, to, errors.ErrInvalidCoordinate)
	}
	p := b[from.Rank][from.File]
	if p == nil {
		return fmt.Errorf("no piece on %v: %w", from, errors.ErrAmbiguousGameState)
	}
	b[from.Rank][from.File] = nil
	b.Put(to, p)
	return nil
}

// PiecesOf returns every piece of the colour in rank-major, file-minor order.
func (b *Board) PiecesOf(colour Colour) []*Piece {
	pieces := make([]*Piece, 0, 16)
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			if p := b[r][f]; p != nil && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// King returns the king of the colour, or nil if there is none.
func (b *Board) King(colour Colour) *Piece {
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			if p := b[r][f]; p != nil && p.Kind == King && p.Colour == colour {
				return p
			}
		}
	}
	return nil
}

// Count returns the number of pieces of the kind and colour.
func (b *Board) Count(kind Kind, colour Colour) int {
	n := 0
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			if p := b[r][f]; p != nil && p.Kind == kind && p.Colour == colour {
				n++
			}
		}
	}
	return n
}
