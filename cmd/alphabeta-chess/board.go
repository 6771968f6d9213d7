package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
)

var (
	lightSquare = []color.Attribute{color.BgHiWhite, color.FgBlack}
	darkSquare  = []color.Attribute{color.BgGreen, color.FgBlack}
)

// renderBoard writes the board as seen by the player at the bottom, with
// rank and file labels. Without colour, empty squares are dots.
func renderBoard(w io.Writer, pos *chess.Position, useColour bool) {
	wab := pos.WhiteAtBottom
	for r := 0; r < chess.BoardSize; r++ {
		fmt.Fprint(w, chess.Coord(r, 0).Algebraic(wab)[1:])
		for f := 0; f < chess.BoardSize; f++ {
			p := pos.Board.Get(chess.Coord(r, f))
			if useColour {
				fmt.Fprint(w, squareColour(p, (r+f)%2 == 1).Sprintf(" %c ", symbol(p, ' ')))
				continue
			}
			fmt.Fprintf(w, " %c", symbol(p, '.'))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, " ")
	for f := 0; f < chess.BoardSize; f++ {
		name := chess.Coord(chess.BoardSize-1, f).Algebraic(wab)[:1]
		if useColour {
			fmt.Fprintf(w, " %s ", name)
			continue
		}
		fmt.Fprintf(w, " %s", name)
	}
	fmt.Fprintln(w)
}

// symbol is the FEN letter of p, or empty for a vacant square.
func symbol(p *chess.Piece, empty byte) byte {
	if p == nil {
		return empty
	}
	return p.FENLetter()
}

// squareColour picks the palette of a square. White pieces are bold.
// Colour is forced on because the caller already decided to use it.
func squareColour(p *chess.Piece, dark bool) *color.Color {
	attrs := lightSquare
	if dark {
		attrs = darkSquare
	}
	c := color.New(attrs...)
	if p != nil && p.Colour == chess.White {
		c.Add(color.Bold)
	}
	c.EnableColor()
	return c
}
