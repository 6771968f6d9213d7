package chess

// EnPassant records the square of a pawn that has just advanced two squares
// and whether it may be captured on the next ply.
type EnPassant struct {
	Square  Coordinate
	Allowed bool
}

// Position is a board plus the state needed to generate moves from it.
// The side seated at the top of the display is the automated side.
type Position struct {
	Board         Board
	WhiteToMove   bool
	WhiteAtBottom bool
	EnPassant     EnPassant

	// MoveNumber counts full moves from 1 and increments after Black moves.
	MoveNumber int
}

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewGame returns the standard starting position. With whiteAtBottom false
// the layout is rotated so that Black occupies the bottom two rows.
func NewGame(whiteAtBottom bool) *Position {
	p := NewEmptyPosition(whiteAtBottom)
	for file := 0; file < BoardSize; file++ {
		p.place(backRank[file], White, file, 0)
		p.place(Pawn, White, file, 1)
		p.place(Pawn, Black, file, 6)
		p.place(backRank[file], Black, file, 7)
	}
	return p
}

// NewEmptyPosition returns a position with no pieces, White to move.
func NewEmptyPosition(whiteAtBottom bool) *Position {
	return &Position{
		WhiteToMove:   true,
		WhiteAtBottom: whiteAtBottom,
		MoveNumber:    1,
	}
}

func (p *Position) place(kind Kind, colour Colour, file, rank int) {
	c := SquareCoord(file, rank, p.WhiteAtBottom)
	p.Board.Put(c, NewPiece(kind, colour, c))
}

// SideToMove returns the colour whose turn it is.
func (p *Position) SideToMove() Colour {
	if p.WhiteToMove {
		return White
	}
	return Black
}

// BottomColour returns the colour seated at the bottom of the display.
func (p *Position) BottomColour() Colour {
	if p.WhiteAtBottom {
		return White
	}
	return Black
}

// TopColour returns the colour seated at the top of the display.
func (p *Position) TopColour() Colour {
	return p.BottomColour().Opposite()
}

// Forward returns the rank delta of a pawn advance for the colour.
func (p *Position) Forward(colour Colour) int {
	if colour == p.BottomColour() {
		return -1
	}
	return 1
}

// HomeRank returns the rank holding the colour's king and rooks at the start.
func (p *Position) HomeRank(colour Colour) int {
	if colour == p.BottomColour() {
		return BoardSize - 1
	}
	return 0
}

// PawnRank returns the rank the colour's pawns start on.
func (p *Position) PawnRank(colour Colour) int {
	return p.HomeRank(colour) + p.Forward(colour)
}

// PromotionRank returns the rank on which the colour's pawns promote.
func (p *Position) PromotionRank(colour Colour) int {
	return p.HomeRank(colour.Opposite())
}

// mirror maps a file counted from White's queenside onto the grid.
func (p *Position) mirror(file int) int {
	if p.WhiteAtBottom {
		return file
	}
	return BoardSize - 1 - file
}

// CastleGeometry describes the squares involved in one castling move.
type CastleGeometry struct {
	Side     CastleSide
	KingFrom Coordinate
	KingTo   Coordinate
	RookFrom Coordinate
	RookTo   Coordinate
	Between  []Coordinate // must be empty
	Safe     []Coordinate // king start, transit and destination; must not be attacked
}

// Castling returns the geometry of castling on the given side.
func (p *Position) Castling(colour Colour, side CastleSide) CastleGeometry {
	r := p.HomeRank(colour)
	at := func(file int) Coordinate { return Coordinate{Rank: r, File: p.mirror(file)} }

	if side == Kingside {
		return CastleGeometry{
			Side:     Kingside,
			KingFrom: at(4),
			KingTo:   at(6),
			RookFrom: at(7),
			RookTo:   at(5),
			Between:  []Coordinate{at(5), at(6)},
			Safe:     []Coordinate{at(4), at(5), at(6)},
		}
	}
	return CastleGeometry{
		Side:     Queenside,
		KingFrom: at(4),
		KingTo:   at(2),
		RookFrom: at(0),
		RookTo:   at(3),
		Between:  []Coordinate{at(1), at(2), at(3)},
		Safe:     []Coordinate{at(4), at(3), at(2)},
	}
}

// Clone returns a deep copy with new piece instances.
func (p *Position) Clone() *Position {
	c := *p
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			if pc := p.Board[r][f]; pc != nil {
				c.Board[r][f] = pc.Clone()
			}
		}
	}
	return &c
}

// CloneByReference returns a copy sharing piece instances with p.
// Only use it where the pieces are restored in place afterwards.
func (p *Position) CloneByReference() *Position {
	c := *p
	return &c
}

// Snapshot captures everything a move can change apart from piece attributes,
// which UndoMove rolls back from the moved piece itself.
type Snapshot struct {
	board       Board
	enPassant   EnPassant
	moveNumber  int
	whiteToMove bool
}

// Snapshot records the current grid and move state.
func (p *Position) Snapshot() Snapshot {
	return Snapshot{
		board:       p.Board,
		enPassant:   p.EnPassant,
		moveNumber:  p.MoveNumber,
		whiteToMove: p.WhiteToMove,
	}
}

// UndoMove reverts the move of moved from the square from, given the snapshot
// taken before it was made. Castling is unwound when the king's post-castle
// counter is zero; king and rook move counts are decremented.
func (p *Position) UndoMove(s Snapshot, moved *Piece, from Coordinate) {
	p.Board = s.board
	p.EnPassant = s.enPassant
	p.MoveNumber = s.moveNumber
	p.WhiteToMove = s.whiteToMove
	moved.Coord = from

	if moved.Kind == King {
		switch {
		case moved.SinceCastle == 0 && moved.CastleSide != NoCastle:
			g := p.Castling(moved.Colour, moved.CastleSide)
			if rook := p.Board.Get(g.RookFrom); rook != nil {
				rook.Coord = g.RookFrom
				rook.Moved = decrement(rook.Moved)
			}
			moved.Castled = false
			moved.CastleSide = NoCastle
			moved.SinceCastle = -1
		case moved.SinceCastle > 0:
			moved.SinceCastle--
		}
	}
	if moved.Kind == King || moved.Kind == Rook {
		moved.Moved = decrement(moved.Moved)
	}
}

func decrement(n int) int {
	if n > 0 {
		return n - 1
	}
	return 0
}
