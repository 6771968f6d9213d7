package eval

import "github.com/lgbarn/alphabeta-chess/internal/chess"

// Material counts material only, x100.
type Material struct{}

// Evaluate implements Evaluator.
func (Material) Evaluate(pos *chess.Position) float64 {
	var score float64
	for r := 0; r < chess.BoardSize; r++ {
		for f := 0; f < chess.BoardSize; f++ {
			if p := pos.Board[r][f]; p != nil {
				score += sign(pos, p) * float64(p.Value()*100)
			}
		}
	}
	return score
}
