package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Evaluate returns the material balance of the board from the point of
// view of the side to move: white material minus black material, negated
// when black is to move.
func Evaluate(board *chess.Board) int {
	score := 0
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			switch piece.Colour {
			case chess.White:
				score += piece.Value()
			case chess.Black:
				score -= piece.Value()
			}
		}
	}
	if board.ToMove == chess.Black {
		return -score
	}
	return score
}

// Evaluate returns the material balance from the mover's point of view.
func (p *Position) Evaluate() int {
	return Evaluate(p.Board)
}
