package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked, judged
// by whether any pseudo-legal move of the opponent ends on the king.
// A board without that king is never in check.
func (p *Position) IsInCheck(colour chess.Colour) bool {
	king, ok := p.KingSquare(colour)
	if !ok {
		return false
	}
	for _, m := range p.PseudoLegalMoves(colour.Opposite()) {
		if m.End == king {
			return true
		}
	}
	return false
}

// SquareAttacked returns true if sq is attacked by a piece of colour by.
// It walks rays out from sq instead of generating moves, so castling can
// ask it without recursing into move generation.
func SquareAttacked(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	// Pawns of colour by attack diagonally forward, so look one step back.
	pawn := chess.Piece{Colour: by, Kind: chess.Pawn}
	for _, df := range [2]int{-1, 1} {
		if p, ok := board.Get(sq.Add(chess.Offset{DFile: df, DRank: -by.Forward()})); ok && p == pawn {
			return true
		}
	}

	knight := chess.Piece{Colour: by, Kind: chess.Knight}
	for _, off := range knightOffsets {
		if p, ok := board.Get(sq.Add(off)); ok && p == knight {
			return true
		}
	}

	king := chess.Piece{Colour: by, Kind: chess.King}
	for _, off := range kingOffsets {
		if p, ok := board.Get(sq.Add(off)); ok && p == king {
			return true
		}
	}

	queen := chess.Piece{Colour: by, Kind: chess.Queen}
	if rayAttacked(board, sq, bishopDirections, chess.Piece{Colour: by, Kind: chess.Bishop}, queen) {
		return true
	}
	return rayAttacked(board, sq, rookDirections, chess.Piece{Colour: by, Kind: chess.Rook}, queen)
}

// rayAttacked reports whether the first piece along any direction is
// slider or queen.
func rayAttacked(board *chess.Board, sq chess.Square, directions []chess.Offset, slider, queen chess.Piece) bool {
	for _, dir := range directions {
		to := sq.Add(dir)
		for board.Empty(to) {
			to = to.Add(dir)
		}
		if p, ok := board.Get(to); ok && (p == slider || p == queen) {
			return true
		}
	}
	return false
}
