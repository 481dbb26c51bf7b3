package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// generatorFunc appends the pseudo-legal moves of piece standing on from.
type generatorFunc func(p *Position, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move

// catalog holds one movement rule per piece kind.
var catalog = [chess.NumKinds]generatorFunc{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

var (
	rookDirections = []chess.Offset{
		{DFile: 0, DRank: 1},
		{DFile: 0, DRank: -1},
		{DFile: 1, DRank: 0},
		{DFile: -1, DRank: 0},
	}
	bishopDirections = []chess.Offset{
		{DFile: 1, DRank: 1},
		{DFile: 1, DRank: -1},
		{DFile: -1, DRank: 1},
		{DFile: -1, DRank: -1},
	}
	queenDirections = []chess.Offset{
		{DFile: 1, DRank: 1},
		{DFile: 1, DRank: -1},
		{DFile: -1, DRank: 1},
		{DFile: -1, DRank: -1},
		{DFile: 0, DRank: 1},
		{DFile: 0, DRank: -1},
		{DFile: 1, DRank: 0},
		{DFile: -1, DRank: 0},
	}
	knightOffsets = []chess.Offset{
		{DFile: 1, DRank: 2},
		{DFile: 2, DRank: 1},
		{DFile: -1, DRank: 2},
		{DFile: -2, DRank: 1},
		{DFile: 1, DRank: -2},
		{DFile: 2, DRank: -1},
		{DFile: -1, DRank: -2},
		{DFile: -2, DRank: -1},
	}
	kingOffsets = queenDirections
)

// kingHomeFile is the e-file, where castling kings start.
const kingHomeFile = 4

// pawnMoves generates pushes, double pushes, captures and en passant
// captures. Moves onto the far rank promote to a queen.
func pawnMoves(p *Position, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	forward := piece.Colour.Forward()
	startRank := piece.Colour.HomeRank() + forward
	promotion := chess.NoKind
	if from.Rank+forward == piece.Colour.Opposite().HomeRank() {
		promotion = chess.Queen
	}

	one := from.AddRank(forward)
	if p.Empty(one) {
		moves = append(moves, chess.NewMove(from, one).WithPromotion(promotion))
		two := one.AddRank(forward)
		if from.Rank == startRank && p.Empty(two) {
			moves = append(moves, chess.NewMove(from, two).WithEnPassantTarget(one))
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := from.Add(chess.Offset{DFile: df, DRank: forward})
		target, ok := p.Get(to)
		if !ok {
			continue
		}
		switch {
		case target.Colour == piece.Colour.Opposite():
			moves = append(moves, chess.NewMove(from, to).WithPromotion(promotion))
		case to == p.EnPassant && p.enPassantVictim(to, piece.Colour):
			moves = append(moves, chess.NewMove(from, to).
				WithPromotion(promotion).
				WithEnPassantCapture(to.AddRank(-forward)))
		}
	}
	return moves
}

// enPassantVictim reports whether an enemy pawn stands behind target,
// ready to be taken en passant by a pawn of colour.
func (p *Position) enPassantVictim(target chess.Square, colour chess.Colour) bool {
	victim, ok := p.Get(target.AddRank(-colour.Forward()))
	return ok && victim == chess.Piece{Colour: colour.Opposite(), Kind: chess.Pawn}
}

func knightMoves(p *Position, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return stepMoves(p, from, piece, knightOffsets, moves)
}

func bishopMoves(p *Position, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return slideMoves(p, from, piece, bishopDirections, moves)
}

func rookMoves(p *Position, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return slideMoves(p, from, piece, rookDirections, moves)
}

func queenMoves(p *Position, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	return slideMoves(p, from, piece, queenDirections, moves)
}

func kingMoves(p *Position, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	moves = stepMoves(p, from, piece, kingOffsets, moves)
	return castlingMoves(p, from, piece, moves)
}

// stepMoves adds each offset square that is empty or holds an enemy piece.
func stepMoves(p *Position, from chess.Square, piece chess.Piece, offsets []chess.Offset, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to := from.Add(off)
		target, ok := p.Get(to)
		if !ok {
			continue
		}
		if target.IsEmpty() || target.Colour == piece.Colour.Opposite() {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// slideMoves walks each direction over empty squares, then adds a capture
// if the blocking piece is an enemy.
func slideMoves(p *Position, from chess.Square, piece chess.Piece, directions []chess.Offset, moves []chess.Move) []chess.Move {
	for _, dir := range directions {
		to := from.Add(dir)
		for p.Empty(to) {
			moves = append(moves, chess.NewMove(from, to))
			to = to.Add(dir)
		}
		if target, ok := p.Get(to); ok && target.Colour == piece.Colour.Opposite() {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// castlingMoves adds castling for a king on its home square when the right
// is held, the squares up to the rook are empty and the rook is in place.
// The king two squares towards the rook is the destination.
func castlingMoves(p *Position, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	colour := piece.Colour
	if from != chess.Sq(kingHomeFile, colour.HomeRank()) {
		return moves
	}
	rook := chess.Piece{Colour: colour, Kind: chess.Rook}

	if p.Castling.Get(colour, chess.Kingside) &&
		p.Empty(from.AddFile(1)) && p.Empty(from.AddFile(2)) &&
		p.At(from.AddFile(3)) == rook &&
		p.castlePathSafe(from, 1, colour) {
		moves = append(moves, chess.NewMove(from, from.AddFile(2)).WithCastle(chess.Kingside))
	}

	if p.Castling.Get(colour, chess.Queenside) &&
		p.Empty(from.AddFile(-1)) && p.Empty(from.AddFile(-2)) && p.Empty(from.AddFile(-3)) &&
		p.At(from.AddFile(-4)) == rook &&
		p.castlePathSafe(from, -1, colour) {
		moves = append(moves, chess.NewMove(from, from.AddFile(-2)).WithCastle(chess.Queenside))
	}
	return moves
}

// castlePathSafe reports whether the king may leave from and cross the
// adjacent square in direction dir. The destination is left to the legal
// move filter.
func (p *Position) castlePathSafe(from chess.Square, dir int, colour chess.Colour) bool {
	if p.cfg.Rules.CastleThroughCheck {
		return true
	}
	enemy := colour.Opposite()
	return !SquareAttacked(p.Board, from, enemy) && !SquareAttacked(p.Board, from.AddFile(dir), enemy)
}
