package chess

import "strings"

// Board represents a chess board with all state needed for the game.
// A Board is comparable with ==; two boards are equal when every square,
// castling right, en passant target, side to move and clock matches.
type Board struct {
	// Squares is indexed [rank][file]; rank 0 is the eighth rank.
	// Every cell always holds a Piece, NoPiece for empty squares.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Castling holds the rights still available to each side.
	Castling CastlingRights

	// EnPassant is the target square after a double pawn push, NoSquare otherwise.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewBoard creates an empty board: white to move, all castling rights set
// and no en passant target.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		Castling:   AllCastlingRights,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
	b.Clear()
	return b
}

// Clear empties every square.
func (b *Board) Clear() {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			b.Squares[rank][file] = NoPiece
		}
	}
}

// Get returns the piece on sq. ok is false when sq is off the board.
func (b *Board) Get(sq Square) (piece Piece, ok bool) {
	if !sq.OnBoard() {
		return NoPiece, false
	}
	return b.Squares[sq.Rank][sq.File], true
}

// IsFree reports whether sq is empty. ok is false when sq is off the board,
// in which case free is also false.
func (b *Board) IsFree(sq Square) (free, ok bool) {
	piece, ok := b.Get(sq)
	if !ok {
		return false, false
	}
	return piece.IsEmpty(), true
}

// Empty reports whether sq is on the board and unoccupied.
func (b *Board) Empty(sq Square) bool {
	free, _ := b.IsFree(sq)
	return free
}

// Set places a piece on sq. Squares off the board are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.Squares[sq.Rank][sq.File] = piece
	}
}

// At returns the piece on an on-board square without bounds reporting.
func (b *Board) At(sq Square) Piece {
	return b.Squares[sq.Rank][sq.File]
}

// KingSquare finds the king of colour.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	king := Piece{Colour: colour, Kind: King}
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[rank][file] == king {
				return Square{File: file, Rank: rank}, true
			}
		}
	}
	return NoSquare, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether two boards hold identical state.
func (b *Board) Equal(o *Board) bool {
	return *b == *o
}

// String draws the board as an ASCII grid, eighth rank first.
func (b *Board) String() string {
	const line = "+---+---+---+---+---+---+---+---+\n"
	var sb strings.Builder
	sb.WriteString(line)
	for rank := 0; rank < BoardSize; rank++ {
		sb.WriteString("| ")
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.Squares[rank][file].Letter())
			sb.WriteString(" | ")
		}
		sb.WriteString("\n")
		sb.WriteString(line)
	}
	return sb.String()
}
