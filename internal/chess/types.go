// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
	NoColour
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// Forward returns the rank step a pawn of this colour advances by.
// Rank 0 is the eighth rank, so white pawns move towards lower ranks.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRank returns the rank index holding the colour's king and rooks at the start.
func (c Colour) HomeRank() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Value returns the material value of the piece kind.
func (k PieceKind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return 100
	default:
		return 0
	}
}

// KindFromLetter converts a FEN letter of either case to a piece kind.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is an occupant of a square. Empty squares hold NoPiece.
type Piece struct {
	Colour Colour
	Kind   PieceKind
}

// NoPiece is the empty-square sentinel.
var NoPiece = Piece{Colour: NoColour, Kind: NoKind}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// PieceFromLetter converts a FEN letter to a piece: uppercase is white,
// lowercase is black. Unknown letters yield NoPiece.
func PieceFromLetter(c byte) Piece {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return NoPiece
	}
	if c >= 'a' && c <= 'z' {
		return B(kind)
	}
	return W(kind)
}

// IsEmpty reports whether p is the empty-square sentinel.
func (p Piece) IsEmpty() bool {
	return p.Colour == NoColour
}

// Value returns the material value of the piece.
func (p Piece) Value() int {
	return p.Kind.Value()
}

// Letter returns the FEN letter for the piece: uppercase for white,
// lowercase for black and a space for an empty square.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN letter of the piece as a string.
func (p Piece) String() string {
	return string(p.Letter())
}

// CastleSide identifies the wing a castling move goes to.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the FEN castling letter for the side (white case).
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "K"
	case Queenside:
		return "Q"
	default:
		return "-"
	}
}

// CastlingRights tracks castling eligibility per colour and side.
// Index with [colour][side-1]; use Get and Clear rather than raw indexing.
type CastlingRights [2][2]bool

// AllCastlingRights has every right set.
var AllCastlingRights = CastlingRights{{true, true}, {true, true}}

// Get reports whether colour may still castle to side.
func (r CastlingRights) Get(colour Colour, side CastleSide) bool {
	if colour == NoColour || side == NoCastle {
		return false
	}
	return r[colour][side-1]
}

// Clear removes a right. Rights never transition back to true.
func (r *CastlingRights) Clear(colour Colour, side CastleSide) {
	if colour == NoColour || side == NoCastle {
		return
	}
	r[colour][side-1] = false
}

// Set grants a right. Only position setup uses this.
func (r *CastlingRights) Set(colour Colour, side CastleSide) {
	if colour == NoColour || side == NoCastle {
		return
	}
	r[colour][side-1] = true
}

// Any reports whether any right remains.
func (r CastlingRights) Any() bool {
	return r[0][0] || r[0][1] || r[1][0] || r[1][1]
}

// BoardSize is the number of files and ranks.
const BoardSize = 8
