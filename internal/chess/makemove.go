package chess

// Undo captures everything MakeMove changes so UnmakeMove can restore it.
// Pass the Undo returned by a MakeMove to exactly one UnmakeMove of the
// same move, in reverse order of the makes.
type Undo struct {
	StartPiece Piece
	EndPiece   Piece

	Castling      CastlingRights
	EnPassant     Square
	HalfmoveClock uint
	MoveNumber    uint

	// Castling moves only: the rook's squares and their prior occupants.
	RookFrom      Square
	RookTo        Square
	RookFromPiece Piece
	RookToPiece   Piece

	// En passant captures only: the removed pawn and its square.
	CapturedSquare Square
	CapturedPiece  Piece
}

// MakeMove applies m to the board and returns the record needed to take it back.
func (b *Board) MakeMove(m Move) Undo {
	piece, _ := b.Get(m.Start)
	target, _ := b.Get(m.End)

	u := Undo{
		StartPiece:     piece,
		EndPiece:       target,
		Castling:       b.Castling,
		EnPassant:      b.EnPassant,
		HalfmoveClock:  b.HalfmoveClock,
		MoveNumber:     b.MoveNumber,
		RookFrom:       NoSquare,
		RookTo:         NoSquare,
		CapturedSquare: NoSquare,
		CapturedPiece:  NoPiece,
	}

	b.ToMove = b.ToMove.Opposite()
	b.Set(m.Start, NoPiece)
	b.Set(m.End, piece)

	if m.IsCastle() {
		u.RookFrom, u.RookTo = castleRookSquares(m)
		u.RookFromPiece, _ = b.Get(u.RookFrom)
		u.RookToPiece, _ = b.Get(u.RookTo)
		b.Set(u.RookTo, u.RookFromPiece)
		b.Set(u.RookFrom, NoPiece)
	}

	if m.Promotion != NoKind {
		b.Set(m.End, Piece{Colour: piece.Colour, Kind: m.Promotion})
	}

	if m.IsEnPassant() {
		u.CapturedSquare = m.EnPassantCapture
		u.CapturedPiece, _ = b.Get(m.EnPassantCapture)
		b.Set(m.EnPassantCapture, NoPiece)
	}

	b.EnPassant = NoSquare
	if m.IsDoublePush() {
		b.EnPassant = m.EnPassantTarget
	}

	b.updateCastlingRights(piece, m, target)

	if piece.Kind == Pawn || !target.IsEmpty() || m.IsEnPassant() {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if piece.Colour == Black {
		b.MoveNumber++
	}

	return u
}

// UnmakeMove reverts m using the Undo returned when it was made.
func (b *Board) UnmakeMove(m Move, u Undo) {
	b.ToMove = b.ToMove.Opposite()
	b.Set(m.Start, u.StartPiece)
	b.Set(m.End, u.EndPiece)

	if m.IsCastle() {
		b.Set(u.RookFrom, u.RookFromPiece)
		b.Set(u.RookTo, u.RookToPiece)
	}

	b.Castling = u.Castling
	b.EnPassant = u.EnPassant
	b.HalfmoveClock = u.HalfmoveClock
	b.MoveNumber = u.MoveNumber

	if m.IsEnPassant() {
		b.Set(u.CapturedSquare, u.CapturedPiece)
	}
}

// castleRookSquares returns where the rook starts and lands for a castling move.
func castleRookSquares(m Move) (from, to Square) {
	if m.Castle == Kingside {
		return m.End.AddFile(1), m.End.AddFile(-1)
	}
	return m.End.AddFile(-2), m.End.AddFile(1)
}

// updateCastlingRights removes rights lost by moving piece along m,
// capturing whatever stood on the destination.
func (b *Board) updateCastlingRights(piece Piece, m Move, captured Piece) {
	switch piece.Kind {
	case King:
		b.Castling.Clear(piece.Colour, Kingside)
		b.Castling.Clear(piece.Colour, Queenside)
	case Rook:
		if side := rookHomeSide(piece.Colour, m.Start); side != NoCastle {
			b.Castling.Clear(piece.Colour, side)
		}
	}
	if captured.Kind == Rook {
		if side := rookHomeSide(captured.Colour, m.End); side != NoCastle {
			b.Castling.Clear(captured.Colour, side)
		}
	}
}

// rookHomeSide returns the castling side whose rook starts on sq.
func rookHomeSide(colour Colour, sq Square) CastleSide {
	if sq.Rank != colour.HomeRank() {
		return NoCastle
	}
	switch sq.File {
	case 0:
		return Queenside
	case BoardSize - 1:
		return Kingside
	default:
		return NoCastle
	}
}
