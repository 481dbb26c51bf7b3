package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

// Move describes a single ply. Only Start and End identify the move;
// the remaining fields are metadata attached by the generator.
type Move struct {
	Start Square
	End   Square

	// Promotion is the kind a pawn becomes on the far rank (NoKind otherwise).
	Promotion PieceKind

	// Castle is set when the king castles; the rook moves alongside.
	Castle CastleSide

	// EnPassantTarget is the square skipped by a double pawn push.
	EnPassantTarget Square

	// EnPassantCapture is the square of the pawn removed by an en passant capture.
	EnPassantCapture Square
}

// NewMove creates a plain move between two squares.
func NewMove(start, end Square) Move {
	return Move{
		Start:            start,
		End:              end,
		EnPassantTarget:  NoSquare,
		EnPassantCapture: NoSquare,
	}
}

// WithPromotion returns the move promoting to kind.
func (m Move) WithPromotion(kind PieceKind) Move {
	m.Promotion = kind
	return m
}

// WithCastle returns the move flagged as castling to side. A castle flag
// without a side is reported to the log and kept as is.
func (m Move) WithCastle(side CastleSide) Move {
	if side == NoCastle {
		warnf("castling flag without a side on %s", m)
	}
	m.Castle = side
	return m
}

// WithEnPassantTarget returns the move tagged as a double push over target.
func (m Move) WithEnPassantTarget(target Square) Move {
	m.EnPassantTarget = target
	return m
}

// WithEnPassantCapture returns the move tagged as capturing the pawn on sq.
func (m Move) WithEnPassantCapture(sq Square) Move {
	m.EnPassantCapture = sq
	return m
}

// IsCastle reports whether the move castles.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// IsEnPassant reports whether the move captures en passant.
func (m Move) IsEnPassant() bool {
	return m.EnPassantCapture.OnBoard()
}

// IsDoublePush reports whether the move sets an en passant target.
func (m Move) IsDoublePush() bool {
	return m.EnPassantTarget.OnBoard()
}

// Equal reports whether two moves share start and end squares.
func (m Move) Equal(o Move) bool {
	return m.Start == o.Start && m.End == o.End
}

// String returns the start and end squares joined by an underscore.
func (m Move) String() string {
	return m.Start.String() + "_" + m.End.String()
}

// UCI returns long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.Start.String() + m.End.String()
	if m.Promotion != NoKind {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

func warnf(format string, args ...interface{}) {
	cfg := config.GlobalConfig
	if cfg == nil || cfg.LogFile == nil || cfg.Verbosity < 1 {
		return
	}
	fmt.Fprintf(cfg.LogFile, "warning: "+format+"\n", args...)
}
