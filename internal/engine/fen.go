package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// InitialPlacement is the piece-placement field of InitialFEN.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// NewPosition creates a position from a FEN string without ever failing.
//
// Only the piece-placement field is read: digits skip empty files, '/'
// starts the next rank and any other character places its piece, with
// unrecognised characters filling one empty square. The board starts with
// white to move, all castling rights and no en passant target.
//
// With cfg.Rules.FullFEN set the remaining fields are applied as well; if
// any of them is malformed a warning is logged and the defaults are kept.
func NewPosition(fen string, cfg *config.Config) *Position {
	board := chess.NewBoard()
	fields := strings.Fields(fen)
	if len(fields) > 0 {
		placePieces(board, fields[0])
	}

	p := newPosition(board, cfg)
	if p.cfg.Rules.FullFEN && len(fields) > 1 {
		state := board.Copy()
		if err := parseStateFields(state, fields[1:]); err != nil {
			p.cfg.Logf(1, "warning: ignoring FEN state fields: %v", err)
		} else {
			*board = *state
		}
	}
	return p
}

// ParseFEN creates a position from a complete FEN string, rejecting
// malformed input. Missing trailing fields take the values white to move,
// no castling, no en passant target and clocks 0 and 1.
func ParseFEN(fen string, cfg *config.Config) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Offset: -1, Expected: "piece placement"}
	}
	if len(fields) > 6 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "fen", Offset: -1, Expected: "at most 6 fields", Got: fields[6]}
	}

	board := chess.NewBoard()
	if err := parsePlacement(board, fields[0]); err != nil {
		return nil, err
	}
	board.Castling = chess.CastlingRights{}
	if err := parseStateFields(board, fields[1:]); err != nil {
		return nil, err
	}
	return newPosition(board, cfg), nil
}

// placePieces reads a placement field leniently.
func placePieces(board *chess.Board, placement string) {
	cur := chess.Sq(0, 0)
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		piece := chess.PieceFromLetter(c)
		switch {
		case piece.IsEmpty() && c >= '1' && c <= '8':
			cur.File += int(c - '0')
		case piece.IsEmpty() && c == '/':
			cur = chess.Sq(0, cur.Rank+1)
		default:
			board.Set(cur, piece)
			cur.File++
		}
	}
}

// parsePlacement reads a placement field, requiring eight ranks of eight files.
func parsePlacement(board *chess.Board, placement string) error {
	placementErr := func(offset int, expected string, got string) error {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Offset: offset, Expected: expected, Got: got}
	}

	rank, file := 0, 0
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return placementErr(i, "8 files per rank", fmt.Sprintf("%d", file))
			}
			rank++
			file = 0
			if rank >= chess.BoardSize {
				return placementErr(i, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return placementErr(i, "8 files per rank", fmt.Sprintf("%d", file))
			}
		default:
			piece := chess.PieceFromLetter(c)
			if piece.IsEmpty() {
				return placementErr(i, "piece letter or digit", string(c))
			}
			if file >= chess.BoardSize {
				return placementErr(i, "8 files per rank", "more")
			}
			board.Set(chess.Sq(file, rank), piece)
			file++
		}
	}
	if rank != chess.BoardSize-1 || file != chess.BoardSize {
		return placementErr(len(placement), "8 ranks of 8 files", placement)
	}
	return nil
}

// parseStateFields applies side to move, castling, en passant and clocks.
func parseStateFields(board *chess.Board, fields []string) error {
	parsers := []func(*chess.Board, string) error{
		parseSideToMove,
		parseCastlingRights,
		parseEnPassant,
		parseHalfmoveClock,
		parseMoveNumber,
	}
	for i, field := range fields {
		if i >= len(parsers) {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "fen", Offset: -1, Expected: "at most 6 fields", Got: field}
		}
		if err := parsers[i](board, field); err != nil {
			return err
		}
	}
	return nil
}

func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "side", Offset: -1, Expected: "w or b", Got: field}
	}
	return nil
}

func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}
	for i, c := range field {
		switch c {
		case 'K':
			board.Castling.Set(chess.White, chess.Kingside)
		case 'Q':
			board.Castling.Set(chess.White, chess.Queenside)
		case 'k':
			board.Castling.Set(chess.Black, chess.Kingside)
		case 'q':
			board.Castling.Set(chess.Black, chess.Queenside)
		default:
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling", Offset: i, Expected: "one of KQkq or -", Got: string(c)}
		}
	}
	return nil
}

func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil || (field[1] != '3' && field[1] != '6') {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "en passant", Offset: -1, Expected: "square on rank 3 or 6", Got: field}
	}
	board.EnPassant = sq
	return nil
}

func parseHalfmoveClock(board *chess.Board, field string) error {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Offset: -1, Expected: "non-negative integer", Got: field}
	}
	board.HalfmoveClock = uint(n)
	return nil
}

func parseMoveNumber(board *chess.Board, field string) error {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil || n == 0 {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "move number", Offset: -1, Expected: "positive integer", Got: field}
	}
	board.MoveNumber = uint(n)
	return nil
}

// BoardToFEN returns the piece-placement field of the board.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// BoardToFullFEN returns all six FEN fields of the board.
func BoardToFullFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// ToFEN returns the piece-placement field of the position.
func (p *Position) ToFEN() string {
	return BoardToFEN(p.Board)
}

// FullFEN returns the position as a complete six-field FEN string.
func (p *Position) FullFEN() string {
	return BoardToFullFEN(p.Board)
}

// writePiecePositions writes the placement rank by rank from the eighth,
// run-length encoding empty squares.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
}

func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	rights := []struct {
		colour chess.Colour
		side   chess.CastleSide
		letter byte
	}{
		{chess.White, chess.Kingside, 'K'},
		{chess.White, chess.Queenside, 'Q'},
		{chess.Black, chess.Kingside, 'k'},
		{chess.Black, chess.Queenside, 'q'},
	}
	hasCastling := false
	for _, r := range rights {
		if board.Castling.Get(r.colour, r.side) {
			sb.WriteByte(r.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
