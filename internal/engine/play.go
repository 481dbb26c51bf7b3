package engine

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ParseMove resolves move text such as "e2e4", "e2_e4" or "e7e8q" to the
// matching legal move of the side to move. A promotion may omit the piece
// letter; if given it must be 'q'.
func (p *Position) ParseMove(text string) (chess.Move, error) {
	moveErr := func(err error) error {
		return &errors.MoveError{Err: err, PlyNum: len(p.history) + 1, MoveText: text, FEN: p.ToFEN()}
	}

	s := strings.NewReplacer("_", "", "-", "").Replace(strings.TrimSpace(strings.ToLower(text)))
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, moveErr(errors.ErrIllegalMove)
	}
	from, err := chess.ParseSquare(s[0:2])
	if err != nil {
		return chess.Move{}, moveErr(err)
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return chess.Move{}, moveErr(err)
	}
	if len(s) == 5 && chess.KindFromLetter(s[4]) != chess.Queen {
		return chess.Move{}, moveErr(errors.Wrapf(errors.ErrIllegalMove, "promotion to %q", s[4:]))
	}

	m, ok := p.findLegal(chess.NewMove(from, to))
	if !ok {
		return chess.Move{}, moveErr(p.illegalReason())
	}
	if len(s) == 5 && m.Promotion == chess.NoKind {
		return chess.Move{}, moveErr(errors.Wrap(errors.ErrIllegalMove, "not a promotion"))
	}
	return m, nil
}

// findLegal returns the generated legal move with the same start and end.
func (p *Position) findLegal(m chess.Move) (chess.Move, bool) {
	for _, legal := range p.GenerateMoves(p.ToMove) {
		if legal.Equal(m) {
			return legal, true
		}
	}
	return chess.Move{}, false
}

// illegalReason explains why no legal move matched: the game is over or
// the move is simply illegal.
func (p *Position) illegalReason() error {
	if len(p.GenerateMoves(p.ToMove)) == 0 {
		return errors.Wrapf(errors.ErrNoLegalMoves, "%s", p.Status())
	}
	return errors.ErrIllegalMove
}

// Play makes a legal move of the side to move and records it so Undo can
// take it back. Only the start and end squares of m are used; castling,
// en passant and promotion details come from the generated move.
func (p *Position) Play(m chess.Move) error {
	legal, ok := p.findLegal(m)
	if !ok {
		return &errors.MoveError{Err: p.illegalReason(), PlyNum: len(p.history) + 1, MoveText: m.UCI(), FEN: p.ToFEN()}
	}
	undo := p.MakeMove(legal)
	p.history = append(p.history, playedMove{move: legal, undo: undo})
	p.cfg.Logf(2, "played %s", legal.UCI())
	return nil
}

// PlayText parses move text and plays it.
func (p *Position) PlayText(text string) (chess.Move, error) {
	m, err := p.ParseMove(text)
	if err != nil {
		return chess.Move{}, err
	}
	return m, p.Play(m)
}

// Undo takes back the last move made with Play. It returns false when
// there is nothing to take back.
func (p *Position) Undo() bool {
	if len(p.history) == 0 {
		return false
	}
	last := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	p.UnmakeMove(last.move, last.undo)
	return true
}

// Ply returns the number of moves made with Play and not taken back.
func (p *Position) Ply() int {
	return len(p.history)
}

// History returns the moves made with Play, oldest first.
func (p *Position) History() []chess.Move {
	moves := make([]chess.Move, len(p.history))
	for i, h := range p.history {
		moves[i] = h.move
	}
	return moves
}
