package testutil

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
)

// QuietConfig returns a default configuration that logs nothing.
func QuietConfig() *config.Config {
	return config.NewConfigBuilder().
		WithVerbosity(0).
		WithLog(io.Discard).
		WithOutput(io.Discard).
		Build()
}

// MoveStrings returns the UCI text of moves, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	slices.Sort(out)
	return out
}

// AssertMoves compares a move list with the expected UCI strings,
// ignoring order.
func AssertMoves(t *testing.T, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	sorted := slices.Clone(want)
	slices.Sort(sorted)
	AssertEqual(t, MoveStrings(got), sorted, msgAndArgs...)
}

// squareTransformer renders squares in algebraic form in diffs.
var squareTransformer = cmp.Transformer("Square", func(s chess.Square) string {
	return s.String()
})

// pieceTransformer renders pieces by FEN letter in diffs.
var pieceTransformer = cmp.Transformer("Piece", func(p chess.Piece) string {
	return string(p.Letter())
})

// AssertBoardEqual fails with a readable diff if the boards differ in any
// field.
func AssertBoardEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	AssertEqualOpts(t, got, want, []cmp.Option{squareTransformer, pieceTransformer}, msgAndArgs...)
}

// MustSquares parses algebraic squares, failing the test on bad input.
func MustSquares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, len(names))
	for i, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", name, err)
		}
		squares[i] = sq
	}
	return squares
}
