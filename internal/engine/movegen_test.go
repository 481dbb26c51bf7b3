package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestGenerateMoves_InitialPosition(t *testing.T) {
	p := NewInitialPosition(testutil.QuietConfig())

	moves := p.GenerateMoves(chess.White)
	testutil.AssertEqual(t, len(moves), 20)
	testutil.AssertMoves(t, moves, []string{
		"a2a3", "a2a4", "b2b3", "b2b4", "c2c3", "c2c4", "d2d3", "d2d4",
		"e2e3", "e2e4", "f2f3", "f2f4", "g2g3", "g2g4", "h2h3", "h2h4",
		"b1a3", "b1c3", "g1f3", "g1h3",
	})
	testutil.AssertEqual(t, len(p.GenerateMoves(chess.Black)), 20)
}

func TestGenerateMoves_Order(t *testing.T) {
	p := NewPosition("8/8/8/8/8/8/8/N7", testutil.QuietConfig())

	// Knight offsets are tried in a fixed order.
	got := p.PseudoLegalMoves(chess.White)
	testutil.AssertEqual(t, len(got), 2)
	testutil.AssertEqual(t, got[0].UCI(), "a1b3")
	testutil.AssertEqual(t, got[1].UCI(), "a1c2")
}

func TestGenerateMoves_DoublePushSetsTarget(t *testing.T) {
	p := NewInitialPosition(testutil.QuietConfig())
	m, err := p.ParseMove("e2e4")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, m.IsDoublePush())
	testutil.AssertEqual(t, m.EnPassantTarget, chess.MustSquare("e3"))

	p.MakeMove(m)
	testutil.AssertEqual(t, p.EnPassant, chess.MustSquare("e3"))
}

func TestGenerateMoves_BlockedPawn(t *testing.T) {
	p := NewPosition("4k3/8/8/8/8/4n3/4P3/4K3", testutil.QuietConfig())
	for _, m := range p.GenerateMoves(chess.White) {
		if m.Start == chess.MustSquare("e2") {
			t.Errorf("blocked pawn generated %s", m.UCI())
		}
	}
}

func TestGenerateMoves_KingSafety(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		position3FEN,
		"4k3/8/8/8/8/8/4r3/4K3 w - - 0 1",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			p := mustParse(t, fen)
			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				for _, m := range p.GenerateMoves(colour) {
					undo := p.MakeMove(m)
					if p.IsInCheck(colour) {
						t.Errorf("%v move %s leaves its king in check", colour, m.UCI())
					}
					p.UnmakeMove(m, undo)
				}
			}
		})
	}
}

func TestGenerateMoves_PinnedPiece(t *testing.T) {
	p := mustParse(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	for _, m := range p.GenerateMoves(chess.White) {
		if m.Start == chess.MustSquare("e2") {
			t.Errorf("pinned bishop moved: %s", m.UCI())
		}
	}
}

func TestGenerateMoves_InCheckMustRespond(t *testing.T) {
	p := mustParse(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	testutil.AssertTrue(t, p.IsInCheck(chess.White))
	testutil.AssertMoves(t, p.GenerateMoves(chess.White), []string{"e1d1", "e1e2", "e1f1"})
}

// randomWalk plays random legal moves from p, checking that every
// generated move unmakes to the exact prior state.
func randomWalk(t *testing.T, p *Position, plies int, rng *rand.Rand) {
	t.Helper()
	for ply := 0; ply < plies; ply++ {
		moves := p.GenerateMoves(p.ToMove)
		if len(moves) == 0 {
			return
		}
		before := *p.Board
		for _, m := range moves {
			undo := p.MakeMove(m)
			p.UnmakeMove(m, undo)
			if *p.Board != before {
				testutil.AssertBoardEqual(t, p.Board, &before, "unmake of %s at ply %d", m.UCI(), ply)
				return
			}
		}
		p.MakeMove(moves[rng.Intn(len(moves))])
	}
}

func TestMakeUnmake_Identity(t *testing.T) {
	for _, fen := range []string{InitialFEN, kiwipeteFEN, position3FEN} {
		t.Run(fen, func(t *testing.T) {
			randomWalk(t, mustParse(t, fen), 40, rand.New(rand.NewSource(7)))
		})
	}
}

func TestMakeUnmake_NestedRestoresRoot(t *testing.T) {
	p := mustParse(t, kiwipeteFEN)
	root := *p.Board

	var walk func(depth int)
	walk = func(depth int) {
		if depth == 0 {
			return
		}
		for _, m := range p.GenerateMoves(p.ToMove) {
			undo := p.MakeMove(m)
			walk(depth - 1)
			p.UnmakeMove(m, undo)
		}
	}
	walk(2)

	testutil.AssertBoardEqual(t, p.Board, &root)
}

func TestPromotion(t *testing.T) {
	p := NewPosition("7k/P7/8/8/8/8/8/K7", testutil.QuietConfig())

	m, err := p.ParseMove("a7a8")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Promotion, chess.Queen)

	undo := p.MakeMove(m)
	testutil.AssertEqual(t, p.At(chess.MustSquare("a8")), chess.W(chess.Queen))

	p.UnmakeMove(m, undo)
	testutil.AssertEqual(t, p.At(chess.MustSquare("a7")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, p.At(chess.MustSquare("a8")), chess.NoPiece)
}

func TestPromotion_BlackCapture(t *testing.T) {
	p := mustParse(t, "7k/8/8/8/8/8/1p6/R3K3 b - - 0 1")

	m, err := p.ParseMove("b2a1q")
	testutil.AssertNoError(t, err)
	p.MakeMove(m)
	testutil.AssertEqual(t, p.At(chess.MustSquare("a1")), chess.B(chess.Queen))
}

func TestEnPassant(t *testing.T) {
	p := NewPosition("4k3/3p4/8/4P3/8/8/8/4K3", testutil.QuietConfig())
	p.ToMove = chess.Black

	push, err := p.ParseMove("d7d5")
	testutil.AssertNoError(t, err)
	p.MakeMove(push)
	testutil.AssertEqual(t, p.EnPassant, chess.MustSquare("d6"))

	capture, err := p.ParseMove("e5d6")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, capture.IsEnPassant())

	before := *p.Board
	undo := p.MakeMove(capture)
	testutil.AssertEqual(t, p.At(chess.MustSquare("d6")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, p.At(chess.MustSquare("d5")), chess.NoPiece, "pawn behind the target is removed")
	testutil.AssertEqual(t, p.At(chess.MustSquare("e5")), chess.NoPiece)

	p.UnmakeMove(capture, undo)
	testutil.AssertBoardEqual(t, p.Board, &before)
}

func TestEnPassant_ExpiresAfterOnePly(t *testing.T) {
	p := mustParse(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	for _, text := range []string{"d7d5", "e1d1", "e8d8"} {
		if _, err := p.PlayText(text); err != nil {
			t.Fatalf("PlayText(%q): %v", text, err)
		}
	}
	if _, err := p.ParseMove("e5d6"); err == nil {
		t.Error("en passant should no longer be available")
	}
}

func TestEnPassant_RequiresVictim(t *testing.T) {
	// A target square with no pawn behind it yields no capture.
	p := mustParse(t, "4k3/8/8/4P3/8/8/8/4K3 w - d6 0 1")
	for _, m := range p.GenerateMoves(chess.White) {
		if m.IsEnPassant() {
			t.Errorf("unexpected en passant %s", m.UCI())
		}
	}
}

func TestCastling(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
		deny []string
	}{
		{
			name: "both sides open",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			want: []string{"e1g1", "e1c1"},
		},
		{
			name: "rights missing",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1",
			deny: []string{"e1g1", "e1c1"},
		},
		{
			name: "blocked",
			fen:  "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1",
			deny: []string{"e1g1", "e1c1"},
		},
		{
			name: "rook missing",
			fen:  "r3k2r/8/8/8/8/8/8/4K2R w KQkq - 0 1",
			want: []string{"e1g1"},
			deny: []string{"e1c1"},
		},
		{
			name: "out of check",
			fen:  "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1",
			deny: []string{"e1g1", "e1c1"},
		},
		{
			name: "through attacked square",
			fen:  "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1",
			want: []string{"e1c1"},
			deny: []string{"e1g1"},
		},
		{
			name: "into check",
			fen:  "r3k2r/8/8/8/8/8/6r1/R3K2R w KQkq - 0 1",
			want: []string{"e1c1"},
			deny: []string{"e1g1"},
		},
		{
			name: "b-file attack does not stop queenside",
			fen:  "r3k2r/8/8/8/8/8/1r6/R3K2R w KQkq - 0 1",
			want: []string{"e1c1", "e1g1"},
		},
		{
			name: "black",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			want: []string{"e8g8", "e8c8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, tt.fen)
			got := make(map[string]bool)
			for _, m := range p.GenerateMoves(p.ToMove) {
				got[m.UCI()] = true
			}
			for _, m := range tt.want {
				testutil.AssertTrue(t, got[m], "%s should be legal", m)
			}
			for _, m := range tt.deny {
				testutil.AssertFalse(t, got[m], "%s should not be legal", m)
			}
		})
	}
}

func TestCastling_ThroughCheckOption(t *testing.T) {
	cfg := testutil.QuietConfig()
	cfg.Rules.CastleThroughCheck = true

	tests := []struct {
		name string
		fen  string
		want []string
		deny []string
	}{
		{
			name: "through attacked square",
			fen:  "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1",
			want: []string{"e1g1", "e1c1"},
		},
		{
			name: "out of check",
			fen:  "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1",
			want: []string{"e1c1"},
		},
		{
			name: "rook missing",
			fen:  "r3k2r/8/8/8/8/8/8/4K2R w KQkq - 0 1",
			want: []string{"e1g1"},
			deny: []string{"e1c1"},
		},
		{
			name: "king off its home square",
			fen:  "r3k2r/8/8/8/8/8/8/R2K3R w KQkq - 0 1",
			deny: []string{"d1f1", "d1b1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseFEN(tt.fen, cfg)
			testutil.AssertNoError(t, err)

			got := make(map[string]bool)
			for _, m := range p.GenerateMoves(chess.White) {
				if m.IsCastle() {
					got[m.UCI()] = true
				}
			}
			for _, m := range tt.want {
				testutil.AssertTrue(t, got[m], "%s should be generated", m)
			}
			for _, m := range tt.deny {
				testutil.AssertFalse(t, got[m], "%s should not be generated", m)
			}
		})
	}
}

func TestCastling_MovesRook(t *testing.T) {
	p := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	_, err := p.PlayText("e1c1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, p.At(chess.MustSquare("c1")), chess.W(chess.King))
	testutil.AssertEqual(t, p.At(chess.MustSquare("d1")), chess.W(chess.Rook))
	testutil.AssertEqual(t, p.At(chess.MustSquare("a1")), chess.NoPiece)
	testutil.AssertFalse(t, p.Castling.Get(chess.White, chess.Kingside))
	testutil.AssertFalse(t, p.Castling.Get(chess.White, chess.Queenside))
	testutil.AssertTrue(t, p.Castling.Get(chess.Black, chess.Kingside))
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial", InitialFEN, chess.White, false},
		{"rook on file", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", chess.White, true},
		{"knight", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"pawn", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"pawn behind does not attack", "4k3/8/8/8/8/8/8/3pK3 w - - 0 1", chess.White, false},
		{"rook along rank", "4k3/8/8/8/8/8/4P3/4K2r w - - 0 1", chess.White, true},
		{"black king", foolsMateFEN, chess.Black, false},
		{"fool's mate", foolsMateFEN, chess.White, true},
		{"no king", "8/8/8/8/8/8/8/r7 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, tt.fen)
			testutil.AssertEqual(t, p.IsInCheck(tt.colour), tt.want)
		})
	}
}

const foolsMateFEN = foolsMate + " w KQkq - 1 3"

func TestSquareAttacked_MatchesMoveScan(t *testing.T) {
	for _, fen := range []string{InitialFEN, kiwipeteFEN, position3FEN} {
		t.Run(fen, func(t *testing.T) {
			p := mustParse(t, fen)
			for _, by := range []chess.Colour{chess.White, chess.Black} {
				attacked := make(map[chess.Square]bool)
				for _, m := range p.PseudoLegalMoves(by) {
					mover := p.At(m.Start)
					if mover.Kind == chess.Pawn && m.Start.File == m.End.File {
						continue
					}
					if m.IsCastle() {
						continue
					}
					attacked[m.End] = true
				}
				for rank := 0; rank < chess.BoardSize; rank++ {
					for file := 0; file < chess.BoardSize; file++ {
						sq := chess.Sq(file, rank)
						target := p.At(sq)
						if target.Colour == by {
							continue // own pieces are defended, not attacked
						}
						if target.IsEmpty() {
							continue // pawn attacks on empty squares are not moves
						}
						testutil.AssertEqual(t, SquareAttacked(p.Board, sq, by), attacked[sq],
							"%v attacks %s", by, sq)
					}
				}
			}
		})
	}
}

func TestMoveCache(t *testing.T) {
	p := NewInitialPosition(testutil.QuietConfig())

	first := p.GenerateMoves(chess.White)
	second := p.GenerateMoves(chess.White)
	testutil.AssertEqual(t, testutil.MoveStrings(second), testutil.MoveStrings(first))

	stats := p.CacheStats()
	testutil.AssertTrue(t, stats.Hits >= 1, "second lookup should hit")
	testutil.AssertTrue(t, stats.Len >= 2, "legal and pseudo-legal lists cached")
}

func TestMoveCache_KeyIncludesState(t *testing.T) {
	// Same placement, different en passant target: the cached list of one
	// must not be served for the other.
	p := mustParse(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	withTarget := len(p.GenerateMoves(chess.White))

	p.EnPassant = chess.NoSquare
	withoutTarget := len(p.GenerateMoves(chess.White))

	testutil.AssertEqual(t, withTarget, withoutTarget+1)
}

func TestMoveCache_Disabled(t *testing.T) {
	cfg := config.NewConfigBuilder().WithCacheSize(0).WithVerbosity(0).Build()
	p := NewInitialPosition(cfg)

	testutil.AssertEqual(t, len(p.GenerateMoves(chess.White)), 20)
	testutil.AssertEqual(t, p.CacheStats().Len, 0)
}

func TestCopy_Independent(t *testing.T) {
	p := NewInitialPosition(testutil.QuietConfig())
	c := p.Copy()

	_, err := c.PlayText("e2e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, p.ToFEN(), InitialPlacement)
	testutil.AssertEqual(t, p.Ply(), 0)
}
