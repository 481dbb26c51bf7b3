package main

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func quietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	return cfg
}

func TestSplitMoves(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"only separators", " , ,", nil},
		{"single", "e2e4", []string{"e2e4"}},
		{"commas", "e2e4,e7e5", []string{"e2e4", "e7e5"}},
		{"spaces", "e2e4 e7e5  g1f3", []string{"e2e4", "e7e5", "g1f3"}},
		{"mixed", "e2e4, e7e5", []string{"e2e4", "e7e5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqualOpts(t, splitMoves(tt.in), tt.want,
				[]cmp.Option{cmpopts.EquateEmpty()}, "splitMoves(%q)", tt.in)
		})
	}
}

func TestSetupPosition(t *testing.T) {
	t.Run("default start", func(t *testing.T) {
		p, err := setupPosition(quietConfig(), "", false, "")
		if err != nil {
			t.Fatal(err)
		}
		if p.ToFEN() != engine.InitialPlacement {
			t.Errorf("ToFEN() = %q", p.ToFEN())
		}
	})

	t.Run("apply moves", func(t *testing.T) {
		p, err := setupPosition(quietConfig(), "", false, "e2e4,e7e5")
		if err != nil {
			t.Fatal(err)
		}
		if p.Ply() != 2 {
			t.Errorf("Ply() = %d; want 2", p.Ply())
		}
	})

	t.Run("illegal applied move", func(t *testing.T) {
		_, err := setupPosition(quietConfig(), "", false, "e2e5")
		if !errors.Is(err, chesserrors.ErrIllegalMove) {
			t.Errorf("err = %v; want ErrIllegalMove", err)
		}
	})

	t.Run("strict rejects bad FEN", func(t *testing.T) {
		_, err := setupPosition(quietConfig(), "8/8/8 w - - 0 1", true, "")
		if !errors.Is(err, chesserrors.ErrInvalidFEN) {
			t.Errorf("err = %v; want ErrInvalidFEN", err)
		}
	})

	t.Run("lenient accepts bad FEN", func(t *testing.T) {
		if _, err := setupPosition(quietConfig(), "8/8/8 w - - 0 1", false, ""); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestRunMoves(t *testing.T) {
	p := engine.NewInitialPosition(quietConfig())
	var buf bytes.Buffer
	if err := runMoves(&buf, p); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "20 moves: ") {
		t.Errorf("output = %q; want 20 moves", out)
	}
	if !strings.Contains(out, "g1f3") {
		t.Errorf("output %q missing g1f3", out)
	}
}

func TestRunPerft(t *testing.T) {
	p := engine.NewInitialPosition(quietConfig())
	var buf bytes.Buffer
	if err := runPerft(&buf, p, 2); err != nil {
		t.Fatal(err)
	}
	want := "perft(1) = 20\nperft(2) = 400\n"
	if buf.String() != want {
		t.Errorf("output = %q; want %q", buf.String(), want)
	}
}

func TestRunDivide(t *testing.T) {
	p := engine.NewInitialPosition(quietConfig())
	var buf bytes.Buffer
	if err := runDivide(context.Background(), &buf, p, 2, 2); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "e2e4: 20\n") {
		t.Errorf("output missing e2e4 line:\n%s", out)
	}
	if !strings.HasSuffix(out, "moves 20 nodes 400\n") {
		t.Errorf("output missing total:\n%s", out)
	}
}

func TestRunSearch(t *testing.T) {
	cfg := quietConfig()
	cfg.Search.Depth = 2

	t.Run("mate", func(t *testing.T) {
		p, err := engine.ParseFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", cfg)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := runSearch(context.Background(), &buf, p, cfg, rand.New(rand.NewSource(1))); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(buf.String(), "bestmove a1a8 score mate") {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("checkmated", func(t *testing.T) {
		p := engine.NewPosition("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR", cfg)
		var buf bytes.Buffer
		if err := runSearch(context.Background(), &buf, p, cfg, rand.New(rand.NewSource(1))); err != nil {
			t.Fatal(err)
		}
		want := "bestmove (none) score -mate checkmate\n"
		if buf.String() != want {
			t.Errorf("output = %q; want %q", buf.String(), want)
		}
	})
}

func TestRunSelfPlay(t *testing.T) {
	cfg := quietConfig()
	cfg.Search.Depth = 1
	cfg.Search.Workers = 2

	p := engine.NewInitialPosition(cfg)
	var buf bytes.Buffer
	if err := runSelfPlay(context.Background(), &buf, p, cfg, 4, rand.New(rand.NewSource(3))); err != nil {
		t.Fatal(err)
	}
	if p.Ply() != 4 {
		t.Errorf("Ply() = %d; want 4", p.Ply())
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines; want 4 moves and a final position:\n%s", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[4], " ongoing") {
		t.Errorf("final line = %q", lines[4])
	}
}

func TestRun_Board(t *testing.T) {
	defer saveRestoreBool(listMoves, true)()
	defer saveRestoreBool(showBoard, true)()

	var buf bytes.Buffer
	cfg := quietConfig()
	cfg.OutputFile = &buf

	if err := run(context.Background(), cfg, rand.New(rand.NewSource(1))); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "20 moves") {
		t.Errorf("output should start with the move list:\n%s", out)
	}
	if !strings.Contains(out, "| r | n | b | q | k | b | n | r | ") {
		t.Errorf("output should end with the board:\n%s", out)
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "0"},
		{-7, "-7"},
		{engine.Infinity, "mate"},
		{-engine.Infinity, "-mate"},
	}
	for _, tt := range tests {
		if got := formatScore(tt.score); got != tt.want {
			t.Errorf("formatScore(%d) = %q; want %q", tt.score, got, tt.want)
		}
	}
}

func TestNewRand_ClockSeed(t *testing.T) {
	if newRand(0) == nil || newRand(5) == nil {
		t.Error("newRand returned nil")
	}
}
