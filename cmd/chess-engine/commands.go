package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// run sets up the position from the flags and performs the requested action.
func run(ctx context.Context, cfg *config.Config, rng *rand.Rand) error {
	p, err := setupPosition(cfg, *fenString, *strictFEN, *applyMoves)
	if err != nil {
		return err
	}

	w := cfg.OutputFile
	if err := runAction(ctx, w, p, cfg, rng); err != nil {
		return err
	}
	if *showBoard {
		fmt.Fprint(w, p.Board)
	}
	return nil
}

// runAction performs the action selected by the flags, searching by default.
func runAction(ctx context.Context, w io.Writer, p *engine.Position, cfg *config.Config, rng *rand.Rand) error {
	switch {
	case *listMoves:
		return runMoves(w, p)
	case *perftN > 0:
		return runPerft(w, p, *perftN)
	case *divideN > 0:
		return runDivide(ctx, w, p, *divideN, cfg.Search.Workers)
	case *selfPlay > 0:
		return runSelfPlay(ctx, w, p, cfg, *selfPlay, rng)
	default:
		return runSearch(ctx, w, p, cfg, rng)
	}
}

// setupPosition builds the starting position and plays any moves given.
func setupPosition(cfg *config.Config, fen string, strict bool, moves string) (*engine.Position, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}

	var p *engine.Position
	if strict {
		var err error
		if p, err = engine.ParseFEN(fen, cfg); err != nil {
			return nil, errors.Wrap(err, "-fen")
		}
	} else {
		p = engine.NewPosition(fen, cfg)
	}

	for _, text := range splitMoves(moves) {
		if _, err := p.PlayText(text); err != nil {
			return nil, errors.Wrap(err, "-apply")
		}
	}
	return p, nil
}

// splitMoves splits a comma or space separated move list.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// runSearch prints the engine's choice for the side to move.
func runSearch(ctx context.Context, w io.Writer, p *engine.Position, cfg *config.Config, rng *rand.Rand) error {
	res, err := p.SearchParallel(ctx, cfg.Search.Depth, rng, cfg.Search.Workers)
	if err != nil {
		return err
	}
	cfg.Logf(2, "searched %d nodes, cache %+v", res.Nodes, p.CacheStats())

	if res.Move == nil {
		fmt.Fprintf(w, "bestmove (none) score %s %s\n", formatScore(res.Score), p.Status())
		return nil
	}
	fmt.Fprintf(w, "bestmove %s score %s nodes %d\n", res.Move.UCI(), formatScore(res.Score), res.Nodes)
	return nil
}

// formatScore renders forced results as mate scores.
func formatScore(score int) string {
	switch score {
	case engine.Infinity:
		return "mate"
	case -engine.Infinity:
		return "-mate"
	default:
		return fmt.Sprintf("%d", score)
	}
}

// runMoves prints the legal moves of the side to move, sorted.
func runMoves(w io.Writer, p *engine.Position) error {
	var names []string
	for _, m := range p.GenerateMoves(p.ToMove) {
		names = append(names, m.UCI())
	}
	sort.Strings(names)
	fmt.Fprintf(w, "%d moves: %s\n", len(names), strings.Join(names, " "))
	return nil
}

// runPerft prints the leaf count at each depth up to depth.
func runPerft(w io.Writer, p *engine.Position, depth int) error {
	for d := 1; d <= depth; d++ {
		fmt.Fprintf(w, "perft(%d) = %d\n", d, p.Perft(d))
	}
	return nil
}

// runDivide prints the perft count below each root move and the total.
func runDivide(ctx context.Context, w io.Writer, p *engine.Position, depth, workers int) error {
	counts, err := p.Divide(ctx, depth, workers)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var total uint64
	for _, name := range names {
		fmt.Fprintf(w, "%s: %d\n", name, counts[name])
		total += counts[name]
	}
	fmt.Fprintf(w, "\nmoves %d nodes %d\n", len(names), total)
	return nil
}

// runSelfPlay lets the engine play both sides for up to plies moves.
func runSelfPlay(ctx context.Context, w io.Writer, p *engine.Position, cfg *config.Config, plies int, rng *rand.Rand) error {
	for ply := 0; ply < plies; ply++ {
		res, err := p.SearchParallel(ctx, cfg.Search.Depth, rng, cfg.Search.Workers)
		if err != nil {
			return err
		}
		if res.Move == nil {
			break
		}
		if err := p.Play(*res.Move); err != nil {
			return err
		}
		fmt.Fprintf(w, "%d. %s %s\n", p.Ply(), res.Move.UCI(), formatScore(res.Score))
	}
	fmt.Fprintf(w, "%s %s\n", p.FullFEN(), p.Status())
	return nil
}
