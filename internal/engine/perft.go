package engine

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// Perft counts the leaf positions reached by playing every legal move
// sequence of the given length from the position.
func (p *Position) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := p.GenerateMoves(p.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		undo := p.MakeMove(m)
		nodes += p.Perft(depth - 1)
		p.UnmakeMove(m, undo)
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by the
// move's UCI text. With more than one worker the root moves are counted in
// parallel on copies of the position.
func (p *Position) Divide(ctx context.Context, depth int, workers int) (map[string]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	moves := p.GenerateMoves(p.ToMove)
	counts := make(map[string]uint64, len(moves))
	if depth < 1 {
		return counts, nil
	}

	if workers <= 1 {
		for _, m := range moves {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			undo := p.MakeMove(m)
			counts[m.UCI()] = p.Perft(depth - 1)
			p.UnmakeMove(m, undo)
		}
		return counts, nil
	}

	pool := worker.NewPoolWithOptions(func(item worker.WorkItem) worker.ProcessResult {
		if err := ctx.Err(); err != nil {
			return worker.ProcessResult{Index: item.Index, Move: item.Move, Err: err}
		}
		branch := p.Copy()
		branch.MakeMove(item.Move)
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Nodes: branch.Perft(depth - 1)}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)))

	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	results, done := pool.Run(moves)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i, r := range results {
		if !done[i] {
			return nil, context.Canceled
		}
		if r.Err != nil {
			return nil, r.Err
		}
		counts[r.Move.UCI()] = r.Nodes
	}
	return counts, nil
}
