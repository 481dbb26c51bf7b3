package engine

import (
	"context"
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// SearchParallel searches like Search but splits the root moves over a
// pool of workers. Every root move is searched on its own Copy of the
// position, so the receiver is never touched by a worker. Scores are
// reduced in generation order with rng deciding ties, giving the same
// score and node count as Search at the same depth.
//
// Cancelling ctx stops workers from starting further root moves and
// returns ctx's error.
func (p *Position) SearchParallel(ctx context.Context, depth int, rng *rand.Rand, workers int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(p.cfg.Search.Seed))
	}
	if workers <= 1 || depth == 0 {
		return p.Search(depth, rng), nil
	}

	colour := p.ToMove
	moves := p.GenerateMoves(colour)
	if len(moves) == 0 {
		return p.Search(depth, rng), nil
	}

	p.cfg.Logf(2, "searching %d root moves at depth %d on %d workers", len(moves), depth, workers)

	pool := worker.NewPoolWithOptions(func(item worker.WorkItem) worker.ProcessResult {
		return p.searchRootMove(ctx, item, depth)
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)))

	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	results, done := pool.Run(moves)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var best *chess.Move
	bestScore := -Infinity
	nodes := uint64(1)
	for i, r := range results {
		if !done[i] {
			return Result{}, context.Canceled
		}
		if r.Err != nil {
			return Result{}, r.Err
		}
		nodes += r.Nodes
		if preferScore(rng, best == nil, r.Score, bestScore) {
			m := moves[i]
			best = &m
			bestScore = r.Score
		}
	}
	return Result{Move: best, Score: bestScore, Nodes: nodes}, nil
}

// searchRootMove scores one root move on a private copy of the position.
func (p *Position) searchRootMove(ctx context.Context, item worker.WorkItem, depth int) worker.ProcessResult {
	if err := ctx.Err(); err != nil {
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Err: err}
	}
	branch := p.Copy()
	branch.MakeMove(item.Move)

	// Tie-breaks below the root only pick among equal scores, so any
	// source gives the same score.
	s := searcher{pos: branch, rng: rand.New(rand.NewSource(int64(item.Index)))}
	_, score := s.negamax(depth - 1)
	return worker.ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Score: -score,
		Nodes: s.nodes,
	}
}
