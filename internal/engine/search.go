package engine

import (
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Infinity bounds every score. A side that is checkmated scores -Infinity.
const Infinity = 1 << 30

// Result is the outcome of a search.
type Result struct {
	// Move is the chosen move, or nil when depth is 0 or the side to move
	// has no legal moves.
	Move *chess.Move

	// Score is from the point of view of the side to move.
	Score int

	// Nodes counts the positions visited, the root included.
	Nodes uint64
}

// Search runs a full-width negamax search of the given depth for the side
// to move. Moves with equal scores replace the current best on a coin flip
// drawn from rng; a nil rng is seeded from the position's configuration.
//
// The board is changed during the search and restored before returning.
func (p *Position) Search(depth int, rng *rand.Rand) Result {
	if rng == nil {
		rng = rand.New(rand.NewSource(p.cfg.Search.Seed))
	}
	s := searcher{pos: p, rng: rng}
	move, score := s.negamax(depth)
	return Result{Move: move, Score: score, Nodes: s.nodes}
}

// searcher carries the state of one search.
type searcher struct {
	pos   *Position
	rng   *rand.Rand
	nodes uint64
}

func (s *searcher) negamax(depth int) (*chess.Move, int) {
	s.nodes++
	p := s.pos
	if depth == 0 {
		return nil, p.Evaluate()
	}

	colour := p.ToMove
	moves := p.GenerateMoves(colour)
	if len(moves) == 0 {
		if p.IsInCheck(colour) {
			return nil, -Infinity
		}
		return nil, 0
	}

	var best *chess.Move
	bestScore := -Infinity
	for i := range moves {
		m := moves[i]
		undo := p.MakeMove(m)
		_, score := s.negamax(depth - 1)
		score = -score
		p.UnmakeMove(m, undo)

		if preferScore(s.rng, best == nil, score, bestScore) {
			best = &m
			bestScore = score
		}
	}
	return best, bestScore
}

// preferScore applies the selection rule shared by serial and parallel
// search: the first move is always taken, a strictly greater score wins
// and an equal score wins on a coin flip.
func preferScore(rng *rand.Rand, first bool, score, bestScore int) bool {
	switch {
	case first:
		return true
	case score > bestScore:
		return true
	case score == bestScore:
		return rng.Intn(2) == 0
	}
	return false
}
