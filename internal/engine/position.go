// Package engine provides move generation, position codecs and the
// fixed-depth negamax search for a chess board.
package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// Position is a board together with the configuration and move-list cache
// used to generate and search its moves. The embedded Board is the single
// mutable state shared by the whole search; it is changed with MakeMove and
// restored with UnmakeMove, never copied per ply.
//
// A Position is not safe for concurrent use. Give each goroutine its own
// Copy.
type Position struct {
	*chess.Board

	cfg     *config.Config
	cache   *hashing.MoveCache
	history []playedMove
}

// playedMove records a move applied through Play so Undo can revert it.
type playedMove struct {
	move chess.Move
	undo chess.Undo
}

func newPosition(board *chess.Board, cfg *config.Config) *Position {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Position{
		Board: board,
		cfg:   cfg,
		cache: hashing.NewMoveCache(cfg.CacheSize),
	}
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition(cfg *config.Config) *Position {
	return NewPosition(InitialFEN, cfg)
}

// Config returns the configuration the position was created with.
func (p *Position) Config() *config.Config {
	return p.cfg
}

// Copy returns an independent position with the same board state, an
// empty cache of its own and no play history.
func (p *Position) Copy() *Position {
	return newPosition(p.Board.Copy(), p.cfg)
}

// CacheStats reports how the move-list cache has performed.
func (p *Position) CacheStats() hashing.Stats {
	return p.cache.Stats()
}
