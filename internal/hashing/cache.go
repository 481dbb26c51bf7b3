package hashing

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// ListKind distinguishes pseudo-legal from legal move lists.
type ListKind int

const (
	PseudoLegal ListKind = iota
	Legal
)

// Key identifies one memoized move list.
type Key struct {
	Hash   uint64
	Colour chess.Colour
	Kind   ListKind
}

// NewKey builds the cache key for colour's list in the board's position.
func NewKey(board *chess.Board, colour chess.Colour, kind ListKind) Key {
	return Key{Hash: Zobrist(board), Colour: colour, Kind: kind}
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// MoveCache memoizes generated move lists, evicting the least recently
// used entry once it holds size lists. A nil *MoveCache is a valid
// disabled cache: lookups miss and additions are dropped.
//
// Cached slices are shared; callers must not modify them.
type MoveCache struct {
	lists  *lru.Cache[Key, []chess.Move]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewMoveCache creates a cache bounded to size lists. A size of zero or
// less returns nil, the disabled cache.
func NewMoveCache(size int) *MoveCache {
	if size <= 0 {
		return nil
	}
	lists, err := lru.New[Key, []chess.Move](size)
	if err != nil {
		return nil
	}
	return &MoveCache{lists: lists}
}

// Get returns the cached list for key.
func (c *MoveCache) Get(key Key) ([]chess.Move, bool) {
	if c == nil {
		return nil, false
	}
	moves, ok := c.lists.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return moves, ok
}

// Add stores the list for key, evicting the oldest entry if full.
func (c *MoveCache) Add(key Key, moves []chess.Move) {
	if c == nil {
		return
	}
	c.lists.Add(key, moves)
}

// Stats returns hit and miss counts along with the current size.
func (c *MoveCache) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load(), Len: c.lists.Len()}
}
