package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// PseudoLegalMoves returns every move colour's pieces can make by their
// movement rules, ignoring whether the mover's king is left attacked.
// Squares are visited from a8 to h1; each piece lists its moves in the
// catalog's direction order.
//
// The returned slice may be shared with the cache and must not be modified.
func (p *Position) PseudoLegalMoves(colour chess.Colour) []chess.Move {
	return p.cached(colour, hashing.PseudoLegal, p.generatePseudoLegal)
}

// GenerateMoves returns the legal moves of colour: the pseudo-legal moves
// that do not leave colour's own king attacked.
//
// The returned slice may be shared with the cache and must not be modified.
func (p *Position) GenerateMoves(colour chess.Colour) []chess.Move {
	return p.cached(colour, hashing.Legal, p.generateLegal)
}

// cached looks the list up by position key, generating and storing it on a miss.
func (p *Position) cached(colour chess.Colour, kind hashing.ListKind, generate func(chess.Colour) []chess.Move) []chess.Move {
	if p.cache == nil {
		return generate(colour)
	}
	key := hashing.NewKey(p.Board, colour, kind)
	if moves, ok := p.cache.Get(key); ok {
		return moves
	}
	moves := generate(colour)
	p.cache.Add(key, moves)
	return moves
}

func (p *Position) generatePseudoLegal(colour chess.Colour) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := p.Squares[rank][file]
			if piece.Colour != colour {
				continue
			}
			if gen := catalog[piece.Kind]; gen != nil {
				moves = gen(p, chess.Sq(file, rank), piece, moves)
			}
		}
	}
	return moves
}

func (p *Position) generateLegal(colour chess.Colour) []chess.Move {
	pseudo := p.PseudoLegalMoves(colour)
	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		undo := p.MakeMove(m)
		if !p.IsInCheck(colour) {
			legal = append(legal, m)
		}
		p.UnmakeMove(m, undo)
	}
	return legal
}
