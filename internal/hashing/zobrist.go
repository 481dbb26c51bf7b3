// Package hashing provides position keys and the bounded move-list cache.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x5eed1e55

const numSquares = chess.BoardSize * chess.BoardSize

var (
	pieceKeys     [2][chess.NumKinds][numSquares]uint64
	blackToMove   uint64
	castlingKeys  [2][2]uint64
	enPassantKeys [numSquares]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := 0; c < 2; c++ {
		for k := 0; k < int(chess.NumKinds); k++ {
			for sq := 0; sq < numSquares; sq++ {
				pieceKeys[c][k][sq] = rng.Uint64()
			}
		}
	}
	blackToMove = rng.Uint64()
	for c := 0; c < 2; c++ {
		for s := 0; s < 2; s++ {
			castlingKeys[c][s] = rng.Uint64()
		}
	}
	for sq := 0; sq < numSquares; sq++ {
		enPassantKeys[sq] = rng.Uint64()
	}
}

// Zobrist returns the hash of the full board state: placement, side to
// move, castling rights and en passant target. Clocks are not hashed.
func Zobrist(board *chess.Board) uint64 {
	var h uint64
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := board.Squares[rank][file]
			if p.IsEmpty() {
				continue
			}
			h ^= pieceKeys[p.Colour][p.Kind][rank*chess.BoardSize+file]
		}
	}
	if board.ToMove == chess.Black {
		h ^= blackToMove
	}
	for c := 0; c < 2; c++ {
		for s := 0; s < 2; s++ {
			if board.Castling[c][s] {
				h ^= castlingKeys[c][s]
			}
		}
	}
	if ep := board.EnPassant; ep.OnBoard() {
		h ^= enPassantKeys[ep.Rank*chess.BoardSize+ep.File]
	}
	return h
}
