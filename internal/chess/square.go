package chess

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Square is a board coordinate. File 0 is the a-file and rank 0 is the
// eighth rank, so a8 is {0, 0} and h1 is {7, 7}.
type Square struct {
	File int
	Rank int
}

// Offset is a displacement between two squares.
type Offset struct {
	DFile int
	DRank int
}

// NoSquare marks an absent optional square.
var NoSquare = Square{File: -1, Rank: -1}

// Sq builds a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return Square{File: int(s[0] - 'a'), Rank: int('8' - s[1])}, nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// OnBoard reports whether the square lies within the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Add returns the square displaced by o.
func (s Square) Add(o Offset) Square {
	return Square{File: s.File + o.DFile, Rank: s.Rank + o.DRank}
}

// AddFile returns the square df files away.
func (s Square) AddFile(df int) Square {
	return Square{File: s.File + df, Rank: s.Rank}
}

// AddRank returns the square dr ranks away.
func (s Square) AddRank(dr int) Square {
	return Square{File: s.File, Rank: s.Rank + dr}
}

// Equal reports whether two squares are the same coordinate.
func (s Square) Equal(o Square) bool {
	return s == o
}

// Distance is the Manhattan distance between two squares.
func (s Square) Distance(o Square) int {
	return abs(s.File-o.File) + abs(s.Rank-o.Rank)
}

// String returns algebraic notation, or "-" for squares off the board.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('8' - s.Rank)})
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
