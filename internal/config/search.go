package config

// SearchConfig holds settings for the negamax opponent.
type SearchConfig struct {
	// Depth is the fixed search depth in plies.
	Depth int

	// Seed feeds the tie-breaking random source. Equal seeds give equal
	// move choices for the same position and depth.
	Seed int64

	// Workers is the number of goroutines splitting the root moves.
	// One worker searches serially on the shared board.
	Workers int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() SearchConfig {
	return SearchConfig{
		Depth:   3,
		Seed:    1,
		Workers: 1,
	}
}
