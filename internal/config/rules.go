package config

// RulesConfig holds switches for position setup and rule details.
type RulesConfig struct {
	// FullFEN applies the side-to-move, castling, en passant and clock
	// fields of a FEN string. When false only the piece placement is read
	// and the board starts with white to move and all castling rights.
	FullFEN bool

	// CastleThroughCheck skips the attacked-square test on the king's
	// start and transit squares when generating castling moves. The king
	// must still stand on its home square with the rook on its corner.
	CastleThroughCheck bool
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() RulesConfig {
	return RulesConfig{}
}
