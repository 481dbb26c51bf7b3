package engine

// Status describes whether the side to move can still play.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Status reports whether the side to move is checkmated, stalemated or
// still has a legal move.
func (p *Position) Status() Status {
	if len(p.GenerateMoves(p.ToMove)) > 0 {
		return Ongoing
	}
	if p.IsInCheck(p.ToMove) {
		return Checkmate
	}
	return Stalemate
}

// IsCheckmate returns true if the side to move is in check with no legal move.
func (p *Position) IsCheckmate() bool {
	return p.Status() == Checkmate
}

// IsStalemate returns true if the side to move is not in check but has no
// legal move.
func (p *Position) IsStalemate() bool {
	return p.Status() == Stalemate
}
