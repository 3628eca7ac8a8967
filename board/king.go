package board

type kingPiece struct {
	piece
}

func (p *kingPiece) Kind() Kind     { return King }
func (p *kingPiece) String() string { return pieceString(p) }

func (p *kingPiece) Reach(to Square, _ bool) bool {
	if !p.onBoard() || !to.IsValid() || to == p.sq {
		return false
	}
	dr := abs(to.Rank() - p.sq.Rank())
	df := abs(to.File() - p.sq.File())
	// One square in any direction. Castling is a Position-level
	// composite operation, not king geometry.
	return dr <= 1 && df <= 1 && p.landable(to)
}

func (p *kingPiece) CoveredSquares() []Square {
	if !p.onBoard() {
		return nil
	}
	r, f := p.sq.Rank(), p.sq.File()
	var out []Square
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			if dr == 0 && df == 0 {
				continue
			}
			if sq := NewSquare(f+df, r+dr); sq.IsValid() {
				out = append(out, sq)
			}
		}
	}
	return out
}

func (p *kingPiece) ReachableSquares() []Square {
	return p.filterLandable(p.CoveredSquares())
}
