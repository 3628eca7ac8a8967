package board

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

type knightPiece struct {
	piece
}

func (p *knightPiece) Kind() Kind     { return Knight }
func (p *knightPiece) String() string { return pieceString(p) }

func (p *knightPiece) Reach(to Square, _ bool) bool {
	if !p.onBoard() || !to.IsValid() {
		return false
	}
	dr := abs(to.Rank() - p.sq.Rank())
	df := abs(to.File() - p.sq.File())
	// Never blocked by intervening pieces.
	return ((dr == 2 && df == 1) || (dr == 1 && df == 2)) && p.landable(to)
}

func (p *knightPiece) CoveredSquares() []Square {
	if !p.onBoard() {
		return nil
	}
	r, f := p.sq.Rank(), p.sq.File()
	var out []Square
	for _, o := range knightOffsets {
		if sq := NewSquare(f+o[1], r+o[0]); sq.IsValid() {
			out = append(out, sq)
		}
	}
	return out
}

func (p *knightPiece) ReachableSquares() []Square {
	return p.filterLandable(p.CoveredSquares())
}
