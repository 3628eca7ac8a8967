package board

type pawnPiece struct {
	piece
}

func (p *pawnPiece) Kind() Kind     { return Pawn }
func (p *pawnPiece) String() string { return pieceString(p) }

// forward returns the pawn's direction of travel and starting rank.
func (p *pawnPiece) forward() (dir, start int) {
	if p.color == White {
		return 1, 1
	}
	return -1, 6
}

func (p *pawnPiece) Reach(to Square, capture bool) bool {
	if !p.onBoard() || !to.IsValid() {
		return false
	}
	dir, start := p.forward()
	fr, ff := p.sq.Rank(), p.sq.File()
	tr, tf := to.Rank(), to.File()

	if capture {
		// One square forward-diagonal. The destination may be empty:
		// en passant is resolved by the notation layer, which knows the
		// previous move.
		return abs(tf-ff) == 1 && tr-fr == dir && p.landable(to)
	}

	if tf != ff || p.pos.Get(to) != nil {
		return false
	}
	if tr-fr == dir {
		return true
	}
	// Double advance from the starting rank; the jumped square must be
	// empty as well.
	return fr == start && tr-fr == 2*dir && p.pos.Get(NewSquare(ff, fr+dir)) == nil
}

func (p *pawnPiece) CoveredSquares() []Square {
	if !p.onBoard() {
		return nil
	}
	dir, _ := p.forward()
	r, f := p.sq.Rank(), p.sq.File()

	var out []Square
	for _, df := range [2]int{-1, 1} {
		if sq := NewSquare(f+df, r+dir); sq.IsValid() {
			out = append(out, sq)
		}
	}
	return out
}

func (p *pawnPiece) ReachableSquares() []Square {
	if !p.onBoard() {
		return nil
	}
	dir, start := p.forward()
	r, f := p.sq.Rank(), p.sq.File()

	var out []Square
	if sq := NewSquare(f, r+dir); sq.IsValid() && p.pos.Get(sq) == nil {
		out = append(out, sq)
		if dbl := NewSquare(f, r+2*dir); r == start && p.pos.Get(dbl) == nil {
			out = append(out, dbl)
		}
	}
	for _, sq := range p.CoveredSquares() {
		if occ := p.pos.Get(sq); occ != nil && occ.Color() != p.color {
			out = append(out, sq)
		} else if occ == nil && p.pos.epCaptureSquare() == sq {
			// The adjacent enemy pawn that just double-advanced can be
			// taken as if it had moved one square.
			out = append(out, sq)
		}
	}
	return out
}
