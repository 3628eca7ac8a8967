package board

// Ray directions as (rank, file) steps.
var (
	rookDirs   = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = append(append([][2]int{}, rookDirs...), bishopDirs...)
)

// slideReach reports whether a slider at the receiver's square can move
// to the destination along one of dirs: the squares strictly between are
// empty and the destination is empty or enemy-occupied.
func (p *piece) slideReach(to Square, dirs [][2]int) bool {
	if !p.onBoard() || !to.IsValid() || to == p.sq {
		return false
	}
	dr := to.Rank() - p.sq.Rank()
	df := to.File() - p.sq.File()

	stepR, stepF, ok := rayStep(dr, df, dirs)
	if !ok {
		return false
	}
	r, f := p.sq.Rank()+stepR, p.sq.File()+stepF
	for NewSquare(f, r) != to {
		if p.pos.Get(NewSquare(f, r)) != nil {
			return false
		}
		r += stepR
		f += stepF
	}
	return p.landable(to)
}

// slideCovers returns the squares covered along each direction: every
// empty square up to and including the first occupied one.
func (p *piece) slideCovers(dirs [][2]int) []Square {
	if !p.onBoard() {
		return nil
	}
	var out []Square
	for _, d := range dirs {
		r, f := p.sq.Rank()+d[0], p.sq.File()+d[1]
		for {
			sq := NewSquare(f, r)
			if !sq.IsValid() {
				break
			}
			out = append(out, sq)
			if p.pos.Get(sq) != nil {
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return out
}

// slidePinned walks the ray from the slider toward the opposing king.
// If exactly one piece of either color stands strictly between the two,
// that piece is returned as pinned.
func (p *piece) slidePinned(dirs [][2]int) Piece {
	if !p.onBoard() {
		return nil
	}
	king := p.pos.King(p.color.Other())
	if king == nil || !king.Square().IsValid() {
		return nil
	}
	dr := king.Square().Rank() - p.sq.Rank()
	df := king.Square().File() - p.sq.File()

	stepR, stepF, ok := rayStep(dr, df, dirs)
	if !ok {
		return nil
	}
	var pinned Piece
	r, f := p.sq.Rank()+stepR, p.sq.File()+stepF
	for NewSquare(f, r) != king.Square() {
		if blocker := p.pos.Get(NewSquare(f, r)); blocker != nil {
			if pinned != nil {
				// A second intervener shields the first.
				return nil
			}
			pinned = blocker
		}
		r += stepR
		f += stepF
	}
	return pinned
}

// rayStep resolves a (rank, file) delta to a unit step contained in
// dirs. Deltas that are not straight lines along dirs yield ok=false.
func rayStep(dr, df int, dirs [][2]int) (stepR, stepF int, ok bool) {
	if dr == 0 && df == 0 {
		return 0, 0, false
	}
	if dr != 0 && df != 0 && abs(dr) != abs(df) {
		return 0, 0, false
	}
	stepR, stepF = sign(dr), sign(df)
	for _, d := range dirs {
		if d[0] == stepR && d[1] == stepF {
			return stepR, stepF, true
		}
	}
	return 0, 0, false
}

type rookPiece struct {
	piece
}

func (p *rookPiece) Kind() Kind     { return Rook }
func (p *rookPiece) String() string { return pieceString(p) }

func (p *rookPiece) Reach(to Square, _ bool) bool {
	return p.slideReach(to, rookDirs)
}

func (p *rookPiece) CoveredSquares() []Square {
	return p.slideCovers(rookDirs)
}

func (p *rookPiece) ReachableSquares() []Square {
	return p.filterLandable(p.CoveredSquares())
}

func (p *rookPiece) PinnedPiece() Piece {
	return p.slidePinned(rookDirs)
}

type bishopPiece struct {
	piece
}

func (p *bishopPiece) Kind() Kind     { return Bishop }
func (p *bishopPiece) String() string { return pieceString(p) }

func (p *bishopPiece) Reach(to Square, _ bool) bool {
	return p.slideReach(to, bishopDirs)
}

func (p *bishopPiece) CoveredSquares() []Square {
	return p.slideCovers(bishopDirs)
}

func (p *bishopPiece) ReachableSquares() []Square {
	return p.filterLandable(p.CoveredSquares())
}

func (p *bishopPiece) PinnedPiece() Piece {
	return p.slidePinned(bishopDirs)
}

type queenPiece struct {
	piece
}

func (p *queenPiece) Kind() Kind     { return Queen }
func (p *queenPiece) String() string { return pieceString(p) }

func (p *queenPiece) Reach(to Square, _ bool) bool {
	return p.slideReach(to, queenDirs)
}

func (p *queenPiece) CoveredSquares() []Square {
	return p.slideCovers(queenDirs)
}

func (p *queenPiece) ReachableSquares() []Square {
	return p.filterLandable(p.CoveredSquares())
}

func (p *queenPiece) PinnedPiece() Piece {
	return p.slidePinned(queenDirs)
}
