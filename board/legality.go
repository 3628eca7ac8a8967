package board

// pinnedAgainst computes the set of the side-to-move's pieces that are
// pinned with respect to a candidate destination. A piece found between
// an enemy slider and its own king is pinned unless the candidate move
// keeps it on the pin line: moving along the line (or capturing the
// pinner) does not expose the king. Each piece is discovered pinned by
// at most one slider; the set is deduplicated by identity.
func (pos *Position) pinnedAgainst(dest Square) map[Piece]bool {
	pinned := make(map[Piece]bool)
	king := pos.King(pos.toMove)
	if king == nil || !king.Square().IsValid() {
		return pinned
	}
	them := pos.toMove.Other()
	kr, kf := king.Square().Rank(), king.Square().File()
	dr, df := dest.Rank(), dest.File()

	// Rook pins run along a rank or file. The destination is exempt
	// whenever it stays on the shared line with the king.
	for _, p := range pos.registry[them][Rook] {
		target := p.(Pinner).PinnedPiece()
		if target == nil {
			continue
		}
		pr, pf := p.Square().Rank(), p.Square().File()
		if (pr == kr && dr != kr) || (pf == kf && df != kf) {
			pinned[target] = true
		}
	}

	// Bishop pins run along a diagonal. Capturing the pinner or moving
	// on the king-pinner diagonal segment is exempt; anything else
	// leaves the line.
	for _, p := range pos.registry[them][Bishop] {
		target := p.(Pinner).PinnedPiece()
		if target == nil {
			continue
		}
		pr, pf := p.Square().Rank(), p.Square().File()
		if dest != p.Square() && offDiagonalPin(kr, kf, pr, pf, dr, df) {
			pinned[target] = true
		}
	}

	// Queens combine both behaviors.
	for _, p := range pos.registry[them][Queen] {
		target := p.(Pinner).PinnedPiece()
		if target == nil {
			continue
		}
		pr, pf := p.Square().Rank(), p.Square().File()
		if dest == p.Square() {
			continue
		}
		if (pr == kr && dr != kr) || (pf == kf && df != kf) ||
			(pr != kr && pf != kf && offDiagonalPin(kr, kf, pr, pf, dr, df)) {
			pinned[target] = true
		}
	}

	return pinned
}

// offDiagonalPin reports whether a destination at (dr, df) leaves the
// diagonal pin line between the king at (kr, kf) and the pinning slider
// at (pr, pf). Staying on the line means the destination is on the same
// diagonal as the king with the pinner still beyond it in the same
// direction; only the knight could jump to the far side of either, and
// a knight cannot stay on the line at all.
func offDiagonalPin(kr, kf, pr, pf, dr, df int) bool {
	if abs(dr-kr) != abs(df-kf) {
		return true
	}
	if sign(dr-kr) != sign(pr-dr) {
		return true
	}
	if sign(df-kf) != sign(pf-df) {
		return true
	}
	return false
}

// verifyCheckResolved enforces that a declared check was answered: after
// the mover's piece has landed and the turn has toggled, every non-King
// piece of the new side to move is tested against the checked king. Any
// piece that still reaches it fails the move. This is a post-hoc
// validation; the position has already been mutated and is not rolled
// back.
func (pos *Position) verifyCheckResolved(move string) error {
	king := pos.King(pos.checked)
	if king == nil || !king.Square().IsValid() {
		return nil
	}
	for kind := Pawn; kind < King; kind++ {
		for _, att := range pos.registry[pos.toMove][kind] {
			if att.Reach(king.Square(), true) {
				return &NotationError{
					Move:   move,
					Detail: "check not resolved by " + att.String(),
					Err:    ErrIllegalMove,
				}
			}
		}
	}
	return nil
}
