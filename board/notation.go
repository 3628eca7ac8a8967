package board

import "regexp"

// movePattern matches one algebraic move: optional piece letter
// (pawn when absent), optional single-character rank or file
// disambiguator, optional capture marker, destination square, optional
// promotion suffix and optional check marker. The promotion letter is
// deliberately loose here and validated separately, so that an
// unrecognized suffix reports ErrPromotionInvalid rather than
// ErrBadNotation.
var movePattern = regexp.MustCompile(`^([RNBQK]?)([a-h1-8]?)(x?)([a-h][1-8])(=([A-Za-z]))?(\+)?$`)

// moveToken is the parsed form of one algebraic move.
type moveToken struct {
	kind     Kind
	disambig byte // 0 when absent; otherwise 'a'-'h' or '1'-'8'
	capture  bool
	dest     Square
	promo    Kind // NoKind when the move is not a promotion
	check    bool
}

// parseMove tokenizes algebraic move text. Castling is handled
// separately and does not reach here.
func parseMove(text string) (moveToken, error) {
	m := movePattern.FindStringSubmatch(text)
	if m == nil {
		return moveToken{}, notationErr(text, ErrBadNotation)
	}

	tok := moveToken{kind: Pawn, promo: NoKind}
	if m[1] != "" {
		tok.kind, _ = kindFromLetter(m[1][0])
	}
	if m[2] != "" {
		tok.disambig = m[2][0]
	}
	tok.capture = m[3] == "x"
	tok.dest = MustSquare(m[4])
	if m[5] != "" {
		switch m[6][0] {
		case 'N':
			tok.promo = Knight
		case 'B':
			tok.promo = Bishop
		case 'R':
			tok.promo = Rook
		case 'Q':
			tok.promo = Queen
		default:
			return moveToken{}, notationErr(text, ErrPromotionInvalid)
		}
	}
	tok.check = m[7] == "+"
	return tok, nil
}

// ApplyNotation applies one move given in algebraic notation, e.g.
// "e4", "Nxf6+", "exd5", "O-O" or "c8=Q". It resolves which piece
// executes the move, validates pins and declared checks, applies the
// resulting mutations and toggles the side to move.
//
// Failures surface as a NotationError wrapping one of the sentinel
// kinds. Simple moves fail before mutating the position; the composite
// castling and promotion sequences, and the post-move check-resolution
// validation, make no atomicity guarantee.
func (pos *Position) ApplyNotation(text string) error {
	switch text {
	case "O-O", "O-O+":
		return pos.castle(text, true, text == "O-O+")
	case "O-O-O", "O-O-O+":
		return pos.castle(text, false, text == "O-O-O+")
	}

	tok, err := parseMove(text)
	if err != nil {
		return err
	}

	// A declared capture onto an empty square is legal only as an en
	// passant capture: a pawn taking at the current en passant target.
	// The captured pawn then sits on the rank the target records, not
	// on the destination rank.
	captureSq := tok.dest
	if tok.capture && pos.Get(tok.dest) == nil {
		if tok.kind == Pawn && pos.ep != nil && tok.dest == pos.ep.sq {
			captureSq = NewSquare(tok.dest.File(), pos.ep.victimRank)
		} else {
			return notationErr(text, ErrImpossibleCapture)
		}
	}
	if !tok.capture && pos.Get(tok.dest) != nil {
		// A quiet move cannot land on an occupied square; a capture
		// must be declared as one.
		return notationErr(text, ErrIllegalMove)
	}

	mover := pos.findPiece(tok.kind, tok.dest, tok.disambig, tok.capture)
	if mover == nil {
		return notationErr(text, ErrIllegalMove)
	}
	src := mover.Square()

	if tok.capture {
		if _, err := pos.Remove(captureSq); err != nil {
			return err
		}
	}

	// Record or clear the en passant window before relocating: a double
	// pawn advance stores the jumped square plus the actual landing
	// rank; every other move closes the window.
	if mover.Kind() == Pawn && src.File() == tok.dest.File() &&
		abs(src.Rank()-tok.dest.Rank()) == 2 {
		pos.ep = &epTarget{
			sq:         NewSquare(tok.dest.File(), (src.Rank()+tok.dest.Rank())/2),
			victimRank: tok.dest.Rank(),
		}
	} else {
		pos.ep = nil
	}

	if tok.promo == NoKind {
		if _, err := pos.Relocate(src, tok.dest); err != nil {
			return err
		}
	} else {
		// Promotion swaps the pawn for a freshly constructed piece at
		// the destination. The listener sees the pawn's move first.
		if pos.listener != nil {
			pos.listener(mover, src, tok.dest)
		}
		if _, err := pos.Remove(src); err != nil {
			return err
		}
		promoted := NewPiece(tok.promo, mover.Color(), pos.nextID(tok.promo, mover.Color()))
		if err := pos.Put(promoted, tok.dest); err != nil {
			return err
		}
	}

	pos.toMove = pos.toMove.Other()

	if pos.checked != NoColor {
		if err := pos.verifyCheckResolved(text); err != nil {
			return err
		}
	}

	// The check marker is advisory input: it is recorded for the new
	// side to move but not independently verified.
	if tok.check {
		pos.checked = pos.toMove
	} else {
		pos.checked = NoColor
	}
	return nil
}

// findPiece resolves the side-to-move's piece of the given kind that
// executes a move to dest: it filters by the disambiguator when
// present, by geometric reach, and by exclusion from the pin set
// computed against the destination. The first candidate in
// registration order wins. The king bypasses the pin filter and the
// disambiguator; there is only one and reach alone decides.
func (pos *Position) findPiece(kind Kind, dest Square, disambig byte, capture bool) Piece {
	if kind == King {
		k := pos.King(pos.toMove)
		if k != nil && k.Reach(dest, capture) {
			return k
		}
		return nil
	}

	wantRank, wantFile := -1, -1
	if disambig != 0 {
		if disambig >= '1' && disambig <= '8' {
			wantRank = int(disambig - '1')
		} else {
			wantFile = int(disambig - 'a')
		}
	}

	pinned := pos.pinnedAgainst(dest)
	for _, cand := range pos.registry[pos.toMove][kind] {
		if wantRank >= 0 && cand.Square().Rank() != wantRank {
			continue
		}
		if wantFile >= 0 && cand.Square().File() != wantFile {
			continue
		}
		if !cand.Reach(dest, capture) || pinned[cand] {
			continue
		}
		return cand
	}
	return nil
}

// castle executes a castling move. It validates the king and rook of
// the side to move on their home squares and the emptiness of the
// squares between them, then relocates both pieces as two discrete
// moves (the listener fires twice). The trailing check marker alone
// sets or clears the check state; no pin or attack validation is
// performed for castling.
func (pos *Position) castle(text string, kingside, check bool) error {
	rank := 0
	if pos.toMove == Black {
		rank = 7
	}

	kingSrc := NewSquare(4, rank)
	var rookSrc, kingDst, rookDst Square
	var between []int
	if kingside {
		rookSrc = NewSquare(7, rank)
		kingDst = NewSquare(6, rank)
		rookDst = NewSquare(5, rank)
		between = []int{5, 6}
	} else {
		rookSrc = NewSquare(0, rank)
		kingDst = NewSquare(2, rank)
		rookDst = NewSquare(3, rank)
		between = []int{1, 2, 3}
	}

	king := pos.Get(kingSrc)
	rook := pos.Get(rookSrc)
	if king == nil || king.Kind() != King || king.Color() != pos.toMove ||
		rook == nil || rook.Kind() != Rook || rook.Color() != pos.toMove {
		return notationErr(text, ErrCastleUnavailable)
	}
	for _, f := range between {
		if pos.Get(NewSquare(f, rank)) != nil {
			return notationErr(text, ErrCastleUnavailable)
		}
	}

	if _, err := pos.Relocate(rookSrc, rookDst); err != nil {
		return err
	}
	if _, err := pos.Relocate(kingSrc, kingDst); err != nil {
		return err
	}

	pos.ep = nil
	pos.toMove = pos.toMove.Other()
	if check {
		pos.checked = pos.toMove
	} else {
		pos.checked = NoColor
	}
	return nil
}
