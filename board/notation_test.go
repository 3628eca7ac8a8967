package board

import (
	"testing"

	"github.com/dferris/sanboard/internal/testutil"
)

func apply(t *testing.T, pos *Position, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		if err := pos.ApplyNotation(mv); err != nil {
			t.Fatalf("move %s: %v", mv, err)
		}
	}
}

func TestOpeningSequence(t *testing.T) {
	pos := NewGame()
	moves := []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}
	for i, mv := range moves {
		want := White
		if i%2 == 1 {
			want = Black
		}
		if pos.SideToMove() != want {
			t.Fatalf("before %s: side to move = %v, want %v", mv, pos.SideToMove(), want)
		}
		testutil.AssertNoError(t, pos.ApplyNotation(mv))
	}

	want := "RNBQKxxR" + "PPPPxPPP" + "xxxxxNxx" + "xxxxPxxx" +
		"xBxxpxxx" + "xxnxxxxx" + "ppppxppp" + "rxbqkbnr"
	testutil.AssertEqual(t, pos.Encode(), want)
	if pos.SideToMove() != Black {
		t.Error("side to move did not alternate")
	}
}

func TestRookCaptureDisambiguation(t *testing.T) {
	pos := NewPosition()
	put(t, pos, Rook, White, A1)
	hRook := put(t, pos, Rook, White, H1)
	put(t, pos, Rook, Black, D1)
	put(t, pos, King, White, A8)
	put(t, pos, King, Black, H8)

	// Both rooks reach d1; the file disambiguator selects h1.
	apply(t, pos, "Rhxd1")
	if pos.Get(D1) != hRook {
		t.Errorf("d1 holds %v, want the h1 rook", pos.Get(D1))
	}
	if pos.Get(H1) != nil {
		t.Error("h1 still occupied")
	}
	if len(pos.PiecesOf(Rook, Black)) != 0 {
		t.Error("captured rook still registered")
	}
}

func TestPinnedCandidateSkipped(t *testing.T) {
	pos := NewPosition()
	put(t, pos, King, White, A4)
	free := put(t, pos, Rook, White, C8)
	pinnedRook := put(t, pos, Rook, White, C4)
	put(t, pos, King, Black, H1)
	put(t, pos, Rook, Black, H4)
	put(t, pos, Pawn, Black, C6)

	// Both rooks reach c6, but c4 is pinned along the fourth rank; the
	// unpinned c8 rook executes the capture without a disambiguator.
	apply(t, pos, "Rxc6")
	if pos.Get(C6) != free {
		t.Errorf("c6 holds %v, want the c8 rook", pos.Get(C6))
	}
	if pinnedRook.Square() != C4 {
		t.Error("pinned rook moved")
	}
}

func TestPinnedRookMayNotLeaveLine(t *testing.T) {
	pos := NewPosition()
	put(t, pos, King, White, D1)
	put(t, pos, Rook, White, D2)
	put(t, pos, Rook, Black, D8)

	err := pos.ApplyNotation("Rh2")
	testutil.AssertErrorIs(t, err, ErrIllegalMove)
	if pos.Get(D2) == nil {
		t.Error("pinned rook left d2")
	}
	if pos.SideToMove() != White {
		t.Error("failed move consumed the turn")
	}

	// Moving along the pin line stays legal.
	apply(t, pos, "Rd5")
	if pos.Get(D5) == nil || pos.Get(D5).Kind() != Rook {
		t.Error("rook did not advance along the pin line")
	}
}

func TestBishopCaptureDisambiguation(t *testing.T) {
	pos := NewPosition()
	low := put(t, pos, Bishop, White, A1)
	put(t, pos, Bishop, White, A7)
	put(t, pos, Bishop, Black, D4)
	put(t, pos, King, White, A8)
	put(t, pos, King, Black, H8)

	apply(t, pos, "B1xd4")
	if pos.Get(D4) != low {
		t.Errorf("d4 holds %v, want the a1 bishop", pos.Get(D4))
	}
	if len(pos.PiecesOf(Bishop, Black)) != 0 {
		t.Error("captured bishop still registered")
	}
}

func TestPinnedBishopSkipped(t *testing.T) {
	pos := NewPosition()
	put(t, pos, King, White, A1)
	put(t, pos, Bishop, White, B2)
	free := put(t, pos, Bishop, White, B4)
	put(t, pos, King, Black, H1)
	put(t, pos, Bishop, Black, H8)
	put(t, pos, Pawn, Black, A3)

	// b2 is pinned on the long diagonal, so b4 takes the pawn even
	// though b2 registers first.
	apply(t, pos, "Bxa3")
	if pos.Get(A3) != free {
		t.Errorf("a3 holds %v, want the b4 bishop", pos.Get(A3))
	}
	if pos.Get(B2) == nil {
		t.Error("pinned bishop moved")
	}
}

func TestKnightCaptureDisambiguation(t *testing.T) {
	pos := NewPosition()
	low := put(t, pos, Knight, White, A1)
	put(t, pos, Knight, White, A5)
	put(t, pos, Knight, Black, B3)
	put(t, pos, King, White, A8)
	put(t, pos, King, Black, H8)

	apply(t, pos, "N1xb3")
	if pos.Get(B3) != low {
		t.Errorf("b3 holds %v, want the a1 knight", pos.Get(B3))
	}
}

func TestQueenCapture(t *testing.T) {
	pos := NewPosition()
	put(t, pos, Queen, White, H4)
	put(t, pos, Pawn, Black, D4)
	put(t, pos, King, White, A8)
	put(t, pos, King, Black, H8)

	apply(t, pos, "Qxd4")
	if got := pos.Get(D4); got == nil || got.Kind() != Queen {
		t.Errorf("d4 holds %v, want the queen", got)
	}
	if len(pos.PiecesOf(Pawn, Black)) != 0 {
		t.Error("captured pawn still registered")
	}
}

func TestPawnCapture(t *testing.T) {
	pos := NewPosition()
	put(t, pos, Pawn, White, E3)
	put(t, pos, Pawn, Black, D4)
	put(t, pos, Pawn, Black, C5)
	put(t, pos, King, White, A8)
	put(t, pos, King, Black, H8)

	apply(t, pos, "xd4")
	if got := pos.Get(D4); got == nil || got.Kind() != Pawn || got.Color() != White {
		t.Errorf("d4 holds %v, want the white pawn", got)
	}
	if len(pos.PiecesOf(Pawn, Black)) != 1 {
		t.Error("captured pawn still registered")
	}
}

func TestKingCapture(t *testing.T) {
	pos := NewPosition()
	put(t, pos, King, White, A5)
	put(t, pos, King, Black, C5)
	put(t, pos, Pawn, Black, B5)

	apply(t, pos, "Kxb5")
	if got := pos.Get(B5); got == nil || got.Kind() != King || got.Color() != White {
		t.Errorf("b5 holds %v, want the white king", got)
	}
}

func TestCapturingKingRejected(t *testing.T) {
	pos := NewPosition()
	put(t, pos, Rook, White, A1)
	put(t, pos, King, White, H1)
	put(t, pos, King, Black, A8)

	err := pos.ApplyNotation("Rxa8")
	testutil.AssertErrorIs(t, err, ErrKingRemoval)
}

func TestEnPassant(t *testing.T) {
	pos := NewPosition()
	put(t, pos, Pawn, White, A2)
	put(t, pos, Pawn, White, D2)
	put(t, pos, Pawn, Black, B4)
	put(t, pos, Pawn, Black, E4)
	put(t, pos, King, White, A8)
	put(t, pos, King, Black, H8)

	apply(t, pos, "d4")
	if sq, ok := pos.EnPassantTarget(); !ok || sq != D3 {
		t.Fatalf("en passant target = %v, %v, want d3", sq, ok)
	}

	// The capture lands on the jumped square; the victim sits on d4.
	apply(t, pos, "xd3")
	if got := pos.Get(D3); got == nil || got.Kind() != Pawn || got.Color() != Black {
		t.Errorf("d3 holds %v, want the black pawn", got)
	}
	if pos.Get(D4) != nil {
		t.Error("captured pawn still on d4")
	}
	if len(pos.PiecesOf(Pawn, White)) != 1 {
		t.Error("captured pawn still registered")
	}
	if _, ok := pos.EnPassantTarget(); ok {
		t.Error("en passant window survived the capture")
	}
}

func TestEnPassantWindowExpires(t *testing.T) {
	pos := NewPosition()
	put(t, pos, Pawn, White, A2)
	put(t, pos, Pawn, Black, B4)
	put(t, pos, King, White, A8)
	put(t, pos, King, Black, H8)

	apply(t, pos, "a4")
	if sq, ok := pos.EnPassantTarget(); !ok || sq != A3 {
		t.Fatalf("en passant target = %v, %v, want a3", sq, ok)
	}

	// Any intervening move closes the window.
	apply(t, pos, "Kh7", "Ka7")
	err := pos.ApplyNotation("xa3")
	testutil.AssertErrorIs(t, err, ErrImpossibleCapture)
	if pos.Get(B4) == nil {
		t.Error("failed capture moved the pawn")
	}
}

func TestCastling(t *testing.T) {
	pos := NewPosition()
	put(t, pos, King, White, E1)
	put(t, pos, Rook, White, H1)
	put(t, pos, Pawn, White, E2)
	put(t, pos, King, Black, E8)
	put(t, pos, Rook, Black, A8)

	var events []string
	pos.SetMoveListener(func(_ Piece, from, to Square) {
		events = append(events, from.String()+"-"+to.String())
	})

	// Opening the en passant window first shows castling closes it.
	apply(t, pos, "e4")
	if _, ok := pos.EnPassantTarget(); !ok {
		t.Fatal("double advance did not open the en passant window")
	}

	apply(t, pos, "O-O-O")
	if got := pos.Get(C8); got == nil || got.Kind() != King {
		t.Errorf("c8 holds %v, want the black king", got)
	}
	if got := pos.Get(D8); got == nil || got.Kind() != Rook {
		t.Errorf("d8 holds %v, want the black rook", got)
	}
	if _, ok := pos.EnPassantTarget(); ok {
		t.Error("castling left the en passant window open")
	}

	apply(t, pos, "O-O")
	if got := pos.Get(G1); got == nil || got.Kind() != King {
		t.Errorf("g1 holds %v, want the white king", got)
	}
	if got := pos.Get(F1); got == nil || got.Kind() != Rook {
		t.Errorf("f1 holds %v, want the white rook", got)
	}

	// Each castle is two relocations, rook first.
	want := []string{
		"e2-e4",
		"a8-d8", "e8-c8",
		"h1-f1", "e1-g1",
	}
	testutil.AssertEqual(t, events, want)
}

func TestCastleUnavailable(t *testing.T) {
	pos := NewGame()
	err := pos.ApplyNotation("O-O")
	testutil.AssertErrorIs(t, err, ErrCastleUnavailable)

	// A rook of the wrong color on h1 does not qualify either.
	pos = NewPosition()
	put(t, pos, King, White, E1)
	put(t, pos, Rook, Black, H1)
	err = pos.ApplyNotation("O-O")
	testutil.AssertErrorIs(t, err, ErrCastleUnavailable)
}

func TestPromotion(t *testing.T) {
	pos := NewPosition()
	pawn := put(t, pos, Pawn, White, B7)

	var sawKind Kind
	var sawFrom, sawTo Square
	pos.SetMoveListener(func(p Piece, from, to Square) {
		sawKind, sawFrom, sawTo = p.Kind(), from, to
	})

	apply(t, pos, "b8=Q")
	promoted := pos.Get(B8)
	if promoted == nil || promoted.Kind() != Queen || promoted.Color() != White {
		t.Fatalf("b8 holds %v, want a white queen", promoted)
	}
	if len(pos.PiecesOf(Pawn, White)) != 0 {
		t.Error("pawn survived promotion")
	}
	if pawn.Square() != NoSquare {
		t.Error("promoted pawn still claims a square")
	}
	// The listener observes the pawn's final step, not the swap.
	if sawKind != Pawn || sawFrom != B7 || sawTo != B8 {
		t.Errorf("listener saw %v %v-%v, want the pawn b7-b8", sawKind, sawFrom, sawTo)
	}
	// The new piece answers queries with queen geometry.
	if !promoted.Reach(B1, false) || !promoted.Reach(H2, false) {
		t.Error("promoted queen lacks queen reach")
	}
}

func TestPromotionInvalidSuffix(t *testing.T) {
	pos := NewGame()
	for _, mv := range []string{"e8=K", "e8=J", "e8=p"} {
		err := pos.ApplyNotation(mv)
		testutil.AssertErrorIs(t, err, ErrPromotionInvalid)
	}
}

func TestBadNotation(t *testing.T) {
	pos := NewGame()
	for _, mv := range []string{"", "howdy", "i9", "e44", "Rxx4", "O-O-O-O"} {
		err := pos.ApplyNotation(mv)
		testutil.AssertErrorIs(t, err, ErrBadNotation)
	}
}

func TestQuietMoveOntoOccupiedSquare(t *testing.T) {
	pos := NewPosition()
	put(t, pos, Rook, White, A1)
	put(t, pos, Pawn, Black, A4)

	err := pos.ApplyNotation("Ra4")
	testutil.AssertErrorIs(t, err, ErrIllegalMove)
	if got := pos.Get(A4); got == nil || got.Color() != Black {
		t.Error("undeclared capture mutated the board")
	}
}

func TestDeclaredCheckIsAdvisory(t *testing.T) {
	pos := NewGame()

	// The marker is recorded as given, not verified against the board.
	apply(t, pos, "e4+")
	if c, ok := pos.CheckedColor(); !ok || c != Black {
		t.Fatalf("checked = %v, %v, want Black", c, ok)
	}

	// Black's reply passes validation (no White piece reaches e8) and
	// clears the state.
	apply(t, pos, "d5")
	if _, ok := pos.CheckedColor(); ok {
		t.Error("check state survived a resolving move")
	}
}

func TestRealCheckWithoutMarkerUnrecorded(t *testing.T) {
	pos := NewPosition()
	put(t, pos, Rook, White, B1)
	put(t, pos, King, White, H1)
	put(t, pos, King, Black, B8)

	// The rook now attacks b8, but without the marker nothing is
	// recorded.
	apply(t, pos, "Rb7")
	if _, ok := pos.CheckedColor(); ok {
		t.Error("check recorded without a marker")
	}
}

func TestUnresolvedCheckRejected(t *testing.T) {
	pos := NewPosition()
	put(t, pos, Rook, White, A1)
	put(t, pos, King, White, H1)
	put(t, pos, King, Black, E8)
	put(t, pos, Pawn, Black, D7)

	apply(t, pos, "Ra8+")

	// The pawn push leaves the king attacked along the eighth rank.
	err := pos.ApplyNotation("d5")
	testutil.AssertErrorIs(t, err, ErrIllegalMove)

	// Validation is post hoc: the board has already changed.
	if pos.Get(D5) == nil {
		t.Error("expected the failed move to remain applied")
	}
	if pos.SideToMove() != White {
		t.Error("expected the turn to have toggled before validation")
	}
}
