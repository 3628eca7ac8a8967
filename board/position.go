package board

import (
	"fmt"
	"strings"
)

// MoveListener receives a notification for every atomic piece
// relocation: the moved piece, its source and its destination. It fires
// before any dependent state mutation such as a promotion swap, and
// twice for castling (once per piece).
type MoveListener func(p Piece, from, to Square)

// epTarget records the transient en passant opportunity left by a
// double pawn advance.
type epTarget struct {
	// sq is the square a capturing pawn lands on (the jumped square).
	sq Square
	// victimRank is the rank of the pawn actually captured; it differs
	// from sq's rank during en passant.
	victimRank int
}

// Position holds the state of a game: the placement of all pieces, the
// side to move, and the en passant and check bookkeeping.
//
// The pieces are doubly indexed. The square array finds pieces by where
// they stand; the per-(kind, color) registry finds them by what they
// are. A piece's square is the single source of truth for its location
// and both indexes are updated together on every mutation.
type Position struct {
	squares  [64]Piece
	registry [2][6][]Piece
	toMove   Color
	ep       *epTarget
	checked  Color
	listener MoveListener
}

// NewPosition returns an empty board with White to move.
func NewPosition() *Position {
	return &Position{toMove: White, checked: NoColor}
}

// NewGame returns a board populated with the standard initial position.
func NewGame() *Position {
	pos := NewPosition()
	for f := 0; f < 8; f++ {
		pos.place(Pawn, White, NewSquare(f, 1))
		pos.place(Pawn, Black, NewSquare(f, 6))
	}
	pos.place(Rook, White, A1)
	pos.place(Rook, White, H1)
	pos.place(Rook, Black, A8)
	pos.place(Rook, Black, H8)
	pos.place(Knight, White, B1)
	pos.place(Knight, White, G1)
	pos.place(Knight, Black, B8)
	pos.place(Knight, Black, G8)
	pos.place(Bishop, White, C1)
	pos.place(Bishop, White, F1)
	pos.place(Bishop, Black, C8)
	pos.place(Bishop, Black, F8)
	pos.place(Queen, White, D1)
	pos.place(Queen, Black, D8)
	pos.place(King, White, E1)
	pos.place(King, Black, E8)
	return pos
}

// place constructs a piece with the next free ordinal and puts it on
// the board. Setup helper; the square is assumed empty.
func (pos *Position) place(kind Kind, color Color, sq Square) Piece {
	p := NewPiece(kind, color, pos.nextID(kind, color))
	if err := pos.Put(p, sq); err != nil {
		panic(fmt.Sprintf("board: corrupt setup: %v", err))
	}
	return p
}

// nextID returns the next free ordinal for (kind, color).
func (pos *Position) nextID(kind Kind, color Color) int {
	return len(pos.registry[color][kind])
}

// SetMoveListener registers the callback notified on every piece
// relocation. Passing nil removes the listener.
func (pos *Position) SetMoveListener(fn MoveListener) {
	pos.listener = fn
}

// SideToMove returns the color that moves next.
func (pos *Position) SideToMove() Color {
	return pos.toMove
}

// SetSideToMove overrides which color moves next. Intended for setting
// up positions without a game history.
func (pos *Position) SetSideToMove(c Color) {
	pos.toMove = c
}

// CheckedColor returns the color currently recorded as being in check.
// If set, it always names the side that moves next.
func (pos *Position) CheckedColor() (Color, bool) {
	if pos.checked == NoColor {
		return NoColor, false
	}
	return pos.checked, true
}

// EnPassantTarget returns the square an en passant capture could land
// on, if the previous move was a double pawn advance.
func (pos *Position) EnPassantTarget() (Square, bool) {
	if pos.ep == nil {
		return NoSquare, false
	}
	return pos.ep.sq, true
}

// epCaptureSquare returns the en passant landing square or NoSquare.
func (pos *Position) epCaptureSquare() Square {
	if pos.ep == nil {
		return NoSquare
	}
	return pos.ep.sq
}

// Get returns the piece at the given square, or nil if the square is
// empty or invalid.
func (pos *Position) Get(sq Square) Piece {
	if !sq.IsValid() {
		return nil
	}
	return pos.squares[sq]
}

// King returns the king of the given color, or nil if it has not been
// placed yet.
func (pos *Position) King(c Color) Piece {
	if c >= NoColor {
		return nil
	}
	kings := pos.registry[c][King]
	if len(kings) == 0 {
		return nil
	}
	return kings[0]
}

// PiecesOf returns the pieces of the given kind and color in
// registration order. The returned slice is a copy.
func (pos *Position) PiecesOf(kind Kind, c Color) []Piece {
	if kind >= NoKind || c >= NoColor {
		return nil
	}
	return append([]Piece(nil), pos.registry[c][kind]...)
}

// Put places a piece on the given square and registers it. The square
// is assumed empty; placement performs no legality checking. Placing a
// second king of a color fails with ErrDuplicateKing.
func (pos *Position) Put(p Piece, sq Square) error {
	if p == nil || !sq.IsValid() {
		return fmt.Errorf("%w: put at %v", ErrInvalidSquare, sq)
	}
	if p.Kind() == King && pos.King(p.Color()) != nil {
		return fmt.Errorf("%w: %v", ErrDuplicateKing, p.Color())
	}
	pos.squares[sq] = p
	p.attach(pos)
	p.moveTo(sq)
	pos.registry[p.Color()][p.Kind()] = append(pos.registry[p.Color()][p.Kind()], p)
	return nil
}

// Remove takes the piece off the given square and unregisters it,
// returning it. Removing from an empty square fails with
// ErrEmptySquare; removing a king is an integrity violation and fails
// with ErrKingRemoval, leaving the position unchanged.
func (pos *Position) Remove(sq Square) (Piece, error) {
	if !sq.IsValid() {
		return nil, fmt.Errorf("%w: remove at %v", ErrInvalidSquare, sq)
	}
	p := pos.squares[sq]
	if p == nil {
		return nil, fmt.Errorf("%w: remove at %v", ErrEmptySquare, sq)
	}
	if p.Kind() == King {
		return nil, fmt.Errorf("%w: %v king at %v", ErrKingRemoval, p.Color(), sq)
	}
	pos.squares[sq] = nil
	p.leaveBoard()
	reg := pos.registry[p.Color()][p.Kind()]
	for i, q := range reg {
		if q == p {
			pos.registry[p.Color()][p.Kind()] = append(reg[:i], reg[i+1:]...)
			break
		}
	}
	return p, nil
}

// Relocate moves the piece at src to dst and fires the move listener.
// It returns any piece previously at dst. Relocate never captures:
// callers must already have removed a captured piece, so a non-nil
// return indicates the caller skipped that step.
func (pos *Position) Relocate(src, dst Square) (Piece, error) {
	if !src.IsValid() || !dst.IsValid() {
		return nil, fmt.Errorf("%w: relocate %v to %v", ErrInvalidSquare, src, dst)
	}
	p := pos.squares[src]
	if p == nil {
		return nil, fmt.Errorf("%w: source square %v", ErrEmptySquare, src)
	}
	displaced := pos.squares[dst]
	pos.squares[dst] = p
	pos.squares[src] = nil
	p.moveTo(dst)
	if pos.listener != nil {
		pos.listener(p, src, dst)
	}
	return displaced, nil
}

// String renders the board for debugging, White's side at the bottom.
func (pos *Position) String() string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for r := 7; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d ", r+1)
		for f := 0; f < 8; f++ {
			if p := pos.squares[NewSquare(f, r)]; p != nil {
				sb.WriteByte(pieceChar(p))
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d\n", r+1)
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
