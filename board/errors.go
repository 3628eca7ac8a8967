package board

import (
	"errors"
	"fmt"
)

// Every invalid input surfaces as a specific sentinel kind; use
// errors.Is to classify. Failures are synchronous and never retried.

var (
	// ErrInvalidSquare indicates an out-of-range rank or file.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrEmptySquare indicates an operation on a square with no piece.
	ErrEmptySquare = errors.New("square is empty")

	// ErrImpossibleCapture indicates a declared capture onto an empty
	// square that is not the en passant target.
	ErrImpossibleCapture = errors.New("capture is not possible")

	// ErrBadNotation indicates move text that matches no notation form.
	ErrBadNotation = errors.New("bad move notation")

	// ErrIllegalMove indicates that no piece can legally execute the
	// move: no disambiguated candidate, a pin violation, or a check
	// left unresolved.
	ErrIllegalMove = errors.New("move is not possible")

	// ErrPromotionInvalid indicates an unrecognized promotion suffix.
	ErrPromotionInvalid = errors.New("promotion is not valid")

	// ErrCastleUnavailable indicates castling preconditions are unmet.
	ErrCastleUnavailable = errors.New("castle is not possible")

	// ErrDuplicateKing indicates an attempt to place a second king of
	// one color.
	ErrDuplicateKing = errors.New("second king")

	// ErrKingRemoval indicates an attempt to capture or remove a king.
	// Kings are created once and never leave the board; hitting this is
	// an integrity error in the caller.
	ErrKingRemoval = errors.New("king removal")
)

// NotationError wraps a move-application failure with the offending
// move text. It unwraps to one of the sentinel errors above.
type NotationError struct {
	Move   string // the algebraic move text as given
	Detail string // optional extra context
	Err    error  // the underlying sentinel
}

// Error returns the formatted message.
func (e *NotationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("move %q: %v: %s", e.Move, e.Err, e.Detail)
	}
	return fmt.Sprintf("move %q: %v", e.Move, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *NotationError) Unwrap() error {
	return e.Err
}

func notationErr(move string, err error) error {
	return &NotationError{Move: move, Err: err}
}
