package board

import "fmt"

// EncodedLength is the length of the board snapshot string: one
// character per square.
const EncodedLength = 64

// pieceChar returns the snapshot character for a piece: its kind letter,
// uppercase for White and lowercase for Black.
func pieceChar(p Piece) byte {
	c := p.Kind().Letter()
	if p.Color() == Black {
		c += 'a' - 'A'
	}
	return c
}

// Encode returns a 64-character string uniquely representing the piece
// placement, one character per square from a1 to h8 rank by rank. Empty
// squares encode as 'x'.
func (pos *Position) Encode() string {
	buf := make([]byte, EncodedLength)
	for sq := A1; sq <= H8; sq++ {
		if p := pos.squares[sq]; p != nil {
			buf[sq] = pieceChar(p)
		} else {
			buf[sq] = 'x'
		}
	}
	return string(buf)
}

// Decode builds a Position from an encoding string produced by Encode.
// It is a raw snapshot loader: pieces are placed as encoded with no
// legality checking, ordinals are assigned in traversal order, and
// characters outside the piece alphabet leave their square empty.
// Decode is the exact inverse of Encode.
func Decode(encoding string) (*Position, error) {
	if len(encoding) != EncodedLength {
		return nil, fmt.Errorf("board: encoding must be %d characters, got %d", EncodedLength, len(encoding))
	}
	pos := NewPosition()
	for i := 0; i < EncodedLength; i++ {
		c := encoding[i]
		color := White
		if c >= 'a' && c <= 'z' {
			color = Black
			c -= 'a' - 'A'
		}
		kind, ok := kindFromLetter(c)
		if !ok {
			continue
		}
		p := NewPiece(kind, color, pos.nextID(kind, color))
		if err := pos.Put(p, Square(i)); err != nil {
			return nil, fmt.Errorf("board: decode square %v: %w", Square(i), err)
		}
	}
	return pos, nil
}
