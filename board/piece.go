package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Kind represents the kind of a chess piece.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoKind Kind = 6
)

// String returns the piece kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Letter returns the uppercase notation letter for the kind.
func (k Kind) Letter() byte {
	if k >= NoKind {
		return ' '
	}
	return "PNBRQK"[k]
}

// kindFromLetter maps an uppercase notation letter to a Kind.
func kindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P':
		return Pawn, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	}
	return NoKind, false
}

// Piece is a chess piece on a Position. A piece is exclusively owned by
// the Position it was placed on; its square is kept consistent with the
// Position's square array on every move, placement and removal.
type Piece interface {
	// Kind returns the piece kind.
	Kind() Kind
	// Color returns the piece color.
	Color() Color
	// Square returns the square the piece stands on, or NoSquare if it
	// has been removed from the board.
	Square() Square
	// ID is a small ordinal unique within (kind, color), used for
	// disambiguation output and debugging only.
	ID() int

	// Reach reports whether the piece could move to the given square in
	// one step under the current occupancy, ignoring pins and check.
	// The capture flag distinguishes pawn captures from pawn pushes; the
	// other kinds ignore it.
	Reach(to Square, capture bool) bool
	// CoveredSquares returns the squares this piece attacks or defends.
	// Sliding rays stop at, and include, the first occupied square.
	CoveredSquares() []Square
	// ReachableSquares returns the covered squares the piece could land
	// on (empty or enemy-occupied), plus the pawn's forward, double
	// forward and en passant moves.
	ReachableSquares() []Square

	// String renders the piece as its notation letter plus square,
	// e.g. "Ng1".
	String() string

	attach(*Position)
	moveTo(Square)
	leaveBoard()
}

// Pinner is implemented by the sliding pieces (Bishop, Rook, Queen),
// which can pin an enemy piece against its king.
type Pinner interface {
	Piece

	// PinnedPiece walks the ray from this piece toward the enemy king.
	// If exactly one piece stands strictly between the two, that piece
	// is returned; zero or more than one intervener yields nil.
	PinnedPiece() Piece
}

// NewPiece constructs an unattached piece of the given kind. The piece
// joins a board via Position.Put, which fixes its square.
func NewPiece(kind Kind, color Color, id int) Piece {
	base := piece{color: color, sq: NoSquare, id: id}
	switch kind {
	case Pawn:
		return &pawnPiece{base}
	case Knight:
		return &knightPiece{base}
	case Bishop:
		return &bishopPiece{base}
	case Rook:
		return &rookPiece{base}
	case Queen:
		return &queenPiece{base}
	case King:
		return &kingPiece{base}
	}
	return nil
}

// piece holds the state shared by all piece kinds.
type piece struct {
	pos   *Position
	color Color
	sq    Square
	id    int
}

func (p *piece) Color() Color   { return p.color }
func (p *piece) Square() Square { return p.sq }
func (p *piece) ID() int        { return p.id }

func (p *piece) attach(pos *Position) { p.pos = pos }
func (p *piece) moveTo(sq Square)     { p.sq = sq }
func (p *piece) leaveBoard()          { p.sq = NoSquare }

// onBoard reports whether the piece is attached to a position square.
func (p *piece) onBoard() bool {
	return p.pos != nil && p.sq.IsValid()
}

// landable reports whether the destination is empty or holds an enemy
// piece.
func (p *piece) landable(to Square) bool {
	occ := p.pos.Get(to)
	return occ == nil || occ.Color() != p.color
}

// filterLandable keeps the squares that are empty or enemy-occupied.
func (p *piece) filterLandable(squares []Square) []Square {
	out := squares[:0]
	for _, sq := range squares {
		if p.landable(sq) {
			out = append(out, sq)
		}
	}
	return out
}

func pieceString(p Piece) string {
	return string(p.Kind().Letter()) + p.Square().String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
