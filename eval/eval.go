// Package eval scores positions with Shannon's classic material,
// pawn-structure and mobility heuristic. Scores are in pawns from
// White's perspective; positive favors White.
package eval

import "github.com/dferris/sanboard/board"

// Board is the read-only view a position must expose to be scored:
// the piece inventory by kind and color. Mobility and pawn structure
// derive from the pieces themselves.
type Board interface {
	PiecesOf(kind board.Kind, c board.Color) []board.Piece
}

// Material weights in pawns. The king weight only matters for
// positions set up without one.
const (
	kingWeight   = 200
	queenWeight  = 9
	rookWeight   = 5
	minorWeight  = 3
	pawnWeight   = 1
	pawnPenalty  = 0.5
	mobilityBoon = 0.1
)

// Score evaluates the position. The pawn-structure penalty charges each
// doubled, isolated and backward pawn half a pawn; every square a piece
// can move to is worth a tenth.
func Score(pos Board) float64 {
	s := float64(kingWeight) * float64(count(pos, board.King, board.White)-count(pos, board.King, board.Black))
	s += float64(queenWeight) * float64(count(pos, board.Queen, board.White)-count(pos, board.Queen, board.Black))
	s += float64(rookWeight) * float64(count(pos, board.Rook, board.White)-count(pos, board.Rook, board.Black))
	s += float64(minorWeight) * float64(
		count(pos, board.Bishop, board.White)+count(pos, board.Knight, board.White)-
			count(pos, board.Bishop, board.Black)-count(pos, board.Knight, board.Black))
	s += float64(pawnWeight) * float64(count(pos, board.Pawn, board.White)-count(pos, board.Pawn, board.Black))

	s -= pawnPenalty * float64(structureFaults(pos, board.White)-structureFaults(pos, board.Black))
	s += mobilityBoon * float64(mobility(pos, board.White)-mobility(pos, board.Black))
	return s
}

func count(pos Board, kind board.Kind, c board.Color) int {
	return len(pos.PiecesOf(kind, c))
}

// mobility totals the squares the color's pieces could move to.
func mobility(pos Board, c board.Color) int {
	var n int
	for kind := board.Pawn; kind <= board.King; kind++ {
		for _, p := range pos.PiecesOf(kind, c) {
			n += len(p.ReachableSquares())
		}
	}
	return n
}

// structureFaults counts the color's doubled, isolated and backward
// pawns. A pawn counts once per fault it exhibits.
func structureFaults(pos Board, c board.Color) int {
	return doubledPawns(pos, c) + isolatedPawns(pos, c) + backwardPawns(pos, c)
}

// pawnsPerFile tallies the color's pawns by file.
func pawnsPerFile(pos Board, c board.Color) [8]int {
	var files [8]int
	for _, p := range pos.PiecesOf(board.Pawn, c) {
		files[p.Square().File()]++
	}
	return files
}

// doubledPawns counts every pawn beyond the first on each file.
func doubledPawns(pos Board, c board.Color) int {
	var n int
	for _, f := range pawnsPerFile(pos, c) {
		if f > 1 {
			n += f - 1
		}
	}
	return n
}

// isolatedPawns counts pawns with no friendly pawn on either adjacent
// file.
func isolatedPawns(pos Board, c board.Color) int {
	files := pawnsPerFile(pos, c)
	var n int
	for f, cnt := range files {
		if cnt == 0 {
			continue
		}
		alone := true
		if f > 0 && files[f-1] > 0 {
			alone = false
		}
		if f < 7 && files[f+1] > 0 {
			alone = false
		}
		if alone {
			n += cnt
		}
	}
	return n
}

// backwardPawns counts pawns whose stop square is covered by an enemy
// pawn while no friendly pawn on an adjacent file stands level with or
// behind them.
func backwardPawns(pos Board, c board.Color) int {
	dir := 1
	if c == board.Black {
		dir = -1
	}

	attacked := make(map[board.Square]bool)
	for _, p := range pos.PiecesOf(board.Pawn, c.Other()) {
		for _, sq := range p.CoveredSquares() {
			attacked[sq] = true
		}
	}

	own := pos.PiecesOf(board.Pawn, c)
	var n int
	for _, p := range own {
		r, f := p.Square().Rank(), p.Square().File()
		stop := board.NewSquare(f, r+dir)
		if !stop.IsValid() || !attacked[stop] {
			continue
		}
		supported := false
		for _, q := range own {
			qr, qf := q.Square().Rank(), q.Square().File()
			if qf != f-1 && qf != f+1 {
				continue
			}
			if (c == board.White && qr <= r) || (c == board.Black && qr >= r) {
				supported = true
				break
			}
		}
		if !supported {
			n++
		}
	}
	return n
}
