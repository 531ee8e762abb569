package game

import "fmt"

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// bracket walks from the neighbour of (x, y) in direction (dx, dy) and returns the
// length of the opponent run closed by one of side's discs, or 0 when the walk
// meets an empty cell or the edge first.
func bracket(b *Board, side Color, x, y, dx, dy int) int {
	opponent := side.Opponent()
	n := 0
	cx, cy := x+dx, y+dy
	for InBounds(cx, cy) && b[cx][cy] == opponent {
		n++
		cx += dx
		cy += dy
	}
	if n == 0 || !InBounds(cx, cy) || b[cx][cy] != side {
		return 0
	}
	return n
}

func isSide(c Color) bool {
	return c == White || c == Black
}

// IsLegal reports whether side may place a disc at (x, y): the cell is empty
// and at least one direction brackets a run of opponent discs.
func IsLegal(b Board, side Color, x, y int) bool {
	if !InBounds(x, y) || !isSide(side) || b[x][y] != Empty {
		return false
	}
	for _, d := range directions {
		if bracket(&b, side, x, y, d[0], d[1]) > 0 {
			return true
		}
	}
	return false
}

// Flips returns the discs a placement by side at (x, y) would turn over,
// direction by direction. It is empty exactly when the placement is illegal.
func Flips(b Board, side Color, x, y int) []Move {
	if !InBounds(x, y) || !isSide(side) || b[x][y] != Empty {
		return nil
	}
	var flips []Move
	for _, d := range directions {
		n := bracket(&b, side, x, y, d[0], d[1])
		for i := 1; i <= n; i++ {
			flips = append(flips, Move{X: x + i*d[0], Y: y + i*d[1], Side: side})
		}
	}
	return flips
}

// Apply returns the board after side places a disc at (x, y) and every
// bracketed run is flipped. The input board is never modified.
func Apply(b Board, side Color, x, y int) (Board, error) {
	if !InBounds(x, y) {
		return b, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if !isSide(side) || b[x][y] != Empty {
		return b, fmt.Errorf("%w: %s at (%d,%d)", ErrIllegalMove, side, x, y)
	}

	next := b
	flipped := 0
	for _, d := range directions {
		n := bracket(&b, side, x, y, d[0], d[1])
		for i := 1; i <= n; i++ {
			next[x+i*d[0]][y+i*d[1]] = side
		}
		flipped += n
	}
	if flipped == 0 {
		return b, fmt.Errorf("%w: %s at (%d,%d) captures nothing", ErrIllegalMove, side, x, y)
	}
	next[x][y] = side
	return next, nil
}

// HasAnyLegalMove reports whether side can place anywhere on b.
func HasAnyLegalMove(b Board, side Color) bool {
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if IsLegal(b, side, x, y) {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns side's legal placements in scan order (x outer, y inner).
func LegalMoves(b Board, side Color) []Move {
	var moves []Move
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if IsLegal(b, side, x, y) {
				moves = append(moves, Move{X: x, Y: y, Side: side})
			}
		}
	}
	return moves
}
