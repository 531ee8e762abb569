package game

const (
	cornerWeight  = 15
	edgeWeight    = 5
	xSquareHeld   = 5
	xSquareUnheld = -5
	innerWeight   = 1
)

// Evaluate weighs every disc by position: own discs add, opponent discs subtract.
// Corners are worth the most, edges next. The three cells around a corner are an
// asset once side holds that corner and a liability while it does not.
func Evaluate(b Board, side Color) int {
	opponent := side.Opponent()
	score := 0
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			switch b[x][y] {
			case side:
				score += weight(&b, side, x, y)
			case opponent:
				score -= weight(&b, side, x, y)
			}
		}
	}
	return score
}

// EvaluateDiscs is the material-only baseline: own discs minus opponent discs.
func EvaluateDiscs(b Board, side Color) int {
	return b.Count(side) - b.Count(side.Opponent())
}

func weight(b *Board, side Color, x, y int) int {
	cx, cy := cornerOf(x), cornerOf(y)
	if cx >= 0 && cy >= 0 {
		if x == cx && y == cy {
			return cornerWeight
		}
		if b[cx][cy] == side {
			return xSquareHeld
		}
		return xSquareUnheld
	}
	if x == 0 || x == Size-1 || y == 0 || y == Size-1 {
		return edgeWeight
	}
	return innerWeight
}

// cornerOf maps a coordinate within two cells of a border to that border, -1 otherwise.
func cornerOf(i int) int {
	switch {
	case i <= 1:
		return 0
	case i >= Size-2:
		return Size - 1
	default:
		return -1
	}
}
