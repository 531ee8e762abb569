package searcher

import "othello/game"

// Minimax expands the full tree to the configured depth. It makes the same
// choices as AlphaBeta and serves as its reference and as a slower opponent.
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(options)}
}

func (mm *Minimax) FindMove(b game.Board, side game.Color) Result {
	return mm.Search(b, side, mm.depth, true)
}

func (mm *Minimax) Search(b game.Board, side game.Color, depth int, maximizing bool) Result {
	c := newCounter(depth)
	score, best, move := mm.search(c, b, side, depth, maximizing)
	return Result{Score: score, Board: best, Move: move, Metrics: c.complete()}
}

func (mm *Minimax) search(c *counter, b game.Board, side game.Color, depth int, maximizing bool) (int, game.Board, game.Move) {
	c.addNode()

	moves := game.LegalMoves(b, mover(side, maximizing))
	if depth == 0 || len(moves) == 0 {
		return mm.evaluate(b, side), b, game.NoMove
	}

	value := Infinity
	if maximizing {
		value = -Infinity
	}
	bestBoard, bestMove := b, game.NoMove

	for _, m := range moves {
		child := play(b, m)
		score, _, _ := mm.search(c, child, side, depth-1, !maximizing)

		// Strict comparisons to match alpha-beta tie-breaking
		if (maximizing && score > value) || (!maximizing && score < value) {
			value, bestBoard, bestMove = score, child, m
		}
	}
	return value, bestBoard, bestMove
}
