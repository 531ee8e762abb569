package searcher

import (
	"othello/game"

	"github.com/rs/zerolog/log"
)

// AlphaBeta is depth-limited minimax with alpha-beta pruning. Moves are tried in
// board scan order and ties keep the first move found.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(options)}
}

// Depth returns the configured ply limit.
func (ab *AlphaBeta) Depth() int {
	return ab.depth
}

// FindMove searches the full window from side's point of view.
func (ab *AlphaBeta) FindMove(b game.Board, side game.Color) Result {
	r := ab.Search(b, side, ab.depth, -Infinity, Infinity, true)
	log.Debug().
		Str("side", side.String()).
		Int("score", r.Score).
		Int("x", r.Move.X).
		Int("y", r.Move.Y).
		Int("nodes", r.Metrics.Nodes).
		Int("cutoffs", r.Metrics.Cutoffs).
		Dur("duration", r.Metrics.Duration).
		Msg("alpha-beta search completed")
	return r
}

// Search runs one alpha-beta walk. side is the maximizing side; maximizing says
// whether side is to move on b. Scores are always from side's perspective.
func (ab *AlphaBeta) Search(b game.Board, side game.Color, depth, alpha, beta int, maximizing bool) Result {
	c := newCounter(depth)
	score, best, move := ab.search(c, b, side, depth, alpha, beta, maximizing)
	return Result{Score: score, Board: best, Move: move, Metrics: c.complete()}
}

func (ab *AlphaBeta) search(c *counter, b game.Board, side game.Color, depth, alpha, beta int, maximizing bool) (int, game.Board, game.Move) {
	c.addNode()

	moves := game.LegalMoves(b, mover(side, maximizing))
	if depth == 0 || len(moves) == 0 {
		return ab.evaluate(b, side), b, game.NoMove
	}

	value := Infinity
	if maximizing {
		value = -Infinity
	}
	bestBoard, bestMove := b, game.NoMove

	for _, m := range moves {
		child := play(b, m)
		score, _, _ := ab.search(c, child, side, depth-1, alpha, beta, !maximizing)

		if maximizing {
			if score > value {
				value, bestBoard, bestMove = score, child, m
			}
			alpha = max(alpha, value)
		} else {
			if score < value {
				value, bestBoard, bestMove = score, child, m
			}
			beta = min(beta, value)
		}
		if beta <= alpha {
			c.addCutoff()
			break
		}
	}
	return value, bestBoard, bestMove
}
