package agent

import (
	"othello/game"
	"othello/searcher"
)

type Agent interface {
	// FindMove returns a move for the active side and the search metrics (zero if no search ran)
	FindMove(state game.GameState, b game.Board) (game.Move, searcher.Metrics)
}
