package agent

import (
	"othello/game"
	"othello/searcher"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays the searcher's best move.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.GameState, b game.Board) (game.Move, searcher.Metrics) {
	r := a.searcher.FindMove(b, state.Active)
	return r.Move, r.Metrics
}
