package agent

import (
	"othello/game"
	"othello/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly random legal moves. The
// same seed replays the same choices. Not safe for concurrent use.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.GameState, b game.Board) (game.Move, searcher.Metrics) {
	moves := game.LegalMoves(b, state.Active)
	if len(moves) == 0 {
		return game.NoMove, searcher.Metrics{}
	}
	return moves[a.rng.Intn(len(moves))], searcher.Metrics{}
}
