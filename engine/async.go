package engine

import (
	"context"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// Outcome is the result of an AutoMove run in the background.
type Outcome struct {
	State  game.GameState
	Board  game.Board
	Result searcher.Result
	Err    error
}

// AutoMoveAsync runs AutoMove on its own goroutine and delivers the outcome on
// the returned channel. If ctx is done before the search finishes the outcome is
// dropped and the channel is closed without a value, so a caller that moved on
// never applies a stale move.
func AutoMoveAsync(ctx context.Context, state game.GameState, b game.Board, s searcher.Searcher) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)

		next, board, r, err := AutoMove(state, b, s)
		if ctx.Err() != nil {
			log.Debug().Err(ctx.Err()).Str("side", state.Active.String()).Msg("discarding stale search result")
			return
		}
		out <- Outcome{State: next, Board: board, Result: r, Err: err}
	}()
	return out
}
