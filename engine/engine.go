package engine

import (
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// NewGame returns the opening state and board. White moves first.
func NewGame() (game.GameState, game.Board) {
	return game.NewGameState(), game.NewBoard()
}

// LegalMoves lists the placements open to the active side, in scan order.
// A terminated game has none.
func LegalMoves(state game.GameState, b game.Board) []game.Move {
	if state.Terminated {
		return nil
	}
	return game.LegalMoves(b, state.Active)
}

// AttemptMove plays a human placement for the active side. On error the state and
// board come back unchanged, so the caller can simply retry.
func AttemptMove(state game.GameState, b game.Board, x, y int) (game.GameState, game.Board, error) {
	if state.Terminated {
		return state, b, game.ErrGameOver
	}
	if !game.InBounds(x, y) {
		return state, b, game.ErrOutOfBounds
	}

	next, board, err := state.Play(b, x, y)
	if err != nil {
		log.Debug().Err(err).Int("x", x).Int("y", y).Str("side", state.Active.String()).Msg("move rejected")
		return state, b, err
	}
	logTransition(state, next, x, y)
	return next, board, nil
}

// AutoMove lets s choose and play a move for the active side. When the active
// side has nothing to play the state is resolved instead, passing or ending the
// game.
func AutoMove(state game.GameState, b game.Board, s searcher.Searcher) (game.GameState, game.Board, searcher.Result, error) {
	if state.Terminated {
		return state, b, searcher.Result{Board: b, Move: game.NoMove}, game.ErrGameOver
	}

	r := s.FindMove(b, state.Active)
	if r.Move.IsNone() {
		next := state.Resolve(b)
		log.Debug().Str("from", state.Phase()).Str("to", next.Phase()).Msg("no move to search")
		return next, b, r, nil
	}

	next, board, err := state.Play(b, r.Move.X, r.Move.Y)
	if err != nil {
		return state, b, r, err
	}
	logTransition(state, next, r.Move.X, r.Move.Y)
	return next, board, r, nil
}

func IsTerminated(state game.GameState) bool {
	return state.Terminated
}

// CurrentSide returns the side to move, or game.Empty once the game is over.
func CurrentSide(state game.GameState) game.Color {
	if state.Terminated {
		return game.Empty
	}
	return state.Active
}

func logTransition(from, to game.GameState, x, y int) {
	e := log.Debug().
		Str("side", from.Active.String()).
		Int("x", x).
		Int("y", y).
		Str("phase", to.Phase())
	if to.Passes > 0 && !to.Terminated {
		e = e.Str("passed", to.Active.Opponent().String())
	}
	e.Msg("move played")
}
