package engine

import (
	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"time"

	"github.com/rs/zerolog/log"
)

// Engine plays a full game between two agents in process.
type Engine struct {
	State   game.GameState
	Board   game.Board
	Agents  map[game.Color]agent.Agent
	History []Update
}

// Update records one placement and the state it led to.
type Update struct {
	Move  game.Move
	State game.GameState
	Board game.Board
}

func LocalEngine(white, black agent.Agent) *Engine {
	if white == nil || black == nil {
		panic("need an agent for each side")
	}
	state, b := NewGame()
	return &Engine{
		State: state,
		Board: b,
		Agents: map[game.Color]agent.Agent{
			game.White: white,
			game.Black: black,
		},
	}
}

// Run plays until the game terminates or meta.MAX_TURNS placements were made.
// The winner is game.Empty on a draw or an unfinished game.
func (e *Engine) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Active.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", e.State.Active)

	turn := 1
	for !e.State.Terminated && turn <= meta.MAX_TURNS {
		side := e.State.Active
		move, searchMetrics := e.Agents[side].FindMove(e.State, e.Board)
		move = e.validate(move)

		flips := len(game.Flips(e.Board, side, move.X, move.Y))
		next, board, err := e.State.Play(e.Board, move.X, move.Y)
		if err != nil {
			// validate only returns legal moves
			panic(err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:    turn,
			Player:  side.String(),
			X:       move.X,
			Y:       move.Y,
			Flips:   flips,
			Metrics: searchMetrics,
		})
		e.History = append(e.History, Update{Move: move, State: next, Board: board})
		e.State, e.Board = next, board
		turn++
	}

	if !e.State.Terminated {
		log.Warn().Msgf("stopped after %d turns without a result", meta.MAX_TURNS)
	}

	winner := game.Empty
	if e.State.Terminated {
		winner = game.Winner(e.Board)
	}
	gameMetric.Winner = winner.String()
	gameMetric.WhiteDiscs, gameMetric.BlackDiscs = game.Score(e.Board)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	return winner, gameMetric, moveMetrics
}

// validate replaces an illegal agent move with the first legal one. The active
// side always has a move here since GameState resolves passes eagerly.
func (e *Engine) validate(move game.Move) game.Move {
	side := e.State.Active
	if move.Side == side && game.IsLegal(e.Board, side, move.X, move.Y) {
		return move
	}
	moves := game.LegalMoves(e.Board, side)
	if len(moves) == 0 {
		panic("no legal moves for the active side")
	}
	log.Warn().Str("side", side.String()).Int("x", move.X).Int("y", move.Y).Msg("agent returned an illegal move, playing the first legal one")
	return moves[0]
}
