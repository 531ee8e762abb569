package engine

import (
	"context"
	"errors"
	"fmt"
	"othello/game"
	"othello/meta"
	"othello/searcher"
	"sync"

	"github.com/rs/zerolog/log"
)

var ErrNotYourTurn = errors.New("automated side is to move")

// UpdateGetter returns the next placement without blocking. ok is false when
// nothing new was played, or the game is over or failed and every update was
// read.
type UpdateGetter func() (u Update, ok bool)

// Session is a game between a human and the engine. The human plays through
// Play; the engine answers on its own goroutine whenever the automated side is
// to move. Safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	state      game.GameState
	board      game.Board
	automated  game.Color
	searcher   searcher.Searcher
	updateCh   chan Update
	cancel     context.CancelFunc
	generation int
	err        error // Set when an engine move failed; the game is stuck until Init
}

func NewSession(automated game.Color, s searcher.Searcher) *Session {
	return &Session{automated: automated, searcher: s}
}

// Init starts a new game, dropping any search still running for the previous
// one. The engine moves at once if it plays White.
func (s *Session) Init() (game.GameState, game.Board, UpdateGetter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	s.err = nil
	s.state, s.board = NewGame()
	updateCh := make(chan Update, meta.MAX_TURNS)
	s.updateCh = updateCh
	s.scheduleAutoMove()

	return s.state, s.board, func() (Update, bool) {
		select {
		case u, ok := <-updateCh:
			return u, ok
		default:
			return Update{}, false
		}
	}
}

// Snapshot returns the current state and board.
func (s *Session) Snapshot() (game.GameState, game.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state, s.board
}

// Err returns the error of a failed engine move in the current game.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Play places a disc for the human side.
func (s *Session) Play(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.updateCh == nil {
		return errors.New("session not initialized")
	}
	if s.err != nil {
		return s.err
	}
	if s.state.Terminated {
		return game.ErrGameOver
	}
	if s.state.Active == s.automated {
		return ErrNotYourTurn
	}

	side := s.state.Active
	next, board, err := AttemptMove(s.state, s.board, x, y)
	if err != nil {
		return err
	}
	s.publish(Update{Move: game.Move{X: x, Y: y, Side: side}, State: next, Board: board})
	s.scheduleAutoMove()
	return nil
}

// publish must be called with mu held.
func (s *Session) publish(u Update) {
	s.state, s.board = u.State, u.Board
	s.updateCh <- u
	if u.State.Terminated {
		log.Info().Str("winner", game.Winner(u.Board).String()).Msg("game over")
		close(s.updateCh)
	}
}

// scheduleAutoMove must be called with mu held.
func (s *Session) scheduleAutoMove() {
	if s.state.Terminated || s.state.Active != s.automated {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	generation := s.generation
	outcomes := AutoMoveAsync(ctx, s.state, s.board, s.searcher)

	go func() {
		outcome, ok := <-outcomes
		cancel()
		if !ok {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if generation != s.generation {
			return
		}
		s.cancel = nil
		if outcome.Err != nil {
			log.Error().Err(outcome.Err).Msg("automated move failed")
			s.err = fmt.Errorf("automated move failed: %w", outcome.Err)
			close(s.updateCh)
			return
		}
		s.publish(Update{Move: outcome.Result.Move, State: outcome.State, Board: outcome.Board})
		// The human may have had to pass
		s.scheduleAutoMove()
	}()
}
