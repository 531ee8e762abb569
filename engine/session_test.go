package engine

import (
	"othello/game"
	"othello/searcher"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// blockingSearcher holds every search until release is closed.
type blockingSearcher struct {
	release chan struct{}
	inner   searcher.Searcher
}

func (bs blockingSearcher) FindMove(b game.Board, side game.Color) searcher.Result {
	<-bs.release
	return bs.inner.FindMove(b, side)
}

func newBlockingSearcher() blockingSearcher {
	return blockingSearcher{release: make(chan struct{}), inner: searcher.NewAlphaBeta(searcher.WithDepth(1))}
}

// illegalSearcher asks for a placement that is never legal at the start.
type illegalSearcher struct{}

func (illegalSearcher) FindMove(b game.Board, side game.Color) searcher.Result {
	return searcher.Result{Board: b, Move: game.Move{X: 0, Y: 0, Side: side}}
}

func waitForUpdate(t *testing.T, getUpdate UpdateGetter) Update {
	t.Helper()
	var u Update
	require.Eventually(t, func() bool {
		var ok bool
		u, ok = getUpdate()
		return ok
	}, 5*time.Second, time.Millisecond)
	return u
}

func TestSession(t *testing.T) {
	t.Run("engine opens when it plays white", func(t *testing.T) {
		bs := newBlockingSearcher()
		s := NewSession(game.White, bs)
		state, b, getUpdate := s.Init()

		require.Equal(t, game.White, state.Active)
		require.Equal(t, game.NewBoard(), b)
		require.ErrorIs(t, s.Play(2, 3), ErrNotYourTurn)

		close(bs.release)
		u := waitForUpdate(t, getUpdate)

		require.Equal(t, game.White, u.Move.Side)
		require.Equal(t, game.Black, u.State.Active)
		current, board := s.Snapshot()
		require.Equal(t, u.State, current)
		require.Equal(t, u.Board, board)
	})

	t.Run("human move triggers the reply", func(t *testing.T) {
		s := NewSession(game.Black, searcher.NewAlphaBeta(searcher.WithDepth(1)))
		_, _, getUpdate := s.Init()

		require.NoError(t, s.Play(2, 4))
		human := waitForUpdate(t, getUpdate)
		reply := waitForUpdate(t, getUpdate)

		require.Equal(t, game.Move{X: 2, Y: 4, Side: game.White}, human.Move)
		require.Equal(t, game.Black, reply.Move.Side)
		require.Equal(t, game.White, reply.State.Active)
	})

	t.Run("illegal human move is rejected", func(t *testing.T) {
		s := NewSession(game.Black, searcher.NewAlphaBeta())
		_, _, getUpdate := s.Init()

		require.ErrorIs(t, s.Play(0, 0), game.ErrIllegalMove)
		require.ErrorIs(t, s.Play(9, 0), game.ErrOutOfBounds)
		_, ok := getUpdate()
		require.False(t, ok)
	})

	t.Run("play before init fails", func(t *testing.T) {
		require.Error(t, NewSession(game.Black, searcher.NewAlphaBeta()).Play(2, 4))
	})

	t.Run("restart drops the pending search", func(t *testing.T) {
		bs := newBlockingSearcher()
		s := NewSession(game.White, bs)
		_, _, oldUpdates := s.Init()
		_, _, newUpdates := s.Init()

		close(bs.release)
		u := waitForUpdate(t, newUpdates)

		require.Equal(t, 5, u.Board.Count(game.White)+u.Board.Count(game.Black))
		time.Sleep(20 * time.Millisecond)
		_, ok := newUpdates()
		require.False(t, ok, "Only the current game's search should be applied")
		_, ok = oldUpdates()
		require.False(t, ok)
	})

	t.Run("full game ends and closes the updates", func(t *testing.T) {
		s := NewSession(game.Black, searcher.NewAlphaBeta(searcher.WithDepth(1)))
		_, _, getUpdate := s.Init()

		deadline := time.Now().Add(10 * time.Second)
		for time.Now().Before(deadline) {
			state, b := s.Snapshot()
			if state.Terminated {
				break
			}
			if state.Active == game.White {
				m := game.LegalMoves(b, game.White)[0]
				require.NoError(t, s.Play(m.X, m.Y))
				continue
			}
			time.Sleep(time.Millisecond)
		}

		state, b := s.Snapshot()
		require.True(t, state.Terminated)
		require.ErrorIs(t, s.Play(0, 0), game.ErrGameOver)

		count := 0
		for {
			u, ok := getUpdate()
			if !ok {
				break
			}
			require.False(t, u.Move.IsNone())
			count++
		}
		require.Equal(t, b.Count(game.White)+b.Count(game.Black)-4, count, "One update per placement")
	})

	t.Run("failed engine move is reported", func(t *testing.T) {
		s := NewSession(game.White, illegalSearcher{})
		_, _, getUpdate := s.Init()

		require.Eventually(t, func() bool { return s.Err() != nil }, 5*time.Second, time.Millisecond)

		require.ErrorIs(t, s.Err(), game.ErrIllegalMove)
		_, ok := getUpdate()
		require.False(t, ok, "Updates should be closed")
		require.ErrorIs(t, s.Play(2, 3), game.ErrIllegalMove)
	})

	t.Run("finished search releases its context", func(t *testing.T) {
		s := NewSession(game.Black, searcher.NewAlphaBeta(searcher.WithDepth(1)))
		_, _, getUpdate := s.Init()

		require.NoError(t, s.Play(2, 4))
		waitForUpdate(t, getUpdate)
		waitForUpdate(t, getUpdate)

		require.Eventually(t, func() bool {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.cancel == nil
		}, 5*time.Second, time.Millisecond)
	})
}
