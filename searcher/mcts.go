package searcher

import (
	"othello/game"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"
	"golang.org/x/exp/rand"
)

// MCTS is Monte Carlo tree search with tree parallelization: workers share one
// tree and use virtual loss to spread out. Result.Score is the chosen move's win
// rate in percent; Metrics.Nodes counts episodes and Metrics.Cutoffs the rollouts
// stopped at the cutoff.
type MCTS struct {
	config
}

func NewMCTS(options ...Option) *MCTS {
	c := newConfig(options)
	if c.episodes <= 0 && c.duration <= 0 {
		c.episodes = DefaultEpisodes
	}
	return &MCTS{config: c}
}

type stats struct {
	episodes *atomic.Int64
	cutoffs  *atomic.Int64
}

func (m *MCTS) FindMove(b game.Board, side game.Color) Result {
	startTime := time.Now()
	state := game.GameState{Active: side}
	root := newNode(nil, side.Opponent(), state, b)
	s := stats{episodes: atomic.NewInt64(0), cutoffs: atomic.NewInt64(0)}

	complete := func() Metrics {
		return Metrics{
			Depth:    m.cutoff,
			Nodes:    int(s.episodes.Load()),
			Cutoffs:  int(s.cutoffs.Load()),
			Duration: time.Since(startTime),
		}
	}

	if len(root.moves) == 0 {
		return Result{Score: m.evaluate(b, side), Board: b, Move: game.NoMove, Metrics: complete()}
	}

	if m.episodes > 0 {
		m.iterate(root, state, b, s)
	} else {
		m.countdown(root, state, b, s)
	}

	ith := root.bestChild()
	child := root.children[ith]
	move := root.moves[ith]
	r := Result{
		Score:   int(100 * child.rewards / float64(child.visits)),
		Board:   play(b, move),
		Move:    move,
		Metrics: complete(),
	}
	log.Debug().
		Str("side", side.String()).
		Int("x", move.X).
		Int("y", move.Y).
		Int("visits", child.visits).
		Int("episodes", r.Metrics.Nodes).
		Dur("duration", r.Metrics.Duration).
		Msg("mcts search completed")
	return r
}

func (m *MCTS) iterate(root *node, state game.GameState, b game.Board, s stats) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(m.seed + uint64(i)))
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(root, state, b, rng, s)
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(root *node, state game.GameState, b game.Board, s stats) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(m.seed + uint64(i)))
		go func() {
			defer wg.Done()

			// At least one episode per worker so the root always has a child
			for {
				m.simulate(root, state, b, rng, s)
				select {
				case <-done:
					return
				default:
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(root *node, state game.GameState, b game.Board, rng *rand.Rand, s stats) {
	leaf, state, b := selectThenExpand(root, state, b)
	winner, full := rollout(state, b, m.cutoff, m.evaluate, rng)
	backup(leaf, winner)

	s.episodes.Inc()
	if !full {
		s.cutoffs.Inc()
	}
}

func selectThenExpand(root *node, state game.GameState, b game.Board) (*node, game.GameState, game.Board) {
	parent := root
	for {
		child, childState, childBoard, expanded := parent.SelectOrExpand(state, b)
		if expanded || child == parent {
			return child, childState, childBoard
		}
		parent, state, b = child, childState, childBoard
	}
}

// rollout plays random moves till the game ends or for cutoff placements. At the
// cutoff the side ahead on the evaluator counts as the winner. full reports
// whether the game ended.
func rollout(state game.GameState, b game.Board, cutoff int, evaluate game.Evaluator, rng *rand.Rand) (winner game.Color, full bool) {
	for depth := 0; !state.Terminated && depth < cutoff; depth++ {
		moves := game.LegalMoves(b, state.Active)
		state, b = advance(state, b, moves[rng.Intn(len(moves))]) // Random rollout policy
	}

	if state.Terminated {
		return game.Winner(b), true
	}

	switch score := evaluate(b, game.White); {
	case score > 0:
		return game.White, false
	case score < 0:
		return game.Black, false
	default:
		return game.Empty, false
	}
}

func backup(leaf *node, winner game.Color) {
	n := leaf
	for n != nil {
		n = n.Backup(winner)
	}
}
