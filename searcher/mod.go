package searcher

import (
	"othello/game"
	"othello/meta"
	"time"
)

// Infinity bounds every evaluation; it is the initial alpha/beta window.
const Infinity = 1 << 30

// Searcher picks a move for side on b.
type Searcher interface {
	FindMove(b game.Board, side game.Color) Result
}

// Result of one search call. Score is from the perspective of the searching side.
// Board is the position after Move; at a leaf Move is game.NoMove and Board is the
// unchanged input.
type Result struct {
	Score   int
	Board   game.Board
	Move    game.Move
	Metrics Metrics
}

type Option func(c *config)

type config struct {
	depth    int
	evaluate game.Evaluator

	// MCTS only
	goroutines int
	episodes   int
	duration   time.Duration
	cutoff     int
	seed       uint64
}

func defaultConfig() config {
	return config{
		depth:      meta.DEPTH,
		evaluate:   game.Evaluate,
		goroutines: 1,
		cutoff:     MaxCutoff,
		seed:       1,
	}
}

// WithDepth sets the ply limit. Non-positive values are ignored.
func WithDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

// WithEvaluationFn replaces the leaf evaluator.
func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

// WithGoroutines sets the number of MCTS workers sharing one tree.
func WithGoroutines(goroutines int) Option {
	return func(c *config) {
		if goroutines > 0 {
			c.goroutines = goroutines
		}
	}
}

// WithEpisodes bounds MCTS by a number of simulations.
func WithEpisodes(episodes int) Option {
	return func(c *config) {
		if episodes > 0 {
			c.episodes = episodes
		}
	}
}

// WithDuration bounds MCTS by wall time. Ignored when episodes are set.
func WithDuration(duration time.Duration) Option {
	return func(c *config) {
		if duration > 0 {
			c.duration = duration
		}
	}
}

// WithCutoff stops MCTS rollouts after depth placements and scores the position
// with the evaluator instead.
func WithCutoff(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.cutoff = depth
		}
	}
}

// WithSeed seeds the MCTS rollout policy.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

func newConfig(options []Option) config {
	c := defaultConfig()
	for _, option := range options {
		option(&c)
	}
	return c
}

// mover is the side to play at a node: the searching side when maximizing.
func mover(side game.Color, maximizing bool) game.Color {
	if maximizing {
		return side
	}
	return side.Opponent()
}

// play applies a move produced by game.LegalMoves.
func play(b game.Board, m game.Move) game.Board {
	child, err := game.Apply(b, m.Side, m.X, m.Y)
	if err != nil {
		panic(err)
	}
	return child
}
