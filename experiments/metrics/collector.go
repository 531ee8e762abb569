package metrics

import (
	"othello/searcher"
	"sync"
	"time"

	"golang.org/x/exp/slices"
)

// AgentConfig describes one agent taking part in an experiment.
type AgentConfig struct {
	ID        int
	Kind      string // "alphabeta", "minimax", "mcts" or "random"
	Depth     int    // Ply limit, or the rollout cutoff for mcts
	Episodes  int    // mcts only
	Evaluator string // "positional" or "discs"
	Seed      uint64
}

type MoveMetric struct {
	Step   int
	Player string
	X, Y   int
	Flips  int
	searcher.Metrics
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "empty" on a draw
	WhiteDiscs     int
	BlackDiscs     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID      string // uuid
	Matchup int
	Index   int // Game number within the matchup
	White   int // AgentConfig.ID
	Black   int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game string // GameRecord.ID
	MoveMetric
}

// Collector gathers records from games that may run concurrently.
type Collector interface {
	AddGame(game GameRecord, moves []MoveMetric)
	Games() []GameRecord
	Moves() []MoveRecord
}

type collector struct {
	mu    sync.Mutex
	games []GameRecord
	moves map[string][]MoveRecord
}

func NewCollector() Collector {
	return &collector{moves: make(map[string][]MoveRecord)}
}

func (c *collector) AddGame(game GameRecord, moves []MoveMetric) {
	records := make([]MoveRecord, len(moves))
	for i, mm := range moves {
		records[i] = MoveRecord{Game: game.ID, MoveMetric: mm}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.games = append(c.games, game)
	c.moves[game.ID] = records
}

// Games returns the games ordered by matchup, then game number.
func (c *collector) Games() []GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	games := slices.Clone(c.games)
	slices.SortFunc(games, func(a, b GameRecord) int {
		if a.Matchup != b.Matchup {
			return a.Matchup - b.Matchup
		}
		return a.Index - b.Index
	})
	return games
}

// Moves returns every move in game order, then step order.
func (c *collector) Moves() []MoveRecord {
	games := c.Games()

	c.mu.Lock()
	defer c.mu.Unlock()
	var moves []MoveRecord
	for _, g := range games {
		moves = append(moves, c.moves[g.ID]...)
	}
	return moves
}
