package experiments

import (
	"errors"
	"fmt"
	"othello/agent"
	"othello/config"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// OpeningPlies random placements start every game so repeated games between
// deterministic agents differ.
const OpeningPlies = 4

// MCTSEpisodes is the per-move simulation budget of MCTS agents.
const MCTSEpisodes = 200

var ErrUnknownExperiment = errors.New("unknown experiment")

// experiment builds the agent configs and the matchups to play from cfg. Each
// matchup is {white, black}.
type experiment func(cfg *config.Config) ([]metrics.AgentConfig, [][2]metrics.AgentConfig)

var registry = map[string]experiment{
	"baseline":  baseline,
	"depth":     depthSweep,
	"evaluator": evaluatorComparison,
	"mcts":      treeSearch,
	"pruning":   pruning,
}

// Names lists the registered experiments.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Alpha-beta at the configured depth against a random player, both colours.
func baseline(cfg *config.Config) ([]metrics.AgentConfig, [][2]metrics.AgentConfig) {
	search := metrics.AgentConfig{ID: 1, Kind: "alphabeta", Depth: cfg.Depth, Evaluator: "positional"}
	random := metrics.AgentConfig{ID: 2, Kind: "random", Seed: cfg.Seed}
	return []metrics.AgentConfig{search, random}, [][2]metrics.AgentConfig{
		{search, random},
		{random, search},
	}
}

// Every depth up to the configured one against a depth one searcher.
func depthSweep(cfg *config.Config) ([]metrics.AgentConfig, [][2]metrics.AgentConfig) {
	reference := metrics.AgentConfig{ID: 0, Kind: "alphabeta", Depth: 1, Evaluator: "positional"}
	configs := []metrics.AgentConfig{reference}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 1; depth <= cfg.Depth; depth++ {
		config := metrics.AgentConfig{ID: depth, Kind: "alphabeta", Depth: depth, Evaluator: "positional"}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, reference})
	}
	return configs, matchUps
}

// Positional weights against plain disc difference at equal depth.
func evaluatorComparison(cfg *config.Config) ([]metrics.AgentConfig, [][2]metrics.AgentConfig) {
	positional := metrics.AgentConfig{ID: 1, Kind: "alphabeta", Depth: cfg.Depth, Evaluator: "positional"}
	discs := metrics.AgentConfig{ID: 2, Kind: "alphabeta", Depth: cfg.Depth, Evaluator: "discs"}
	return []metrics.AgentConfig{positional, discs}, [][2]metrics.AgentConfig{
		{positional, discs},
		{discs, positional},
	}
}

// Alpha-beta against unpruned minimax. Both choose the same moves, so the games
// only differ in node counts and time.
func pruning(cfg *config.Config) ([]metrics.AgentConfig, [][2]metrics.AgentConfig) {
	alphaBeta := metrics.AgentConfig{ID: 1, Kind: "alphabeta", Depth: cfg.Depth, Evaluator: "positional"}
	minimax := metrics.AgentConfig{ID: 2, Kind: "minimax", Depth: cfg.Depth, Evaluator: "positional"}
	return []metrics.AgentConfig{alphaBeta, minimax}, [][2]metrics.AgentConfig{
		{alphaBeta, minimax},
		{minimax, alphaBeta},
	}
}

// Alpha-beta against Monte Carlo tree search with full rollouts.
func treeSearch(cfg *config.Config) ([]metrics.AgentConfig, [][2]metrics.AgentConfig) {
	alphaBeta := metrics.AgentConfig{ID: 1, Kind: "alphabeta", Depth: cfg.Depth, Evaluator: "positional"}
	mcts := metrics.AgentConfig{ID: 2, Kind: "mcts", Episodes: MCTSEpisodes, Evaluator: "positional", Seed: cfg.Seed}
	return []metrics.AgentConfig{alphaBeta, mcts}, [][2]metrics.AgentConfig{
		{alphaBeta, mcts},
		{mcts, alphaBeta},
	}
}

// Run plays the named experiment and stores its records under cfg.OutputDir.
// It returns the directory the CSV files were written to.
func Run(name string, cfg *config.Config) (string, error) {
	build, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownExperiment, name)
	}
	configs, matchUps := build(cfg)

	log.Info().Msgf("starting %s experiment...", name)
	collector := runMatchUps(cfg, matchUps)
	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(collector.Games())
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(collector.Moves())
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

type task struct {
	matchUp int
	index   int
	white   metrics.AgentConfig
	black   metrics.AgentConfig
}

func runMatchUps(cfg *config.Config, matchUps [][2]metrics.AgentConfig) metrics.Collector {
	tasks := make(chan task, len(matchUps)*cfg.Games)
	for mi, matchUp := range matchUps {
		for i := 0; i < cfg.Games; i++ {
			tasks <- task{matchUp: mi, index: i, white: matchUp[0], black: matchUp[1]}
		}
	}
	close(tasks)

	collector := metrics.NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for t := range tasks {
				log.Debug().Msgf("starting matchup %d of %d game %d of %d...", t.matchUp+1, len(matchUps), t.index+1, cfg.Games)

				// Seeds depend only on the task so results do not depend on scheduling
				seed := cfg.Seed + uint64(t.matchUp*cfg.Games+t.index)
				winner, gameMetric, moveMetrics := runGame(t.white, t.black, seed)
				collector.AddGame(metrics.GameRecord{
					ID:         uuid.NewString(),
					Matchup:    t.matchUp,
					Index:      t.index,
					White:      t.white.ID,
					Black:      t.black.ID,
					GameMetric: gameMetric,
				}, moveMetrics)

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", t.matchUp+1, len(matchUps), t.index+1, winner)
			}
		}()
	}

	wg.Wait()
	return collector
}

// runGame plays one game from a seeded random opening. The opening placements
// are not part of the move records.
func runGame(white, black metrics.AgentConfig, seed uint64) (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(newAgent(white, seed), newAgent(black, seed+1))
	e.State, e.Board = opening(seed, OpeningPlies)
	return e.Run()
}

func opening(seed uint64, plies int) (game.GameState, game.Board) {
	state, b := engine.NewGame()
	random := agent.NewRandomAgent(seed)
	for i := 0; i < plies && !engine.IsTerminated(state); i++ {
		move, _ := random.FindMove(state, b)
		next, board, err := engine.AttemptMove(state, b, move.X, move.Y)
		if err != nil {
			panic(err)
		}
		state, b = next, board
	}
	return state, b
}

func newAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	switch config.Kind {
	case "random":
		if config.Seed != 0 {
			seed = config.Seed + seed
		}
		return agent.NewRandomAgent(seed)
	case "mcts":
		options := searchOptions(config)
		options = append(options, searcher.WithEpisodes(config.Episodes), searcher.WithSeed(config.Seed+seed))
		return agent.NewSearchAgent(searcher.NewMCTS(options...))
	case "minimax":
		return agent.NewSearchAgent(searcher.NewMinimax(searchOptions(config)...))
	default:
		return agent.NewSearchAgent(searcher.NewAlphaBeta(searchOptions(config)...))
	}
}

func searchOptions(config metrics.AgentConfig) []searcher.Option {
	options := []searcher.Option{}

	if config.Depth > 0 {
		if config.Kind == "mcts" {
			options = append(options, searcher.WithCutoff(config.Depth))
		} else {
			options = append(options, searcher.WithDepth(config.Depth))
		}
	}
	if config.Evaluator == "discs" {
		options = append(options, searcher.WithEvaluationFn(game.EvaluateDiscs))
	}

	return options
}
