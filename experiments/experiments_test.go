package experiments

import (
	"encoding/csv"
	"os"
	"othello/config"
	"othello/experiments/metrics"
	"othello/game"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Depth:     1,
		Games:     2,
		Workers:   2,
		OutputDir: t.TempDir(),
		LogLevel:  "info",
		Seed:      1,
		Automated: "black",
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	t.Run("unknown experiment", func(t *testing.T) {
		_, err := Run("nope", testConfig(t))

		require.ErrorIs(t, err, ErrUnknownExperiment)
	})

	t.Run("baseline writes every record", func(t *testing.T) {
		cfg := testConfig(t)

		dir, err := Run("baseline", cfg)

		require.NoError(t, err)
		require.Equal(t, cfg.OutputDir, filepath.Dir(filepath.Dir(dir)))

		configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
		require.Len(t, configs, 3, "Header plus two agents")

		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 1+2*cfg.Games, "Header plus two matchups")

		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.Greater(t, len(moves), 1)
	})

	t.Run("every experiment runs", func(t *testing.T) {
		for _, name := range Names() {
			cfg := testConfig(t)
			cfg.Games = 1

			_, err := Run(name, cfg)

			require.NoError(t, err, name)
		}
	})
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{"baseline", "depth", "evaluator", "mcts", "pruning"}, Names())
}

func TestOpening(t *testing.T) {
	state1, b1 := opening(5, OpeningPlies)
	state2, b2 := opening(5, OpeningPlies)

	require.Equal(t, state1, state2, "Same seed should give the same opening")
	require.Equal(t, b1, b2)
	require.Equal(t, 4+OpeningPlies, b1.Count(game.White)+b1.Count(game.Black))
	require.False(t, state1.Terminated)
}

func TestRunGame(t *testing.T) {
	white := metrics.AgentConfig{ID: 1, Kind: "alphabeta", Depth: 1}
	black := metrics.AgentConfig{ID: 2, Kind: "random"}

	winner, gameMetric, moveMetrics := runGame(white, black, 3)

	require.Equal(t, winner.String(), gameMetric.Winner)
	require.Len(t, moveMetrics, gameMetric.TotalMoves)
	require.Equal(t, 4+OpeningPlies+gameMetric.TotalMoves, gameMetric.WhiteDiscs+gameMetric.BlackDiscs)
	require.NotEqual(t, "empty", gameMetric.StartingPlayer)
}

func TestPruningMatchesMinimax(t *testing.T) {
	ab := metrics.AgentConfig{ID: 1, Kind: "alphabeta", Depth: 2}
	mm := metrics.AgentConfig{ID: 2, Kind: "minimax", Depth: 2}

	_, abGame, abMoves := runGame(ab, ab, 9)
	_, mmGame, mmMoves := runGame(mm, mm, 9)

	require.Equal(t, abGame.Winner, mmGame.Winner)
	require.Len(t, abMoves, len(mmMoves))
	for i := range abMoves {
		require.Equal(t, mmMoves[i].X, abMoves[i].X)
		require.Equal(t, mmMoves[i].Y, abMoves[i].Y)
		require.LessOrEqual(t, abMoves[i].Nodes, mmMoves[i].Nodes)
	}
}
