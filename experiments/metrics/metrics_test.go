package metrics

import (
	"encoding/csv"
	"os"
	"othello/searcher"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("orders games by matchup and index", func(t *testing.T) {
		c := NewCollector()
		c.AddGame(GameRecord{ID: "c", Matchup: 1, Index: 0}, []MoveMetric{{Step: 1}})
		c.AddGame(GameRecord{ID: "b", Matchup: 0, Index: 1}, []MoveMetric{{Step: 1}, {Step: 2}})
		c.AddGame(GameRecord{ID: "a", Matchup: 0, Index: 0}, nil)

		games := c.Games()
		moves := c.Moves()

		require.Equal(t, []string{"a", "b", "c"}, []string{games[0].ID, games[1].ID, games[2].ID})
		require.Len(t, moves, 3)
		require.Equal(t, "b", moves[0].Game)
		require.Equal(t, 2, moves[1].Step)
		require.Equal(t, "c", moves[2].Game)
	})

	t.Run("safe for concurrent games", func(t *testing.T) {
		c := NewCollector()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.AddGame(GameRecord{ID: string(rune('A' + i)), Index: i}, []MoveMetric{{Step: 1}})
			}()
		}
		wg.Wait()

		require.Len(t, c.Games(), 50)
		require.Len(t, c.Moves(), 50)
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "baseline")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "alphabeta", Depth: 3, Evaluator: "positional"}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: "g1", Matchup: 0, Index: 0, White: 1, Black: 2,
		GameMetric: GameMetric{
			StartingPlayer: "white", Winner: "black", WhiteDiscs: 20, BlackDiscs: 44,
			StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 60,
		},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       "g1",
		MoveMetric: MoveMetric{Step: 1, Player: "white", X: 2, Y: 4, Flips: 1, Metrics: searcher.Metrics{Depth: 3, Nodes: 40, Cutoffs: 5}},
	}}))

	read := func(name string) [][]string {
		f, err := os.Open(filepath.Join(w.Dir(), name))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	configs := read("agent_configs.csv")
	require.Equal(t, []string{"1", "alphabeta", "3", "0", "positional", "0"}, configs[1])

	games := read("game_records.csv")
	require.Len(t, games, 2)
	require.Equal(t, "g1", games[1][0])
	require.Equal(t, "black", games[1][6])
	require.Equal(t, "2024-01-01T12:00:00Z", games[1][9])
	require.Equal(t, "1s", games[1][11])

	moves := read("move_records.csv")
	require.Equal(t, []string{"g1", "1", "white", "2", "4", "1", "3", "40", "5", "0s"}, moves[1])
}
