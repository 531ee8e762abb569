package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSetup(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Setup("")

		require.NoError(t, err)
		require.Equal(t, 4, cfg.Depth)
		require.Equal(t, 10, cfg.Games)
		require.Equal(t, 4, cfg.Workers)
		require.Equal(t, "experiments", cfg.OutputDir)
		require.Equal(t, "baseline", cfg.Experiment)
		require.Equal(t, uint64(1), cfg.Seed)
		require.Equal(t, "black", cfg.Automated)
		level, err := cfg.Level()
		require.NoError(t, err)
		require.Equal(t, zerolog.InfoLevel, level)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "depth: 6\ngames: 2\nlog_level: debug\nexperiment: pruning\n")

		cfg, err := Setup(path)

		require.NoError(t, err)
		require.Equal(t, 6, cfg.Depth)
		require.Equal(t, 2, cfg.Games)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, "pruning", cfg.Experiment)
		require.Equal(t, 4, cfg.Workers, "Unset keys keep their default")
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "depth: 6\n")
		t.Setenv("OTHELLO_DEPTH", "3")
		t.Setenv("OTHELLO_SEED", "99")

		cfg, err := Setup(path)

		require.NoError(t, err)
		require.Equal(t, 3, cfg.Depth)
		require.Equal(t, uint64(99), cfg.Seed)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Setup(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		for _, content := range []string{"depth: 0\n", "games: -1\n", "workers: 0\n", "log_level: loud\n", "automated: red\n"} {
			_, err := Setup(writeConfig(t, content))

			require.ErrorIs(t, err, ErrInvalidConfig, content)
		}
	})
}
