package config

import (
	"errors"
	"fmt"
	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. OTHELLO_DEPTH.
const EnvPrefix = "OTHELLO"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Depth      int    `mapstructure:"DEPTH"`
	Games      int    `mapstructure:"GAMES"`
	Workers    int    `mapstructure:"WORKERS"`
	OutputDir  string `mapstructure:"OUTPUT_DIR"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	Experiment string `mapstructure:"EXPERIMENT"`
	Seed       uint64 `mapstructure:"SEED"`
	Automated  string `mapstructure:"AUTOMATED"` // Side the engine plays in interactive games
}

// Setup reads the config file at cfgPath, if any, then applies environment
// overrides on top of the defaults.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("DEPTH", meta.DEPTH)
	v.SetDefault("GAMES", meta.GAMES)
	v.SetDefault("WORKERS", 4)
	v.SetDefault("OUTPUT_DIR", meta.OUTPUT_DIR)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("EXPERIMENT", "baseline")
	v.SetDefault("SEED", 1)
	v.SetDefault("AUTOMATED", meta.AUTOMATED)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, err
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Depth <= 0 {
		return fmt.Errorf("%w: depth must be positive, got %d", ErrInvalidConfig, c.Depth)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output dir is empty", ErrInvalidConfig)
	}
	if _, err := game.ParseColor(c.Automated); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}
