package main

import (
	"fmt"
	"os"
	"othello/config"
	"othello/experiments"
	"othello/searcher"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	cfgPath := pflag.StringP("config", "c", "", "path to a YAML config file")
	name := pflag.StringP("experiment", "e", "", "experiment to run, overrides the config: "+strings.Join(experiments.Names(), ", "))
	list := pflag.Bool("list", false, "list the experiments and exit")
	interactive := pflag.Bool("play", false, "play against the engine on the terminal")
	pflag.Parse()

	if *list {
		for _, n := range experiments.Names() {
			fmt.Println(n)
		}
		return
	}

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *name != "" {
		cfg.Experiment = *name
	}

	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Interface("config", cfg).Msg("loaded config")

	if *interactive {
		s := searcher.NewAlphaBeta(searcher.WithDepth(cfg.Depth))
		if err := play(cfg, s, os.Stdin, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
		return
	}

	dir, err := experiments.Run(cfg.Experiment, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("experiment", cfg.Experiment).Msg("experiment failed")
	}
	log.Info().Str("dir", dir).Msg("results stored")
}
