package searcher

import (
	"math"
	"othello/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

// Rewards estimate the chance of winning
const (
	Win  = 1.0
	Draw = 0.5
	Loss = 0.0
)

// MaxCutoff lets rollouts run to the end of any game.
const MaxCutoff = game.Size * game.Size

// DefaultEpisodes is used when neither episodes nor a duration are configured.
const DefaultEpisodes = 1000

// uct = q/n + sqrt(c^2*ln(N)/n), with c2LnN precomputed per parent.
func uct(rewards float64, visits int, c2LnN float64) float64 {
	if visits == 0 {
		panic("cannot compute UCT: 0 visits")
	}
	n := float64(visits)
	return rewards/n + math.Sqrt(c2LnN/n)
}

// reward scores an outcome for player. winner is game.Empty on a draw.
func reward(winner, player game.Color) float64 {
	switch winner {
	case player:
		return Win
	case game.Empty:
		return Draw
	default:
		return Loss
	}
}
