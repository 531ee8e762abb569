// meta/meta.go
package meta

// DEPTH is the default search depth in plies.
const DEPTH = 4

// AUTOMATED is the side played by the search engine by default (game.Black).
const AUTOMATED = "black"

// GAMES defines the number of games per experiment matchup.
const GAMES = 10

// MAX_TURNS caps a self-play game. Othello ends within 60 placements plus passes.
const MAX_TURNS = 128

// OUTPUT_DIR is where experiment CSV files are written.
const OUTPUT_DIR = "experiments"
