package game

import (
	"fmt"
	"strings"
)

// Size is the width and height of the board.
const Size = 8

// Color is the content of a cell. White and Black also identify the two sides.
type Color int8

const (
	Empty Color = iota
	White
	Black
)

// Opponent returns the other side. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "empty"
	}
}

// Move is a placement by Side at (X, Y).
type Move struct {
	X, Y int
	Side Color
}

// NoMove is returned where no placement was made (search leaves, passes).
var NoMove = Move{X: -1, Y: -1, Side: Empty}

// IsNone reports whether m is NoMove.
func (m Move) IsNone() bool {
	return m.X < 0 || m.Y < 0
}

// Evaluator scores a board from side's perspective. Larger is better for side.
type Evaluator func(b Board, side Color) int

// ParseColor reads a side name as printed by Color.String.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return Empty, fmt.Errorf("unknown side %q", s)
	}
}
