package game

import "errors"

var (
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over - no moves allowed")
)
