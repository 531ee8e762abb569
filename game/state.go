package game

import "fmt"

// GameState tracks whose turn it is, whether the previous turn was a pass and
// whether the game is over. It is a value; transitions return a new GameState.
type GameState struct {
	Active     Color // Side to move
	Passes     int   // 1 right after a pass, 0 otherwise
	Terminated bool  // Set by the second consecutive pass; final
}

// NewGameState returns the state at the start of a game. White moves first.
func NewGameState() GameState {
	return GameState{Active: White}
}

// Phase names the state machine state for display and logs.
func (gs GameState) Phase() string {
	switch {
	case gs.Terminated:
		return "terminated"
	case gs.Passes > 0:
		return fmt.Sprintf("passed(%s)", gs.Active.Opponent())
	default:
		return fmt.Sprintf("active(%s)", gs.Active)
	}
}

// Play applies the active side's placement at (x, y), hands the turn to the
// opponent and resolves any forced passes. On error state and board are returned
// unchanged.
func (gs GameState) Play(b Board, x, y int) (GameState, Board, error) {
	if gs.Terminated {
		return gs, b, ErrGameOver
	}
	next, err := Apply(b, gs.Active, x, y)
	if err != nil {
		return gs, b, err
	}
	return GameState{Active: gs.Active.Opponent()}.Resolve(next), next, nil
}

// Resolve handles a side to move without legal placements. That side passes and
// the opponent becomes active; if the opponent cannot move either, or a pass was
// already pending, the game terminates.
func (gs GameState) Resolve(b Board) GameState {
	if gs.Terminated || HasAnyLegalMove(b, gs.Active) {
		return gs
	}
	if gs.Passes > 0 {
		gs.Terminated = true
		return gs
	}
	gs.Passes = 1
	gs.Active = gs.Active.Opponent()
	return gs.Resolve(b)
}

// Score returns the disc counts of both sides.
func Score(b Board) (white, black int) {
	return b.Count(White), b.Count(Black)
}

// Winner returns the side with more discs, Empty on a draw.
func Winner(b Board) Color {
	white, black := Score(b)
	switch {
	case white > black:
		return White
	case black > white:
		return Black
	default:
		return Empty
	}
}
