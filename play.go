package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"othello/config"
	"othello/engine"
	"othello/game"
	"othello/searcher"
	"time"
)

// play runs an interactive game on the terminal against s. Moves are read as
// "x y" lines; "new" restarts and "quit" stops.
func play(cfg *config.Config, s searcher.Searcher, in io.Reader, out io.Writer) error {
	automated, err := game.ParseColor(cfg.Automated)
	if err != nil {
		return err
	}
	session := engine.NewSession(automated, s)
	_, _, getUpdate := session.Init()

	scanner := bufio.NewScanner(in)
	for {
		state, err := waitForHuman(session, getUpdate, automated, out)
		if err != nil {
			return err
		}
		_, b := session.Snapshot()
		fmt.Fprintf(out, "%s\n", b)
		if state.Terminated {
			white, black := game.Score(b)
			fmt.Fprintf(out, "game over: white %d, black %d, winner %s\n", white, black, game.Winner(b))
			return nil
		}
		fmt.Fprintf(out, "%s to move: ", state.Active)

		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		switch line {
		case "quit":
			return nil
		case "new":
			_, _, getUpdate = session.Init()
			continue
		}

		var x, y int
		if _, err := fmt.Sscanf(line, "%d %d", &x, &y); err != nil {
			fmt.Fprintln(out, "enter a move as: x y")
			continue
		}
		err = session.Play(x, y)
		switch {
		case errors.Is(err, game.ErrIllegalMove), errors.Is(err, game.ErrOutOfBounds):
			fmt.Fprintf(out, "%v\n", err)
		case err != nil:
			return err
		}
	}
}

// waitForHuman reads updates until the human is to move or the game is over.
// A failed engine move ends the wait with its error.
func waitForHuman(session *engine.Session, getUpdate engine.UpdateGetter, automated game.Color, out io.Writer) (game.GameState, error) {
	for {
		for u, ok := getUpdate(); ok; u, ok = getUpdate() {
			if u.Move.Side == automated {
				fmt.Fprintf(out, "%s played %d %d\n", automated, u.Move.X, u.Move.Y)
			}
		}
		if err := session.Err(); err != nil {
			return game.GameState{}, err
		}
		state, _ := session.Snapshot()
		if state.Terminated || state.Active != automated {
			return state, nil
		}
		time.Sleep(time.Millisecond)
	}
}
