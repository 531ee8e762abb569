package searcher

import (
	"math"
	"othello/game"
	"sync"
)

// node is an MCTS tree node shared by all workers. Its statistics are from the
// perspective of player, the side whose move led to it.
type node struct {
	sync.RWMutex
	parent   *node
	player   game.Color
	moves    []game.Move // Moves of the side to move, children follow the same order
	children []*node
	rewards  float64
	visits   int
}

func newNode(parent *node, player game.Color, state game.GameState, b game.Board) *node {
	var moves []game.Move
	if !state.Terminated {
		moves = game.LegalMoves(b, state.Active)
	}
	return &node{
		parent:   parent,
		player:   player,
		moves:    moves,
		children: make([]*node, 0, len(moves)),
	}
}

// SelectOrExpand adds the next untried child if there is one, otherwise selects
// the child with the highest UCT value. A terminal node returns itself. The
// returned child carries a virtual loss until it is backed up.
func (n *node) SelectOrExpand(state game.GameState, b game.Board) (*node, game.GameState, game.Board, bool) {
	n.Lock()
	defer n.Unlock()

	if len(n.moves) == 0 { // Terminal node
		return n, state, b, false
	}

	if len(n.moves) > len(n.children) { // Expandable node
		move := n.moves[len(n.children)]
		state, b = advance(state, b, move)
		child := newNode(n, move.Side, state, b)
		n.children = append(n.children, child)
		child.applyLoss()
		return child, state, b, true
	}

	// Fully expanded node
	ith := n.pickChild()
	child := n.children[ith]
	child.applyLoss()
	state, b = advance(state, b, n.moves[ith])
	return child, state, b, false
}

func (n *node) pickChild() int {
	// The root may be fully expanded before its first backup
	c2LnN := CSquared * math.Log(float64(max(n.visits, 1)))

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		if score := child.score(c2LnN); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (n *node) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += Loss
	n.visits++
}

func (n *node) reverseLoss() {
	n.rewards -= Loss
	n.visits--
}

func (n *node) score(c2LnN float64) float64 {
	n.RLock()
	defer n.RUnlock()

	return uct(n.rewards, n.visits, c2LnN)
}

// Backup records the outcome and returns the parent.
func (n *node) Backup(winner game.Color) *node {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil { // Non-root node
		n.reverseLoss()
	}

	n.rewards += reward(winner, n.player)
	n.visits++

	return n.parent
}

func (n *node) Visits() int {
	n.RLock()
	defer n.RUnlock()

	return n.visits
}

// bestChild returns the index of the most visited child, the first on ties.
func (n *node) bestChild() int {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	maxVisits := n.children[0].Visits()
	for i, child := range n.children[1:] {
		if v := child.Visits(); v > maxVisits {
			maxVisits = v
			bestIndex = i + 1
		}
	}
	return bestIndex
}

func advance(state game.GameState, b game.Board, m game.Move) (game.GameState, game.Board) {
	next, board, err := state.Play(b, m.X, m.Y)
	if err != nil {
		panic(err)
	}
	return next, board
}
