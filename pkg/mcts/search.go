package mcts

import (
	"github.com/chewxy/math32"

	"github.com/gridmcts/engine/internal/arena"
	"github.com/gridmcts/engine/pkg/game"
	"github.com/gridmcts/engine/pkg/limiter"
	"github.com/gridmcts/engine/pkg/reducer"
)

// playoff runs one iteration of the pipeline: tree policy descent (with
// forced expansion of any unexpanded edge before UCT), outcome sampling,
// expansion, backpropagation, and solved-subtree propagation.
func (e *Engine[S, M, O]) playoff() {
	cur := e.root
	for {
		n, _ := e.nodes.Get(cur)
		moves, _ := e.moveLists.Get(n.moves)
		if len(moves) == 0 {
			break
		}
		if n.solved {
			return
		}

		moveIdx, ok := e.selectMove(cur, n, moves)
		if !ok {
			// Every move's children are solved but the node itself has not
			// yet been flagged; nothing new to learn from this playoff.
			return
		}

		mv := &moves[moveIdx]
		oc := &mv.outcomes[e.sampleOutcome(mv)]
		if !oc.expanded() {
			nextState, _ := e.game.Apply(n.state, mv.move, oc.value)
			childHandle, _ := e.lookupOrCreate(nextState)
			oc.successor = childHandle
			child, _ := e.nodes.Get(childHandle)
			child.preds.add(cur)
		}
		cur = oc.successor
	}

	leaf := cur
	leafNode, _ := e.nodes.Get(leaf)
	result, _ := e.game.WinState(leafNode.state)
	mover := e.game.Player(leafNode.state).Other()
	e.backprop(leaf, mover, result)
	e.propagateSolved(leaf)
}

// selectMove picks a move index at n: any move with an unexpanded outcome is
// preferred uniformly at random (root noise, if enabled, biases this choice
// at the root only); otherwise the highest-UCT move among those not fully
// solved is chosen. ok is false only when every move is already solved.
func (e *Engine[S, M, O]) selectMove(cur arena.Handle, n *node[S, M, O], moves []moveRecord[M, O]) (idx int, ok bool) {
	var unexpanded []int
	for i := range moves {
		if moves[i].hasUnexpanded() {
			unexpanded = append(unexpanded, i)
		}
	}
	if len(unexpanded) > 0 {
		if cur == e.root && e.rootNoise != nil {
			return e.pickByNoise(unexpanded), true
		}
		return unexpanded[e.rng.intn(len(unexpanded))], true
	}

	best := -1
	var bestScore float32
	parentVisits := n.visits
	for i := range moves {
		visits, value, solved := e.moveStats(&moves[i])
		if solved {
			continue
		}
		lnParent := math32.Log(float32(maxu32(parentVisits, 1)))
		explore := math32.Sqrt(e.cfg.ExplorationC * e.cfg.ExplorationC * lnParent / float32(visits))
		score := value + explore
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best, best != -1
}

func (e *Engine[S, M, O]) pickByNoise(candidates []int) int {
	best := candidates[0]
	bestW := e.rootNoise[best]
	for _, c := range candidates[1:] {
		if e.rootNoise[c] > bestW {
			best = c
			bestW = e.rootNoise[c]
		}
	}
	return best
}

// moveStats aggregates a move's expanded outcomes: visits is the summed
// visit count across all expanded outcome successors (used as the UCT
// denominator), value is the probability-weighted mean of those successors'
// own mean scores negated into the perspective of the side choosing the
// move, and solved is true only when every outcome is expanded and every
// successor is solved.
func (e *Engine[S, M, O]) moveStats(mv *moveRecord[M, O]) (visits uint32, value float32, solved bool) {
	solved = true
	for _, oc := range mv.outcomes {
		if !oc.expanded() {
			solved = false
			continue
		}
		child, _ := e.nodes.Get(oc.successor)
		visits += child.visits
		value -= float32(oc.probability) * child.meanScore()
		if !child.solved {
			solved = false
		}
	}
	return visits, value, solved
}

// sampleOutcome draws one outcome index from mv's distribution proportional
// to probability.
func (e *Engine[S, M, O]) sampleOutcome(mv *moveRecord[M, O]) int {
	if len(mv.outcomes) == 1 {
		return 0
	}
	r := e.rng.float64()
	var cum float64
	for i, oc := range mv.outcomes {
		cum += oc.probability
		if r < cum {
			return i
		}
	}
	return len(mv.outcomes) - 1
}

// backpropItem is one entry of the iterative (non-recursive) backprop work
// queue: node already received score via its own update, red is the reducer
// state to use when computing the score for node's own predecessors.
type backpropItem struct {
	node  arena.Handle
	red   reducer.Reducer
	score float32
}

// backprop walks every predecessor chain from leaf up toward the root,
// applying the leaf's terminal value to the immediate predecessors directly
// and the reducer-transformed, sign-inverted value to every ancestor beyond
// that, stopping a given chain early once the execution limiter reports the
// reducer's contribution has decayed below significance.
func (e *Engine[S, M, O]) backprop(leaf arena.Handle, mover game.Side, result game.Result) {
	value, red := reducer.NewLeaf(e.cfg.Reducer, result, mover)
	lim := limiter.New(e.cfg.LimiterThreshold)

	// The side to act at the leaf is the one that did not make the final
	// move, so the leaf's own balance holds the negated value.
	leafNode, _ := e.nodes.Get(leaf)
	leafNode.update(-value)

	var queue []backpropItem
	leafNode.preds.each(func(p arena.Handle) {
		pn, _ := e.nodes.Get(p)
		pn.update(value)
		queue = append(queue, backpropItem{node: p, red: red, score: value})
	})

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		if lim.ShouldCutoff(it.red) {
			continue
		}

		n, _ := e.nodes.Get(it.node)
		moves, _ := e.moveLists.Get(n.moves)
		branchFactor := len(moves)

		nextScore, nextRed := it.red.Step(it.score, branchFactor)

		n.preds.each(func(gp arena.Handle) {
			gpn, _ := e.nodes.Get(gp)
			gpn.update(nextScore)
			queue = append(queue, backpropItem{node: gp, red: nextRed, score: nextScore})
		})
	}
}

// propagateSolved walks up from a newly-solved node, marking each
// predecessor solved in turn whenever every one of its moves has become
// solved, cascading only through predecessors that actually flip state.
func (e *Engine[S, M, O]) propagateSolved(start arena.Handle) {
	queue := []arena.Handle{start}
	for len(queue) > 0 {
		child := queue[0]
		queue = queue[1:]

		cn, _ := e.nodes.Get(child)
		cn.preds.each(func(p arena.Handle) {
			pn, _ := e.nodes.Get(p)
			if pn.solved {
				return
			}
			if e.nodeFullySolved(pn) {
				pn.solved = true
				queue = append(queue, p)
			}
		})
	}
}

func (e *Engine[S, M, O]) nodeFullySolved(n *node[S, M, O]) bool {
	moves, _ := e.moveLists.Get(n.moves)
	if len(moves) == 0 {
		return true
	}
	for i := range moves {
		_, _, solved := e.moveStats(&moves[i])
		if !solved {
			return false
		}
	}
	return true
}

// bestRootMove selects the root move with the highest mean score among
// those visited at least once, breaking ties by visit count; it is the
// search's final answer regardless of whether the winning move is solved.
func (e *Engine[S, M, O]) bestRootMove() (M, error) {
	var zero M
	root, _ := e.nodes.Get(e.root)
	moves, _ := e.moveLists.Get(root.moves)
	if len(moves) == 0 {
		return zero, errOnTerminalRoot
	}

	best := -1
	var bestValue float32
	var bestVisits uint32
	for i := range moves {
		visits, value, _ := e.moveStats(&moves[i])
		if visits == 0 {
			continue
		}
		if best == -1 || value > bestValue || (value == bestValue && visits > bestVisits) {
			best = i
			bestValue = value
			bestVisits = visits
		}
	}
	if best == -1 {
		// Budget exhausted before any playoff ran (e.g. a zero iteration
		// count slipped past validation); fall back to the first legal
		// move rather than returning an error for an otherwise-valid call.
		best = 0
	}
	return moves[best].move, nil
}

func maxu32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
