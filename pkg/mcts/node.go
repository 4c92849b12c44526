package mcts

import (
	"github.com/gridmcts/engine/internal/arena"
	"github.com/gridmcts/engine/internal/slicearena"
)

// predList holds a node's predecessor handles. Two inline slots cover the
// overwhelming majority of nodes (at most one predecessor per incoming move,
// and most positions are reached by very few distinct parents before a
// transposition merge); a spill slice absorbs the rest without forcing every
// node to carry a full slice header.
type predList struct {
	inline [2]arena.Handle
	n      uint8
	spill  []arena.Handle
}

func (p *predList) add(h arena.Handle) {
	if int(p.n) < len(p.inline) {
		p.inline[p.n] = h
		p.n++
		return
	}
	p.spill = append(p.spill, h)
}

func (p *predList) each(fn func(arena.Handle)) {
	for i := 0; i < int(p.n); i++ {
		fn(p.inline[i])
	}
	for _, h := range p.spill {
		fn(h)
	}
}

// outcomeRecord is one entry of a move's outcome distribution, carrying its
// own successor handle so stochastic moves can fan out to distinct children
// per sampled outcome.
type outcomeRecord[O any] struct {
	value       O
	probability float64
	successor   arena.Handle
}

func (o outcomeRecord[O]) expanded() bool { return o.successor != arena.Invalid }

// moveRecord is one outgoing edge: the move value plus its outcome
// distribution, each outcome initially unexpanded.
type moveRecord[M comparable, O any] struct {
	move     M
	outcomes []outcomeRecord[O]
}

func (m moveRecord[M, O]) hasUnexpanded() bool {
	for _, o := range m.outcomes {
		if !o.expanded() {
			return true
		}
	}
	return false
}

func (m moveRecord[M, O]) fullyExpanded() bool {
	return !m.hasUnexpanded()
}

// node is a single search-tree (DAG) record: the game state it represents,
// its predecessors, its outgoing move list, and the accumulated statistics
// a mean score is derived from.
type node[S comparable, M comparable, O any] struct {
	state  S
	preds  predList
	moves  slicearena.Handle
	visits uint32
	// balance is the accumulated (summed, not averaged) reward from the
	// perspective of the side to act at this node; mean score is
	// balance / visits.
	balance float32
	solved  bool
}

func (n *node[S, M, O]) meanScore() float32 {
	if n.visits == 0 {
		return 0
	}
	return n.balance / float32(n.visits)
}

func (n *node[S, M, O]) update(score float32) {
	n.balance += score
	n.visits++
}
