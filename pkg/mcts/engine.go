// Package mcts implements the search engine: tree policy descent, outcome
// sampling, expansion, early cutoff, backpropagation, and solved-subtree
// propagation over a transposition-merged DAG, driven against any
// github.com/gridmcts/engine/pkg/game.Game implementation.
package mcts

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/gridmcts/engine/internal/arena"
	"github.com/gridmcts/engine/internal/slicearena"
	"github.com/gridmcts/engine/pkg/game"
)

var errOnTerminalRoot = errors.New("mcts: Search called on a terminal state")

// Engine owns one search's arenas, transposition map, and RNG. It is built
// once per game and reused across many top-level Search calls; each Search
// purges and rebuilds the tree from scratch for the requested state.
type Engine[S comparable, M comparable, O any] struct {
	game game.Game[S, M, O]
	cfg  Config

	nodes     *arena.Arena[node[S, M, O]]
	moveLists *slicearena.Arena[moveRecord[M, O]]
	transpo   map[S]arena.Handle

	root arena.Handle
	rng  *source
	log  *log.Logger

	rootNoise []float64
}

// New builds an Engine for g. cfg is validated; an invalid configuration
// makes every Search call return an error.
func New[S comparable, M comparable, O any](g game.Game[S, M, O], cfg Config) *Engine[S, M, O] {
	return &Engine[S, M, O]{
		game:      g,
		cfg:       cfg,
		nodes:     arena.New[node[S, M, O]](),
		moveLists: slicearena.New[moveRecord[M, O]](),
		transpo:   make(map[S]arena.Handle),
		rng:       newSource(cfg.Seed),
		log:       log.New(os.Stderr, "mcts: ", log.Ltime),
	}
}

// SetLogger overrides the engine's logger, which otherwise writes to
// stderr.
func (e *Engine[S, M, O]) SetLogger(l *log.Logger) { e.log = l }

// Search runs a complete top-level decision for state: reset, create root,
// run playoffs to the configured budget, then select and return the best
// root move.
func (e *Engine[S, M, O]) Search(ctx context.Context, state S) (M, error) {
	var zero M
	if err := e.cfg.Validate(); err != nil {
		return zero, errors.Wrap(err, "mcts: Search")
	}
	if _, terminal := e.game.WinState(state); terminal {
		return zero, errOnTerminalRoot
	}

	e.reset()
	e.root = e.newNode(state)
	e.prepareRootNoise()

	deadline, hasDeadline := e.deadline()
	iterations := e.cfg.Budget.Iterations

	ran := 0
	for {
		if hasDeadline && time.Now().After(deadline) {
			break
		}
		if iterations > 0 && ran >= iterations {
			break
		}
		if rootNode, _ := e.nodes.Get(e.root); rootNode.solved {
			break
		}
		select {
		case <-ctx.Done():
			return zero, errors.Wrap(ctx.Err(), "mcts: Search")
		default:
		}

		e.playoff()
		ran++
	}

	return e.bestRootMove()
}

// SelectMove adapts Search to pkg/player's Strategy interface, so an Engine
// can be handed directly to a Player without an intermediate wrapper.
func (e *Engine[S, M, O]) SelectMove(ctx context.Context, state S) (M, error) {
	return e.Search(ctx, state)
}

func (e *Engine[S, M, O]) deadline() (time.Time, bool) {
	if e.cfg.Budget.Deadline <= 0 {
		return time.Time{}, false
	}
	return time.Now().Add(e.cfg.Budget.Deadline), true
}

// reset purges both arenas and clears the transposition map so the next
// Search starts from an empty tree.
func (e *Engine[S, M, O]) reset() {
	for s := range e.transpo {
		delete(e.transpo, s)
	}
	e.nodes.Purge()
	e.moveLists.Clear()
	e.root = arena.Invalid
}

// newNode allocates a node for state, eagerly building its move list (empty
// and solved if state is terminal), and records it in the transposition map.
func (e *Engine[S, M, O]) newNode(state S) arena.Handle {
	n := node[S, M, O]{state: state}

	if _, terminal := e.game.WinState(state); terminal {
		n.solved = true
		n.moves = slicearena.Invalid
	} else {
		moves := e.game.Moves(state)
		records := make([]moveRecord[M, O], len(moves))
		for i, m := range moves {
			outcomes := e.game.Outcomes(state, m)
			recs := make([]outcomeRecord[O], len(outcomes))
			for j, o := range outcomes {
				recs[j] = outcomeRecord[O]{value: o.Outcome, probability: o.Probability, successor: arena.Invalid}
			}
			records[i] = moveRecord[M, O]{move: m, outcomes: recs}
		}
		n.moves = e.moveLists.Insert(records)
	}

	h := e.nodes.Insert(n)
	e.transpo[state] = h
	return h
}

// lookupOrCreate returns the handle for state, creating it if this is the
// first time the search has reached it (a transposition-map miss).
func (e *Engine[S, M, O]) lookupOrCreate(state S) (h arena.Handle, isNew bool) {
	if h, ok := e.transpo[state]; ok {
		return h, false
	}
	return e.newNode(state), true
}

func (e *Engine[S, M, O]) prepareRootNoise() {
	e.rootNoise = nil
	if !e.cfg.RootNoise.Enabled {
		return
	}
	root, _ := e.nodes.Get(e.root)
	moves, _ := e.moveLists.Get(root.moves)
	if len(moves) == 0 {
		return
	}
	e.rootNoise = sampleDirichlet(e.rng, e.cfg.RootNoise.Alpha, len(moves))
}
