// Package player implements a thin, stateful wrapper around a
// move-selection Strategy, tracking per-player bookkeeping: name, seated
// side, and win/loss/tie tallies.
package player

import (
	"context"

	"github.com/gridmcts/engine/pkg/game"
)

// Strategy selects a move for state. Implementations may hold their own
// search state (e.g. an *mcts.Engine) between calls; the adapter does not
// assume anything about how the decision is made.
type Strategy[S comparable, M comparable] interface {
	SelectMove(ctx context.Context, state S) (M, error)
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc[S comparable, M comparable] func(ctx context.Context, state S) (M, error)

// SelectMove implements Strategy.
func (f StrategyFunc[S, M]) SelectMove(ctx context.Context, state S) (M, error) {
	return f(ctx, state)
}

// Player wraps a Strategy with identity and running tallies, the unit a
// Driver schedules games between.
type Player[S comparable, M comparable] struct {
	Name     string
	Strategy Strategy[S, M]

	Side game.Side

	actions int
	Wins    int
	Losses  int
	Ties    int
}

// New returns a Player with zeroed tallies.
func New[S comparable, M comparable](name string, strat Strategy[S, M]) *Player[S, M] {
	return &Player[S, M]{Name: name, Strategy: strat}
}

// Move asks the underlying Strategy for a move and bumps the action count.
func (p *Player[S, M]) Move(ctx context.Context, state S) (M, error) {
	m, err := p.Strategy.SelectMove(ctx, state)
	if err == nil {
		p.actions++
	}
	return m, err
}

// Actions reports how many moves this player has made across its lifetime.
func (p *Player[S, M]) Actions() int { return p.actions }

// Record applies the outcome of one game to this player's tallies from its
// own perspective: mover is the side that made the terminal move, result
// classifies Win or Tie. A Driver calls this once per finished game.
func (p *Player[S, M]) Record(result game.Result, mover game.Side) {
	switch {
	case result == game.Tie:
		p.Ties++
	case mover == p.Side:
		p.Wins++
	default:
		p.Losses++
	}
}
