// Package chess adapts github.com/notnil/chess to the engine's Game
// contract. It exists to demonstrate that the contract generalizes beyond
// the bespoke bitboard kernels: states are plain FEN strings (comparable,
// so they key the transposition map directly) and moves are algebraic move
// strings, reconstructing a *chess.Game from FEN whenever rules need to be
// consulted.
package chess

import (
	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"github.com/gridmcts/engine/pkg/game"
)

// State is a FEN string snapshot of a position.
type State string

// Chess is a Game[State, string, game.Unit] backed by notnil/chess.
type Chess struct{}

// New returns a Chess kernel.
func New() Chess { return Chess{} }

// New returns the initial position's FEN.
func (Chess) New() State {
	return State(chess.NewGame().Position().String())
}

func (s State) toGame() (*chess.Game, error) {
	fenFn, err := chess.FEN(string(s))
	if err != nil {
		return nil, errors.Wrapf(err, "chess: invalid FEN %q", string(s))
	}
	return chess.NewGame(fenFn), nil
}

// Player returns the side to move.
func (Chess) Player(s State) game.Side {
	g, err := s.toGame()
	if err != nil {
		panic(err)
	}
	if g.Position().Turn() == chess.White {
		return game.SideOne
	}
	return game.SideTwo
}

// Moves returns the legal moves from s, as algebraic move strings.
func (Chess) Moves(s State) []string {
	g, err := s.toGame()
	if err != nil {
		panic(err)
	}
	valid := g.ValidMoves()
	moves := make([]string, len(valid))
	for i, m := range valid {
		moves[i] = chess.AlgebraicNotation{}.Encode(g.Position(), m)
	}
	return moves
}

// Outcomes is deterministic: chess has no chance element.
func (Chess) Outcomes(State, string) []game.WeightedOutcome[game.Unit] {
	return []game.WeightedOutcome[game.Unit]{{Outcome: game.Unit{}, Probability: 1}}
}

// Apply plays the move identified by its algebraic string.
func (Chess) Apply(s State, m string, _ game.Unit) (State, game.Status) {
	g, err := s.toGame()
	if err != nil {
		panic(err)
	}
	var target *chess.Move
	for _, cand := range g.ValidMoves() {
		if (chess.AlgebraicNotation{}).Encode(g.Position(), cand) == m {
			target = cand
			break
		}
	}
	if target == nil {
		panic(errors.Errorf("chess: move %q is not legal in position %q", m, string(s)))
	}
	if err := g.Move(target); err != nil {
		panic(errors.Wrap(err, "chess: apply move"))
	}

	status := game.Continue
	if g.Outcome() != chess.NoOutcome {
		status = game.Finished
	}
	return State(g.Position().String()), status
}

// WinState classifies a terminal position.
func (Chess) WinState(s State) (game.Result, bool) {
	g, err := s.toGame()
	if err != nil {
		panic(err)
	}
	switch g.Outcome() {
	case chess.NoOutcome:
		return 0, false
	case chess.Draw:
		return game.Tie, true
	default:
		return game.Win, true
	}
}
