package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridmcts/engine/pkg/game"
)

func TestInitialStateHasNineMovesAndPlayerOneToAct(t *testing.T) {
	g := New()
	s := g.New()
	require.Equal(t, game.SideOne, g.Player(s))
	require.Len(t, g.Moves(s), 9)
}

func TestRowWinIsDetected(t *testing.T) {
	g := New()
	s := g.New()
	// X: 0,1,2 (top row); O: 3,4 interleaved.
	moves := []int{0, 3, 1, 4, 2}
	var status game.Status
	for _, m := range moves {
		s, status = g.Apply(s, m, game.Unit{})
	}
	require.Equal(t, game.Finished, status)
	result, ok := g.WinState(s)
	require.True(t, ok)
	require.Equal(t, game.Win, result)
}

func TestFullBoardNoWinnerIsTie(t *testing.T) {
	g := New()
	s := g.New()
	// A known draw sequence on a 3x3 board.
	moves := []int{0, 1, 2, 4, 3, 5, 7, 6, 8}
	var status game.Status
	for _, m := range moves {
		s, status = g.Apply(s, m, game.Unit{})
	}
	require.Equal(t, game.Finished, status)
	result, ok := g.WinState(s)
	require.True(t, ok)
	require.Equal(t, game.Tie, result)
}

func TestMovesShrinkAsCellsFill(t *testing.T) {
	g := New()
	s := g.New()
	s, _ = g.Apply(s, 4, game.Unit{})
	require.Len(t, g.Moves(s), 8)
	require.NotContains(t, g.Moves(s), 4)
}

func TestOutcomesAreDeterministic(t *testing.T) {
	g := New()
	s := g.New()
	outcomes := g.Outcomes(s, 0)
	require.Len(t, outcomes, 1)
	require.Equal(t, 1.0, outcomes[0].Probability)
}
