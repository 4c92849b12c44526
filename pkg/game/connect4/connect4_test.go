package connect4

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridmcts/engine/pkg/game"
)

func TestInitialStateSevenBySix(t *testing.T) {
	k := New7x6()
	s := k.New()
	require.Equal(t, game.SideOne, k.Player(s))
	require.Len(t, k.Moves(s), 7)
}

func TestVerticalWinSevenBySix(t *testing.T) {
	k := New7x6()
	s := k.New()
	// P1 drops column 0 four times; P2 drops column 1 in between.
	drops := []int{0, 1, 0, 1, 0, 1, 0}
	var status game.Status
	for _, m := range drops {
		s, status = k.Apply(s, m, game.Unit{})
	}
	require.Equal(t, game.Finished, status)
	result, ok := k.WinState(s)
	require.True(t, ok)
	require.Equal(t, game.Win, result)
}

func TestHorizontalWinSevenBySix(t *testing.T) {
	k := New7x6()
	s := k.New()
	// P1: columns 0,1,2,3 on the bottom row; P2 answers each time by stacking
	// on P1's piece one row up, so P2 holds only three cells of row 1 when P1
	// completes the bottom row.
	drops := []int{0, 0, 1, 1, 2, 2, 3}
	var status game.Status
	for _, m := range drops {
		s, status = k.Apply(s, m, game.Unit{})
	}
	require.Equal(t, game.Finished, status)
	result, ok := k.WinState(s)
	require.True(t, ok)
	require.Equal(t, game.Win, result)
}

func TestColumnFullIsNotAMoveOnSevenBySix(t *testing.T) {
	k := New7x6()
	s := k.New()
	// Fill column 0 to its 6-row capacity by alternating players, which
	// never produces four consecutive same-color cells.
	moves := []int{0, 0, 0, 0, 0, 0}
	for _, m := range moves {
		s, _ = k.Apply(s, m, game.Unit{})
	}
	require.NotContains(t, k.Moves(s), 0, "a filled column must not be offered as a legal move")
}

func TestEightBySquareFitsInSingleWord(t *testing.T) {
	k := New8x8()
	s := k.New()
	require.Len(t, k.Moves(s), 8)
	require.Equal(t, 8, k.Rows)
	require.Equal(t, 8, k.Cols)
}

func TestDiagonalWinEightBySquare(t *testing.T) {
	k := New8x8()
	s := k.New()
	// Stair-steps a rising P1 diagonal at (0,0),(1,1),(2,2),(3,3), with
	// enough filler drops interspersed to land each of P1's drops at the
	// right height while keeping turn order strictly alternating.
	drops := []int{
		0,             // P1 -> (0,0)
		1, 1,          // P2, P1 -> (1,1)
		0,             // P2 filler in col0
		2, 2, 2,       // P1, P2, P1 -> (2,2)
		3, 3, 3, 3,    // P2, P1, P2, P1 -> (3,3)
	}
	var status game.Status
	for _, m := range drops {
		s, status = k.Apply(s, m, game.Unit{})
	}
	require.Equal(t, game.Finished, status)
	result, ok := k.WinState(s)
	require.True(t, ok)
	require.Equal(t, game.Win, result)
}
