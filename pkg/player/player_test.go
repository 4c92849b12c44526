package player

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridmcts/engine/pkg/game"
)

func TestMoveDelegatesAndCountsActions(t *testing.T) {
	strat := StrategyFunc[int, string](func(_ context.Context, s int) (string, error) {
		return "moved", nil
	})
	p := New[int, string]("tester", strat)

	m, err := p.Move(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "moved", m)
	require.Equal(t, 1, p.Actions())

	_, _ = p.Move(context.Background(), 2)
	require.Equal(t, 2, p.Actions())
}

func TestRecordTalliesWinLossTie(t *testing.T) {
	p := New[int, string]("tester", nil)
	p.Side = game.SideOne

	p.Record(game.Win, game.SideOne)
	require.Equal(t, 1, p.Wins)

	p.Record(game.Win, game.SideTwo)
	require.Equal(t, 1, p.Losses)

	p.Record(game.Tie, game.SideOne)
	require.Equal(t, 1, p.Ties)
}
