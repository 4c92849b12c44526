package limiter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridmcts/engine/pkg/game"
	"github.com/gridmcts/engine/pkg/reducer"
)

func TestZeroThresholdNeverCutsOff(t *testing.T) {
	l := New(0)
	cfg := reducer.Config{Sides: [2]reducer.SideConfig{
		{Kind: reducer.Decay, Decay: 0, OnWin: 1},
		{Kind: reducer.Decay, Decay: 0, OnWin: 1},
	}}
	_, red := reducer.NewLeaf(cfg, game.Win, game.SideOne)
	require.False(t, l.ShouldCutoff(red))
}

func TestCutsOffOnceEitherSideDecaysBelowThreshold(t *testing.T) {
	l := New(0.5)
	cfg := reducer.Config{Sides: [2]reducer.SideConfig{
		{Kind: reducer.Decay, Decay: 0.1, OnWin: 1},
		{Kind: reducer.Decay, Decay: 0.1, OnWin: 1},
	}}
	_, red := reducer.NewLeaf(cfg, game.Win, game.SideOne)
	require.False(t, l.ShouldCutoff(red), "fresh reducer magnitude starts at 1, above threshold")

	_, red = red.Step(1, 2)
	require.True(t, l.ShouldCutoff(red), "magnitude 0.1 after one decay step is below the 0.5 threshold")
}
