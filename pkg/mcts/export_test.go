package mcts

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridmcts/engine/pkg/game"
	"github.com/gridmcts/engine/pkg/game/tictactoe"
)

func TestExportDOTOnEmptyEngineHasNoNodes(t *testing.T) {
	g := tictactoe.New()
	e := New[tictactoe.State, int, game.Unit](g, testConfig(10))

	dot, err := e.ExportDOT()
	require.NoError(t, err)
	require.Contains(t, dot, "digraph")
	require.NotContains(t, dot, "n0")
}

func TestExportDOTAfterSearchHasRootAndEdges(t *testing.T) {
	g := tictactoe.New()
	e := New[tictactoe.State, int, game.Unit](g, testConfig(50))

	_, err := e.Search(context.Background(), g.New())
	require.NoError(t, err)

	dot, err := e.ExportDOT()
	require.NoError(t, err)
	require.True(t, strings.Contains(dot, "v="))
	require.True(t, strings.Contains(dot, "->"))
}
