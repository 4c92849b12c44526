package driver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridmcts/engine/pkg/game"
	"github.com/gridmcts/engine/pkg/game/tictactoe"
	"github.com/gridmcts/engine/pkg/player"
)

var errPlayerUnavailable = errors.New("player unavailable")

// scripted plays a fixed move sequence regardless of the board, for tests
// that need an exact, easy-to-hand-verify game trace.
type scripted struct {
	moves []int
	i     int
}

func (s *scripted) SelectMove(_ context.Context, _ tictactoe.State) (int, error) {
	m := s.moves[s.i]
	s.i++
	return m, nil
}

func TestPlayGameRecordsWinner(t *testing.T) {
	g := tictactoe.New()
	d := New[tictactoe.State, int, game.Unit](g)

	a := player.New[tictactoe.State, int]("A", &scripted{moves: []int{0, 1, 2}})
	b := player.New[tictactoe.State, int]("B", &scripted{moves: []int{3, 4}})

	res, err := d.PlayGame(context.Background(), a, b)
	require.NoError(t, err)
	require.Equal(t, game.Win, res.Classification)
	require.Equal(t, game.SideOne, res.Mover)
	require.Equal(t, 5, res.Plies)
	require.Equal(t, 1, a.Wins)
	require.Equal(t, 1, b.Losses)
}

// firstLegal always plays the lowest-indexed empty cell; it is purely a
// function of the board, so it is safe to reuse across many games, unlike
// scripted.
type firstLegal struct{ g tictactoe.TicTacToe }

func (f firstLegal) SelectMove(_ context.Context, s tictactoe.State) (int, error) {
	return f.g.Moves(s)[0], nil
}

func TestRunMatchAlternatesStartingSide(t *testing.T) {
	g := tictactoe.New()
	d := New[tictactoe.State, int, game.Unit](g)

	a := player.New[tictactoe.State, int]("A", firstLegal{g: g})
	b := player.New[tictactoe.State, int]("B", firstLegal{g: g})

	// Two players that both always pick the lowest empty cell produce a
	// deterministic game where the side seated first always completes the
	// {2,4,6} anti-diagonal on its fourth move: a must win the game it
	// starts and lose the one it doesn't.
	tally, err := d.RunMatch(context.Background(), 2, a, b)
	require.NoError(t, err)
	require.Equal(t, 1, tally.Wins)
	require.Equal(t, 1, tally.Losses)
	require.Equal(t, 0, tally.Ties)
	require.Len(t, tally.Results, 2)
}

// failingStrategy always errors, so a driven game can never complete.
type failingStrategy struct{}

func (failingStrategy) SelectMove(context.Context, tictactoe.State) (int, error) {
	return 0, errPlayerUnavailable
}

func TestRunMatchTolerantCollectsAllFailures(t *testing.T) {
	g := tictactoe.New()
	d := New[tictactoe.State, int, game.Unit](g)

	a := player.New[tictactoe.State, int]("A", failingStrategy{})
	b := player.New[tictactoe.State, int]("B", failingStrategy{})

	tally, err := d.RunMatchTolerant(context.Background(), 3, a, b)
	require.Error(t, err)
	require.Contains(t, err.Error(), "3 errors occurred")
	require.Equal(t, 0, tally.Wins+tally.Losses+tally.Ties)
}
