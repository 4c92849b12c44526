// Package tictactoe implements the Tic-Tac-Toe game kernel over a packed
// 3x3 bitboard: 9 bits per player plus a turn flag, and 8 precomputed win
// lines.
package tictactoe

import "github.com/gridmcts/engine/pkg/game"

// full is the bitmask of all 9 cells.
const full uint16 = 0x1FF

// winLines enumerates the 8 three-in-a-row patterns on a 3x3 grid, indexed
// 0..8 row-major (cell i = row*3+col).
var winLines = [8]uint16{
	0b000000111, 0b000111000, 0b111000000, // rows
	0b001001001, 0b010010010, 0b100100100, // columns
	0b100010001, 0b001010100, // diagonals
}

// State is the packed board plus whose turn it is.
type State struct {
	Boards [2]uint16
	Turn   game.Side
}

// TicTacToe is a Game[State, int, game.Unit].
type TicTacToe struct{}

// New returns a TicTacToe kernel.
func New() TicTacToe { return TicTacToe{} }

// New returns the empty board, player one to move.
func (TicTacToe) New() State { return State{Turn: game.SideOne} }

// Player returns the side to act.
func (TicTacToe) Player(s State) game.Side { return s.Turn }

// Moves returns the empty cells, in ascending index order.
func (TicTacToe) Moves(s State) []int {
	occ := s.Boards[0] | s.Boards[1]
	moves := make([]int, 0, 9)
	for i := 0; i < 9; i++ {
		if occ&(1<<uint(i)) == 0 {
			moves = append(moves, i)
		}
	}
	return moves
}

// Outcomes is deterministic.
func (TicTacToe) Outcomes(State, int) []game.WeightedOutcome[game.Unit] {
	return []game.WeightedOutcome[game.Unit]{{Outcome: game.Unit{}, Probability: 1}}
}

// Apply marks cell m for the mover.
func (TicTacToe) Apply(s State, m int, _ game.Unit) (State, game.Status) {
	mover := int(s.Turn)
	next := s
	next.Boards[mover] |= 1 << uint(m)
	next.Turn = s.Turn.Other()

	if hasLine(next.Boards[mover]) {
		return next, game.Finished
	}
	if next.Boards[0]|next.Boards[1] == full {
		return next, game.Finished
	}
	return next, game.Continue
}

// WinState classifies a terminal state.
func (TicTacToe) WinState(s State) (game.Result, bool) {
	mover := int(s.Turn.Other())
	if hasLine(s.Boards[mover]) {
		return game.Win, true
	}
	if s.Boards[0]|s.Boards[1] == full {
		return game.Tie, true
	}
	return 0, false
}

func hasLine(b uint16) bool {
	for _, line := range winLines {
		if b&line == line {
			return true
		}
	}
	return false
}
