// Package connect4 implements the Connect-Four game kernel on a packed
// bitboard, parameterized over board dimensions so the same win-detection
// and move-enumeration logic serves both the standard 7x6 board and the
// 8x8 variant.
//
// Cells are numbered row-major, bit index = row*Cols+col, row 0 at the
// bottom. Each player's occupancy is a single uint64 word; since both
// supported boards fit in 64 cells (42 and 64 respectively) no second word
// per player is needed, unlike a sentinel-row layout.
package connect4

import (
	"math/bits"

	"github.com/gridmcts/engine/pkg/game"
)

// State is the packed board plus whose turn it is. It is comparable, so it
// can key a transposition map directly.
type State struct {
	Boards [2]uint64
	Turn   game.Side
}

// Connect4 is a Game[State, int, game.Unit] for an arbitrary Rows x Cols
// board (Rows*Cols must be <= 64).
type Connect4 struct {
	Rows, Cols int

	colMask     [64]uint64 // colMask[c]: every row bit in column c
	topBit      [64]uint64 // topBit[c]: bit at the highest row of column c
	startH      uint64     // valid leftmost-cell starts for horizontal runs
	startDiagUR uint64     // valid starts for the up-right diagonal
	startDiagUL uint64     // valid starts for the up-left diagonal
	fullBoard   uint64
}

// New7x6 returns the standard Connect-Four kernel.
func New7x6() *Connect4 { return newConnect4(6, 7) }

// New8x8 returns the 8x8 variant kernel.
func New8x8() *Connect4 { return newConnect4(8, 8) }

func newConnect4(rows, cols int) *Connect4 {
	if rows*cols > 64 {
		panic("connect4: board too large for a 64-bit bitboard")
	}
	c4 := &Connect4{Rows: rows, Cols: cols}

	bit := func(r, c int) uint64 { return 1 << uint(r*cols+c) }

	for col := 0; col < cols; col++ {
		var cm uint64
		for row := 0; row < rows; row++ {
			cm |= bit(row, col)
		}
		c4.colMask[col] = cm
		c4.topBit[col] = bit(rows-1, col)
		c4.fullBoard |= cm
	}

	for row := 0; row < rows; row++ {
		for col := 0; col <= cols-4; col++ {
			c4.startH |= bit(row, col)
		}
	}
	for row := 0; row <= rows-4; row++ {
		for col := 0; col <= cols-4; col++ {
			c4.startDiagUR |= bit(row, col)
		}
		for col := 3; col < cols; col++ {
			c4.startDiagUL |= bit(row, col)
		}
	}
	return c4
}

// New returns the empty board, player one to move.
func (c4 *Connect4) New() State {
	return State{Turn: game.SideOne}
}

// Player returns the side to act.
func (c4 *Connect4) Player(s State) game.Side { return s.Turn }

// Moves returns the non-full columns, in ascending order.
func (c4 *Connect4) Moves(s State) []int {
	occ := s.Boards[0] | s.Boards[1]
	moves := make([]int, 0, c4.Cols)
	for col := 0; col < c4.Cols; col++ {
		if occ&c4.topBit[col] == 0 {
			moves = append(moves, col)
		}
	}
	return moves
}

// Outcomes is deterministic: dropping into a column has exactly one result.
func (c4 *Connect4) Outcomes(State, int) []game.WeightedOutcome[game.Unit] {
	return []game.WeightedOutcome[game.Unit]{{Outcome: game.Unit{}, Probability: 1}}
}

// Apply drops the mover's piece into column m under gravity.
func (c4 *Connect4) Apply(s State, m int, _ game.Unit) (State, game.Status) {
	mover := int(s.Turn)
	occ := s.Boards[0] | s.Boards[1]
	row := bits.OnesCount64(c4.colMask[m] & occ)
	next := s
	next.Boards[mover] |= 1 << uint(row*c4.Cols+m)
	next.Turn = s.Turn.Other()

	if c4.hasFourInARow(next.Boards[mover]) {
		return next, game.Finished
	}
	if next.Boards[0]|next.Boards[1] == c4.fullBoard {
		return next, game.Finished
	}
	return next, game.Continue
}

// WinState classifies a terminal state: the player who made the last move
// is s.Turn.Other(), per the game contract's convention.
func (c4 *Connect4) WinState(s State) (game.Result, bool) {
	mover := int(s.Turn.Other())
	if c4.hasFourInARow(s.Boards[mover]) {
		return game.Win, true
	}
	if s.Boards[0]|s.Boards[1] == c4.fullBoard {
		return game.Tie, true
	}
	return 0, false
}

// hasFourInARow is the branch-free shift-and-AND win check: for each of the
// four directions, restrict to valid run-start cells, then require the
// three subsequent cells (offset by the direction's stride) also be set.
func (c4 *Connect4) hasFourInARow(b uint64) bool {
	cols := uint(c4.Cols)

	vertical := b & (b >> cols) & (b >> (2 * cols)) & (b >> (3 * cols))
	if vertical != 0 {
		return true
	}

	horiz := (b & c4.startH) & (b >> 1) & (b >> 2) & (b >> 3)
	if horiz != 0 {
		return true
	}

	diagUR := (b & c4.startDiagUR) & (b >> (cols + 1)) & (b >> (2 * (cols + 1))) & (b >> (3 * (cols + 1)))
	if diagUR != 0 {
		return true
	}

	diagUL := (b & c4.startDiagUL) & (b >> (cols - 1)) & (b >> (2 * (cols - 1))) & (b >> (3 * (cols - 1)))
	return diagUL != 0
}
