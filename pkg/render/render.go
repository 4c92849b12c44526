// Package render turns a bitboard game state into a PNG snapshot, for
// debugging searches visually.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gridmcts/engine/pkg/game/connect4"
	"github.com/gridmcts/engine/pkg/game/tictactoe"
)

const (
	cellPx = 48
	margin = 8
)

var (
	bg    = color.RGBA{240, 240, 240, 255}
	gridC = color.RGBA{60, 60, 60, 255}
	p1C   = color.RGBA{200, 40, 40, 255}
	p2C   = color.RGBA{40, 60, 200, 255}
)

// Grid is a rows x cols board snapshot: each cell is 0 (empty), 1 (side
// one), or 2 (side two).
type Grid struct {
	Rows, Cols int
	Cells      []int
}

func (g Grid) at(r, c int) int { return g.Cells[r*g.Cols+c] }

// FromConnect4 captures a Connect-Four state into a Grid using k's own
// board dimensions, so it renders correctly for both the 7x6 and 8x8
// kernels.
func FromConnect4(k *connect4.Connect4, s connect4.State) Grid {
	g := Grid{Rows: k.Rows, Cols: k.Cols, Cells: make([]int, k.Rows*k.Cols)}
	for r := 0; r < k.Rows; r++ {
		for c := 0; c < k.Cols; c++ {
			bit := uint64(1) << uint(r*k.Cols+c)
			switch {
			case s.Boards[0]&bit != 0:
				g.Cells[r*k.Cols+c] = 1
			case s.Boards[1]&bit != 0:
				g.Cells[r*k.Cols+c] = 2
			}
		}
	}
	return g
}

// FromTicTacToe captures a Tic-Tac-Toe state into a 3x3 Grid.
func FromTicTacToe(s tictactoe.State) Grid {
	g := Grid{Rows: 3, Cols: 3, Cells: make([]int, 9)}
	for i := 0; i < 9; i++ {
		bit := uint16(1) << uint(i)
		switch {
		case s.Boards[0]&bit != 0:
			g.Cells[i] = 1
		case s.Boards[1]&bit != 0:
			g.Cells[i] = 2
		}
	}
	return g
}

// PNG renders g and a caption string beneath it, returning encoded PNG
// bytes.
func PNG(g Grid, caption string) ([]byte, error) {
	w := g.Cols*cellPx + 2*margin
	h := g.Rows*cellPx + 2*margin + 20

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			x0, y0 := margin+c*cellPx, margin+r*cellPx
			drawCellBorder(img, x0, y0, cellPx, gridC)
			switch g.at(r, c) {
			case 1:
				drawDisc(img, x0+cellPx/2, y0+cellPx/2, cellPx/2-4, p1C)
			case 2:
				drawDisc(img, x0+cellPx/2, y0+cellPx/2, cellPx/2-4, p2C)
			}
		}
	}

	if err := drawLabel(img, caption, 4, h-6); err != nil {
		return nil, errors.Wrap(err, "render: draw caption")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "render: encode PNG")
	}
	return buf.Bytes(), nil
}

func drawCellBorder(img *image.RGBA, x0, y0, size int, c color.Color) {
	for x := x0; x < x0+size; x++ {
		img.Set(x, y0, c)
		img.Set(x, y0+size-1, c)
	}
	for y := y0; y < y0+size; y++ {
		img.Set(x0, y, c)
		img.Set(x0+size-1, y, c)
	}
}

func drawDisc(img *image.RGBA, cx, cy, radius int, c color.Color) {
	rr := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rr {
				img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

func drawLabel(img *image.RGBA, text string, x, y int) error {
	if text == "" {
		return nil
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(12)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(gridC))

	pt := fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	_, err = c.DrawString(text, pt)
	return err
}

// Caption formats a standard debug label for a board. For a live position it
// names turn as the side to act; for a terminal one it names turn as the
// side that made the last move.
func Caption(turn fmt.Stringer, terminal bool) string {
	if terminal {
		return fmt.Sprintf("terminal, last to act was %s", turn)
	}
	return fmt.Sprintf("%s to act", turn)
}
