// Package draw renders the scene into a terminal.
//
// Entities draw into a Canvas in logical coordinates. The canvas scales them
// to half-block pixels (two per terminal cell) and a renderer pushes the
// result to an ANSI stream or a tcell screen.
package draw

import (
	"fmt"
	"io"
	"strings"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Drawable is anything the renderer can put on screen.
type Drawable interface {
	Draw(c *Canvas)
}

// Align positions a label relative to its anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label is text anchored at a logical position.
type Label struct {
	X, Y  float64
	Text  string
	Align Align
}

// Sprite is a 1-bit image. Rows are strings where any non-space, non-dot
// character is a set pixel.
type Sprite struct {
	W, H int
	mask []bool
}

// NewSprite builds a sprite from text rows. Short rows are padded.
func NewSprite(rows ...string) *Sprite {
	s := &Sprite{H: len(rows)}
	for _, r := range rows {
		if n := len([]rune(r)); n > s.W {
			s.W = n
		}
	}
	s.mask = make([]bool, s.W*s.H)
	for y, r := range rows {
		for x, ch := range []rune(r) {
			s.mask[y*s.W+x] = ch != ' ' && ch != '.'
		}
	}
	return s
}

// At reports whether pixel (x, y) is set.
func (s *Sprite) At(x, y int) bool {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return false
	}
	return s.mask[y*s.W+x]
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// labelStart returns the first column for a label of width n anchored at col.
func labelStart(col, n int, a Align) int {
	switch a {
	case AlignCenter:
		return col - n/2
	case AlignRight:
		return col - n + 1
	default:
		return col
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}

// border draws a box around a w×h area whose top-left cell is (col, row),
// both 1-based. Only edges with room on the terminal are drawn.
func border(col, row, w, h int, hasH, hasV bool, put func(col, row int, s string)) {
	left, right := col-1, col+w
	top, bottom := row-1, row+h

	if hasV {
		line := strings.Repeat("─", w)
		if hasH {
			put(left, top, "┌"+line+"┐")
			put(left, bottom, "└"+line+"┘")
		} else {
			put(col, top, line)
			put(col, bottom, line)
		}
	}
	if hasH {
		for r := row; r < row+h; r++ {
			put(left, r, "│")
			put(right, r, "│")
		}
	}
}
