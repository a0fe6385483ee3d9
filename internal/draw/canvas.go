package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomz197/spaceship/internal/entity"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Entities draw in logical coordinates; the canvas scales them to terminal pixels.
type Canvas struct {
	termWidth      int    // Terminal columns covered by the canvas
	termHeight     int    // Terminal rows covered by the canvas
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64 // in sub-pixels
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets used to center the canvas.
	offsetCol int
	offsetRow int

	labels    []Label
	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// TerminalWidth returns the number of terminal columns the canvas covers.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the number of terminal rows the canvas covers.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels and labels.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.labels = c.labels[:0]
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// SetFloat sets a pixel using logical coordinates.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Floor(x*c.scaleX)), int(math.Floor(y*c.scaleY)))
}

// FillRect fills r. Any non-empty rect covers at least one pixel.
func (c *Canvas) FillRect(r entity.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := int(math.Floor(r.X * c.scaleX))
	y0 := int(math.Floor(r.Y * c.scaleY))
	x1 := max(int(math.Ceil(r.Right()*c.scaleX)), x0+1)
	y1 := max(int(math.Ceil(r.Bottom()*c.scaleY)), y0+1)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.setPixel(x, y)
		}
	}
}

// DrawSprite stretches s over r.
func (c *Canvas) DrawSprite(r entity.Rect, s *Sprite) {
	if s == nil || s.W == 0 || s.H == 0 {
		return
	}
	cw := r.W / float64(s.W)
	ch := r.H / float64(s.H)
	for sy := 0; sy < s.H; sy++ {
		for sx := 0; sx < s.W; sx++ {
			if s.At(sx, sy) {
				c.FillRect(entity.Rect{X: r.X + float64(sx)*cw, Y: r.Y + float64(sy)*ch, W: cw, H: ch})
			}
		}
	}
}

// AddLabel queues text to be written over the pixels.
func (c *Canvas) AddLabel(l Label) {
	c.labels = append(c.labels, l)
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal position
// relative to the canvas.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// Cell returns the half-block rune at the 0-based canvas cell, or 0 if empty.
func (c *Canvas) Cell(col, row int) rune {
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return 0
	}
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return 0
	}
}

// EachLabel calls fn with the clipped 1-based canvas position of every label.
func (c *Canvas) EachLabel(fn func(col, row int, text string)) {
	for _, l := range c.labels {
		col, row := c.LogicalToTerminal(l.X, l.Y)
		row = min(max(row, 1), c.termHeight)
		col = labelStart(col, runeLen(l.Text), l.Align)
		text := []rune(l.Text)
		if col < 1 {
			text = text[min(1-col, len(text)):]
			col = 1
		}
		if over := col + len(text) - 1 - c.termWidth; over > 0 {
			text = text[:max(len(text)-over, 0)]
		}
		if len(text) > 0 {
			fn(col, row, string(text))
		}
	}
}

// Render outputs the canvas to w using half-block characters, then the labels.
// Empty cells are cleared so no previous-frame pixels survive.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 4)

	for row := 0; row < c.termHeight; row++ {
		c.moveCursor(1+c.offsetCol, row+1+c.offsetRow)
		for col := 0; col < c.termWidth; col++ {
			if ch := c.Cell(col, row); ch != 0 {
				c.renderBuf.WriteRune(ch)
			} else {
				c.renderBuf.WriteByte(' ')
			}
		}
	}

	c.EachLabel(func(col, row int, text string) {
		c.moveCursor(col+c.offsetCol, row+c.offsetRow)
		c.renderBuf.WriteString(text)
	})

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// RenderBorder draws a box around the canvas when the terminal has room for it.
func (c *Canvas) RenderBorder(w io.Writer) error {
	var buf strings.Builder
	c.EachBorder(func(col, row int, s string) {
		buf.WriteString("\033[")
		buf.WriteString(strconv.Itoa(row))
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(col))
		buf.WriteByte('H')
		buf.WriteString(s)
	})
	_, err := io.WriteString(w, buf.String())
	return err
}

// EachBorder calls put with absolute 1-based terminal positions of the border segments.
func (c *Canvas) EachBorder(put func(col, row int, s string)) {
	border(c.offsetCol+1, c.offsetRow+1, c.termWidth, c.termHeight,
		c.offsetCol >= 1, c.offsetRow >= 1, put)
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}
