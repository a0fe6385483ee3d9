package draw

import (
	"github.com/gdamore/tcell/v2"
)

// TcellScreen renders frames through a tcell screen.
type TcellScreen struct {
	screen     tcell.Screen
	canvas     *Canvas
	style      tcell.Style
	maxCols    int
	maxRows    int
	fullscreen bool
}

// NewTcellScreen wraps an initialized screen.
func NewTcellScreen(s tcell.Screen, maxCols, maxRows int, logicalWidth, logicalHeight float64) *TcellScreen {
	return &TcellScreen{
		screen:  s,
		canvas:  NewScaledCanvas(maxCols, maxRows, logicalWidth, logicalHeight),
		style:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		maxCols: maxCols,
		maxRows: maxRows,
	}
}

// ToggleFullscreen switches between the centered, bordered view and one
// stretched over the whole screen.
func (t *TcellScreen) ToggleFullscreen() {
	t.fullscreen = !t.fullscreen
}

// Present draws scene and shows the frame.
func (t *TcellScreen) Present(scene []Drawable) error {
	termWidth, termHeight := t.screen.Size()
	l := Fit(termWidth, termHeight, t.maxCols, t.maxRows, t.fullscreen)
	t.canvas.Resize(l.Width, l.Height)
	t.canvas.SetOffset(l.OffsetCol, l.OffsetRow)

	t.canvas.Clear()
	for _, d := range scene {
		d.Draw(t.canvas)
	}

	t.screen.Clear()
	for row := 0; row < t.canvas.TerminalHeight(); row++ {
		for col := 0; col < t.canvas.TerminalWidth(); col++ {
			if ch := t.canvas.Cell(col, row); ch != 0 {
				t.screen.SetContent(col+l.OffsetCol, row+l.OffsetRow, ch, nil, t.style)
			}
		}
	}
	// Label and border positions are 1-based; tcell is 0-based.
	t.canvas.EachLabel(func(col, row int, text string) {
		t.putString(col-1+l.OffsetCol, row-1+l.OffsetRow, text)
	})
	if !t.fullscreen {
		t.canvas.EachBorder(func(col, row int, s string) {
			t.putString(col-1, row-1, s)
		})
	}

	t.screen.Show()
	return nil
}

func (t *TcellScreen) putString(x, y int, s string) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, t.style)
		x++
	}
}
