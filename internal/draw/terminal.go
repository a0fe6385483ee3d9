package draw

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under a typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// ChunkWriter accumulates terminal output for one frame and writes it in
// chunks on Flush.
type ChunkWriter struct {
	buf  strings.Builder
	bufw *bufio.Writer
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{bufw: bufio.NewWriterSize(w, 8192)}
}

// Write implements io.Writer for use with Canvas.Render.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) (int, error) {
	return cw.buf.WriteString(s)
}

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		if err := cw.bufw.Flush(); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Layout is the area of the terminal the canvas occupies.
type Layout struct {
	Width, Height        int
	OffsetCol, OffsetRow int
}

// Fit computes the canvas area for a terminal. Windowed mode clamps it to
// maxCols×maxRows and centers it; fullscreen stretches it over the whole terminal.
func Fit(termWidth, termHeight, maxCols, maxRows int, fullscreen bool) Layout {
	l := Layout{Width: termWidth, Height: termHeight}
	if fullscreen {
		return l
	}
	if l.Width > maxCols {
		l.Width = maxCols
	}
	if l.Height > maxRows {
		l.Height = maxRows
	}
	l.OffsetCol = (termWidth - l.Width) / 2
	l.OffsetRow = (termHeight - l.Height) / 2
	return l
}

// Terminal renders frames as ANSI escape sequences.
type Terminal struct {
	out        *ChunkWriter
	canvas     *Canvas
	size       TermSizeFunc
	maxCols    int
	maxRows    int
	fullscreen bool
	layout     Layout
}

// NewTerminal creates a renderer that writes to w. size is queried every frame
// so resizes are picked up.
func NewTerminal(w io.Writer, size TermSizeFunc, maxCols, maxRows int, logicalWidth, logicalHeight float64) *Terminal {
	if size == nil {
		size = DefaultTermSizeFunc
	}
	return &Terminal{
		out:     NewChunkWriter(w),
		canvas:  NewScaledCanvas(maxCols, maxRows, logicalWidth, logicalHeight),
		size:    size,
		maxCols: maxCols,
		maxRows: maxRows,
	}
}

// Start hides the cursor and clears the screen.
func (t *Terminal) Start() error {
	HideCursor(t.out)
	ClearScreen(t.out)
	return t.out.Flush()
}

// Close clears the screen and restores the cursor.
func (t *Terminal) Close() error {
	ClearScreen(t.out)
	ShowCursor(t.out)
	return t.out.Flush()
}

// ToggleFullscreen switches between the centered, bordered view and one
// stretched over the whole terminal.
func (t *Terminal) ToggleFullscreen() {
	t.fullscreen = !t.fullscreen
}

// Fullscreen reports the current display mode.
func (t *Terminal) Fullscreen() bool {
	return t.fullscreen
}

// Present draws scene and flushes the frame.
func (t *Terminal) Present(scene []Drawable) error {
	termWidth, termHeight, err := t.size()
	if err != nil {
		return err
	}

	l := Fit(termWidth, termHeight, t.maxCols, t.maxRows, t.fullscreen)
	if l != t.layout {
		// Remove residual pixels outside the new area.
		ClearScreen(t.out)
		t.layout = l
	}
	t.canvas.Resize(l.Width, l.Height)
	t.canvas.SetOffset(l.OffsetCol, l.OffsetRow)

	t.canvas.Clear()
	for _, d := range scene {
		d.Draw(t.canvas)
	}

	if err := t.canvas.Render(t.out); err != nil {
		return err
	}
	if !t.fullscreen {
		if err := t.canvas.RenderBorder(t.out); err != nil {
			return err
		}
	}
	return t.out.Flush()
}
