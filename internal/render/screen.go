package render

import (
	"fmt"
	"io"
)

// Screen wraps a writer with the terminal control sequences the render
// engine needs. No other package writes escape sequences; tests inject a
// plain buffer as the sink.
type Screen struct {
	w io.Writer
}

// NewScreen creates a Screen writing to the given sink.
func NewScreen(w io.Writer) *Screen {
	return &Screen{w: w}
}

// Print writes text as-is.
func (s *Screen) Print(text string) {
	fmt.Fprint(s.w, text)
}

// Line writes text followed by a carriage-return/newline pair, which is
// required because the terminal is in raw mode during a session.
func (s *Screen) Line(text string) {
	fmt.Fprint(s.w, text, "\r\n")
}

// Clear erases the display and homes the cursor.
func (s *Screen) Clear() {
	fmt.Fprint(s.w, "\x1b[2J\x1b[H")
}

// MoveTo positions the cursor at a 1-based row and column.
func (s *Screen) MoveTo(row, col int) {
	fmt.Fprintf(s.w, "\x1b[%d;%dH", row, col)
}

// ClearLine erases from the cursor to the end of the line.
func (s *Screen) ClearLine() {
	fmt.Fprint(s.w, "\x1b[K")
}

// SaveCursor remembers the current cursor position.
func (s *Screen) SaveCursor() {
	fmt.Fprint(s.w, "\x1b[s")
}

// RestoreCursor returns to the last saved position.
func (s *Screen) RestoreCursor() {
	fmt.Fprint(s.w, "\x1b[u")
}

// HideCursor makes the cursor invisible.
func (s *Screen) HideCursor() {
	fmt.Fprint(s.w, "\x1b[?25l")
}

// ShowCursor makes the cursor visible again.
func (s *Screen) ShowCursor() {
	fmt.Fprint(s.w, "\x1b[?25h")
}
