package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spinapp/spin/internal/core"
)

const (
	headerWidth = 53
	headerLines = 5
	legendLines = 5
)

// Snapshot is the slice of session state the view needs for a redraw.
type Snapshot struct {
	Folder string
	Tracks []core.Track
	Index  int
}

// View draws the session interface. A full redraw repaints everything;
// the status line and transient feedback are updated in place so the
// track list never flickers during normal polling.
type View struct {
	screen   *Screen
	width    int
	barWidth int
	rows     int
}

// NewView creates a view drawing to the given screen. width bounds track
// name truncation; barWidth is the progress bar cell count.
func NewView(screen *Screen, width, barWidth int) *View {
	return &View{
		screen:   screen,
		width:    width,
		barWidth: barWidth,
	}
}

// FullRedraw clears the display and repaints the header, track list and
// control legend, leaving the cursor on the status row.
func (v *View) FullRedraw(snap Snapshot, info core.TrackInfo) {
	v.rows = len(snap.Tracks)
	s := v.screen

	current := ""
	if snap.Index >= 0 && snap.Index < len(snap.Tracks) {
		current = snap.Tracks[snap.Index].Name
	}

	s.Clear()
	s.Line(Border.Render(rule("NOW PLAYING")))
	s.Line("  " + Folder.Render(snap.Folder+"/") + TrackTitle.Render(v.truncate(current)))
	s.Line(Border.Render(rule("")))
	s.Line(fmt.Sprintf("  %s %-10s %s %-10s %s %-10s %s %s",
		Label.Render("Size:"), info.Size,
		Label.Render("Sample Rate:"), info.SampleRate,
		Label.Render("Bitrate:"), info.BitRate,
		Label.Render("Bit Depth:"), info.BitDepth))
	s.Line(Border.Render(rule("")))

	for i, track := range snap.Tracks {
		if i == snap.Index {
			s.Line(Current.Render(" ▶ " + v.truncate(track.Name)))
		} else {
			s.Line("   " + v.truncate(track.Name))
		}
	}

	s.Line(Border.Render(rule("CONTROLS")))
	s.Line("  " + legend("l", "like") + "    " + legend("d", "dislike") + "    " + legend("n", "next"))
	s.Line("  " + legend("b", "skip -5s") + "    " + legend("f", "skip +5s") + "    " + legend("p/SPACE", "play/pause"))
	s.Line("  " + legend("s", "choose track") + "    " + legend("c", "change folder") + "    " + legend("q", "quit"))
	s.Line(Border.Render(rule("")))

	s.MoveTo(v.statusRow(), 1)
}

// UpdateStatusLine repaints only the status row, restoring the cursor so
// the rest of the display is untouched.
func (v *View) UpdateStatusLine(status *core.Status) {
	s := v.screen
	s.SaveCursor()
	s.MoveTo(v.statusRow(), 1)
	s.ClearLine()
	if status.HasProgress() {
		s.Print(v.statusLine(status))
	} else {
		s.Print(Loading.Render("Loading..."))
	}
	s.RestoreCursor()
}

// Flash shows a transient message on the feedback row, blocks for the
// given duration, then erases it.
func (v *View) Flash(message string, style lipgloss.Style, duration time.Duration) {
	s := v.screen
	s.SaveCursor()
	s.MoveTo(v.feedbackRow(), 1)
	s.ClearLine()
	s.Print(style.Render(message))

	time.Sleep(duration)

	s.MoveTo(v.feedbackRow(), 1)
	s.ClearLine()
	s.RestoreCursor()
}

func (v *View) statusRow() int {
	return headerLines + v.rows + legendLines + 2
}

func (v *View) feedbackRow() int {
	return v.statusRow() - 1
}

func (v *View) statusLine(status *core.Status) string {
	filled := int(float64(v.barWidth) * status.Percent / 100)
	if filled > v.barWidth {
		filled = v.barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := "[" +
		BarFill.Render(strings.Repeat("█", filled)) +
		BarEmpty.Render(strings.Repeat("░", v.barWidth-filled)) +
		"]"

	clock := core.Clock(status.Position) + " / " + core.Clock(status.Duration)
	return fmt.Sprintf("%s %d%% %s", bar, int(status.Percent), Clock.Render(clock))
}

func (v *View) truncate(text string) string {
	if v.width <= 6 {
		return text
	}
	return runewidth.Truncate(text, v.width-6, "…")
}

// rule builds a header-wide horizontal line, optionally titled.
func rule(title string) string {
	if title == "" {
		return strings.Repeat("═", headerWidth)
	}
	side := (headerWidth - len(title) - 2) / 2
	if side < 1 {
		side = 1
	}
	line := strings.Repeat("═", side) + " " + title + " " + strings.Repeat("═", side)
	for len([]rune(line)) < headerWidth {
		line += "═"
	}
	return line
}

func legend(key, action string) string {
	return "[" + Key.Render(key) + "] " + action
}
