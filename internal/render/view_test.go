package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spinapp/spin/internal/core"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Folder: "X",
		Tracks: []core.Track{
			core.NewTrack("/music/X/a.mp3"),
			core.NewTrack("/music/X/b.mp3"),
			core.NewTrack("/music/X/c.mp3"),
		},
		Index: 1,
	}
}

func newTestView(buf *bytes.Buffer) *View {
	return NewView(NewScreen(buf), 80, 50)
}

func TestFullRedraw(t *testing.T) {
	var buf bytes.Buffer
	v := newTestView(&buf)

	v.FullRedraw(testSnapshot(), core.UnknownTrackInfo())
	out := ansi.Strip(buf.String())

	for _, want := range []string{"NOW PLAYING", "CONTROLS", "X/", "a.mp3", "b.mp3", "c.mp3"} {
		if !strings.Contains(out, want) {
			t.Errorf("full redraw missing %q", want)
		}
	}

	if !strings.Contains(out, "▶ b.mp3") {
		t.Error("current track not marked")
	}
	if strings.Contains(out, "▶ a.mp3") || strings.Contains(out, "▶ c.mp3") {
		t.Error("marker on a non-current track")
	}
}

func TestUpdateStatusLineLeavesListRegionAlone(t *testing.T) {
	var buf bytes.Buffer
	v := newTestView(&buf)

	v.FullRedraw(testSnapshot(), core.UnknownTrackInfo())
	buf.Reset()

	v.UpdateStatusLine(&core.Status{Percent: 45, Position: 90, Duration: 200})
	out := ansi.Strip(buf.String())

	for _, name := range []string{"a.mp3", "b.mp3", "c.mp3", "NOW PLAYING"} {
		if strings.Contains(out, name) {
			t.Errorf("status update re-emitted %q", name)
		}
	}

	raw := buf.String()
	if !strings.Contains(raw, "\x1b[s") || !strings.Contains(raw, "\x1b[u") {
		t.Error("status update does not save/restore the cursor")
	}
}

func TestStatusLineBarAndClock(t *testing.T) {
	var buf bytes.Buffer
	v := newTestView(&buf)
	v.FullRedraw(testSnapshot(), core.UnknownTrackInfo())
	buf.Reset()

	v.UpdateStatusLine(&core.Status{Percent: 45, Position: 90, Duration: 200})
	out := ansi.Strip(buf.String())

	if !strings.Contains(out, "01:30 / 03:20") {
		t.Errorf("status line %q missing elapsed/total clock", out)
	}
	if !strings.Contains(out, "45%") {
		t.Errorf("status line %q missing percent", out)
	}

	filled := strings.Count(out, "█")
	if filled != 22 { // 50 cells * 45% rounds down
		t.Errorf("bar has %d filled cells, want 22", filled)
	}
	if empty := strings.Count(out, "░"); filled+empty != 50 {
		t.Errorf("bar has %d cells, want 50", filled+empty)
	}
}

func TestStatusLineLoading(t *testing.T) {
	var buf bytes.Buffer
	v := newTestView(&buf)
	v.FullRedraw(testSnapshot(), core.UnknownTrackInfo())
	buf.Reset()

	v.UpdateStatusLine(nil)
	if !strings.Contains(ansi.Strip(buf.String()), "Loading...") {
		t.Error("nil status not rendered as loading")
	}

	buf.Reset()
	v.UpdateStatusLine(&core.Status{Percent: 0})
	if !strings.Contains(ansi.Strip(buf.String()), "Loading...") {
		t.Error("zero-progress status not rendered as loading")
	}
}

func TestFlashWritesAndErases(t *testing.T) {
	var buf bytes.Buffer
	v := newTestView(&buf)
	v.FullRedraw(testSnapshot(), core.UnknownTrackInfo())
	buf.Reset()

	v.Flash("Liked!", FlashLike, 0)
	out := buf.String()

	if !strings.Contains(ansi.Strip(out), "Liked!") {
		t.Error("flash message not written")
	}
	// The message must be erased afterwards: the last clear-line comes
	// after the message text.
	if strings.LastIndex(out, "\x1b[K") < strings.Index(out, "Liked!") {
		t.Error("flash message not erased")
	}
}

func TestTruncateLongNames(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(NewScreen(&buf), 20, 50)

	snap := Snapshot{
		Folder: "X",
		Tracks: []core.Track{core.NewTrack("/music/X/a-very-long-track-name-indeed.mp3")},
		Index:  0,
	}
	v.FullRedraw(snap, core.UnknownTrackInfo())

	if !strings.Contains(ansi.Strip(buf.String()), "…") {
		t.Error("long track name not truncated")
	}
}
