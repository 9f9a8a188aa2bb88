package probe

import (
	"path/filepath"
	"testing"

	"github.com/spinapp/spin/internal/core"
)

func TestFormatStream(t *testing.T) {
	info := formatStream(core.UnknownTrackInfo(), streamInfo{
		SampleRate:       "44100",
		BitRate:          "320000",
		BitsPerRawSample: "16",
	})

	if info.SampleRate != "44 kHz" {
		t.Errorf("SampleRate = %q, want %q", info.SampleRate, "44 kHz")
	}
	if info.BitRate != "320 kbps" {
		t.Errorf("BitRate = %q, want %q", info.BitRate, "320 kbps")
	}
	if info.BitDepth != "16-bit" {
		t.Errorf("BitDepth = %q, want %q", info.BitDepth, "16-bit")
	}
}

func TestFormatStreamGarbage(t *testing.T) {
	info := formatStream(core.UnknownTrackInfo(), streamInfo{
		SampleRate:       "N/A",
		BitRate:          "",
		BitsPerRawSample: "0",
	})

	if info.SampleRate != "-" || info.BitRate != "-" || info.BitDepth != "-" {
		t.Errorf("garbage stream info not degraded to dashes: %+v", info)
	}
}

func TestInspectMissingFile(t *testing.T) {
	p := New("ffprobe")
	info := p.Inspect(filepath.Join(t.TempDir(), "missing.mp3"))

	if info != core.UnknownTrackInfo() {
		t.Errorf("Inspect() on missing file = %+v, want all dashes", info)
	}
}

func TestFileSizeMissing(t *testing.T) {
	if got := FileSize(filepath.Join(t.TempDir(), "nope")); got != "-" {
		t.Errorf("FileSize() = %q, want -", got)
	}
}
