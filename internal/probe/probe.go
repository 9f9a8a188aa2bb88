package probe

import (
	"encoding/json"
	"os"
	"os/exec"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spinapp/spin/internal/core"
)

// Prober extracts technical stream details from audio files using an
// external ffprobe binary. Probing is informational only: every failure
// degrades to "-" placeholders instead of an error.
type Prober struct {
	command string
}

// New creates a Prober using the given command, normally "ffprobe".
func New(command string) *Prober {
	return &Prober{command: command}
}

type streamInfo struct {
	SampleRate       string `json:"sample_rate"`
	BitRate          string `json:"bit_rate"`
	BitsPerRawSample string `json:"bits_per_raw_sample"`
}

type probeOutput struct {
	Streams []streamInfo `json:"streams"`
}

// Inspect probes one file and returns display-ready info.
func (p *Prober) Inspect(path string) core.TrackInfo {
	info := core.UnknownTrackInfo()

	stat, err := os.Stat(path)
	if err != nil {
		return info
	}
	info.Size = humanize.Bytes(uint64(stat.Size()))

	out, err := exec.Command(p.command,
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=sample_rate,bit_rate,bits_per_raw_sample",
		"-of", "json",
		path,
	).Output()
	if err != nil {
		return info
	}

	var decoded probeOutput
	if err := json.Unmarshal(out, &decoded); err != nil || len(decoded.Streams) == 0 {
		return info
	}

	return formatStream(info, decoded.Streams[0])
}

// FileSize returns a humanized size for a file, or "-".
func FileSize(path string) string {
	stat, err := os.Stat(path)
	if err != nil {
		return "-"
	}
	return humanize.Bytes(uint64(stat.Size()))
}

func formatStream(info core.TrackInfo, s streamInfo) core.TrackInfo {
	if hz, err := strconv.Atoi(s.SampleRate); err == nil && hz > 0 {
		info.SampleRate = strconv.Itoa(hz/1000) + " kHz"
	}
	if bps, err := strconv.Atoi(s.BitRate); err == nil && bps > 0 {
		info.BitRate = strconv.Itoa(bps/1000) + " kbps"
	}
	if bits, err := strconv.Atoi(s.BitsPerRawSample); err == nil && bits > 0 {
		info.BitDepth = strconv.Itoa(bits) + "-bit"
	}
	return info
}
