package core

import "fmt"

// Status is a transient snapshot of playback progress, rebuilt on every
// poll of the player's control channel. A nil *Status means the channel
// was not reachable (player starting up or restarting).
type Status struct {
	Percent  float64 `json:"percent"`
	Position float64 `json:"position"`
	Duration float64 `json:"duration"`
}

// HasProgress reports whether the status carries a usable position.
func (s *Status) HasProgress() bool {
	return s != nil && s.Percent > 0
}

// Clock formats a position in seconds as MM:SS.
func Clock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
