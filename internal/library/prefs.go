package library

import (
	"fmt"
	"os"
)

// PreferenceLog is an append-only log of liked or disliked tracks,
// one "folder/track-name" line per event. The file is created on
// first write.
type PreferenceLog struct {
	path string
}

// NewPreferenceLog creates a log backed by the given file path.
func NewPreferenceLog(path string) *PreferenceLog {
	return &PreferenceLog{path: path}
}

// Path returns the log file path.
func (p *PreferenceLog) Path() string {
	return p.path
}

// Append records one track identity in the log.
func (p *PreferenceLog) Append(folder, trackName string) error {
	f, err := os.OpenFile(p.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open preference log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s/%s\n", folder, trackName); err != nil {
		return fmt.Errorf("append preference: %w", err)
	}
	return nil
}
