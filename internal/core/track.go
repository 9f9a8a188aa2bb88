package core

import "path/filepath"

// Track is a playable audio file inside the current folder.
type Track struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// NewTrack creates a Track from a file path.
func NewTrack(path string) Track {
	return Track{
		Path: path,
		Name: filepath.Base(path),
	}
}
