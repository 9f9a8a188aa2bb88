package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrPlayerNotFound = errors.New("player command not found")
	ErrPickerNotFound = errors.New("picker command not found")
	ErrProberNotFound = errors.New("prober command not found")
	ErrNoFolders      = errors.New("no music folders found")
	ErrNoTracks       = errors.New("no tracks found")
	ErrNotATerminal   = errors.New("not an interactive terminal")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// SpinError wraps an error with a user-friendly suggestion.
type SpinError struct {
	Err        error
	Suggestion string
}

func (e *SpinError) Error() string {
	return e.Err.Error()
}

func (e *SpinError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &SpinError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var spinErr *SpinError
	if errors.As(err, &spinErr) && spinErr.Suggestion != "" {
		return spinErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrPlayerNotFound) || strings.Contains(errStr, "mpv") {
		return "Install mpv (e.g. 'apt install mpv' or 'brew install mpv'), or set player.command in ~/.spinrc"
	}

	if errors.Is(err, ErrPickerNotFound) || strings.Contains(errStr, "fzf") {
		return "Install fzf (e.g. 'apt install fzf' or 'brew install fzf'), or set picker.command in ~/.spinrc"
	}

	if errors.Is(err, ErrProberNotFound) || strings.Contains(errStr, "ffprobe") {
		return "Install ffmpeg to get ffprobe (e.g. 'apt install ffmpeg' or 'brew install ffmpeg')"
	}

	if errors.Is(err, ErrNoFolders) {
		return "Point library.root at a directory containing music folders, or pass a folder to 'spin'"
	}

	if errors.Is(err, ErrNoTracks) {
		return "Check that the folder contains audio files, or extend library.extensions in ~/.spinrc"
	}

	if errors.Is(err, ErrNotATerminal) {
		return "Run spin from an interactive terminal"
	}

	if errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Check ~/.spinrc for mistakes; 'spin --config <file>' selects an alternate file"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
