package term

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// Mode holds the saved terminal state so it can be restored on any exit
// path. Restore is safe to call more than once.
type Mode struct {
	fd    int
	state *term.State

	once sync.Once
}

// MakeRaw puts the terminal into raw mode, delivering single keystrokes
// without line buffering or echo.
func MakeRaw(fd int) (*Mode, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &Mode{fd: fd, state: state}, nil
}

// Restore returns the terminal to its prior mode.
func (m *Mode) Restore() {
	m.once.Do(func() {
		_ = term.Restore(m.fd, m.state)
	})
}

// IsTerminal reports whether the file descriptor is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width, or the fallback when it cannot be
// determined.
func Width(f *os.File, fallback int) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
