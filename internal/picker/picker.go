package picker

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	spinerrors "github.com/spinapp/spin/internal/errors"
)

// Picker runs an external fuzzy finder to choose one entry from a list.
// Cancellation (the tool exiting non-zero) is not an error; a missing
// tool is, and is checked once at startup.
type Picker struct {
	command string
	height  string
}

// New creates a Picker using the given command, normally "fzf".
func New(command, height string) *Picker {
	return &Picker{
		command: command,
		height:  height,
	}
}

// Check verifies the picker tool is installed.
func (p *Picker) Check() error {
	if _, err := exec.LookPath(p.command); err != nil {
		return fmt.Errorf("%w: %s", spinerrors.ErrPickerNotFound, p.command)
	}
	return nil
}

// Pick presents the items and returns the selection. ok is false when
// the user cancelled.
func (p *Picker) Pick(items []string, prompt string) (selection string, ok bool, err error) {
	cmd := exec.Command(p.command,
		"--prompt", prompt,
		"--height="+p.height,
		"--no-sort",
	)
	cmd.Stdin = strings.NewReader(strings.Join(items, "\n"))

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if _, exited := err.(*exec.ExitError); exited {
			return "", false, nil
		}
		return "", false, fmt.Errorf("run picker: %w", err)
	}

	selection = strings.TrimSpace(out.String())
	if selection == "" {
		return "", false, nil
	}
	return selection, true, nil
}
