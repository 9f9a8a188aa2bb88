package mpv

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// Supervisor owns the lifecycle of the external player process. At most
// one managed process exists at a time; the IPC socket is valid only
// while that process is alive.
type Supervisor struct {
	command string
	socket  string
	settle  time.Duration
	grace   time.Duration
	log     *logrus.Logger

	mu   sync.Mutex
	cmd  *exec.Cmd
	done chan struct{}
}

// NewSupervisor creates a supervisor for the given player command and
// socket path.
func NewSupervisor(command, socket string, settle, grace time.Duration, log *logrus.Logger) *Supervisor {
	return &Supervisor{
		command: command,
		socket:  socket,
		settle:  settle,
		grace:   grace,
		log:     log,
	}
}

// Socket returns the IPC socket path the player is bound to.
func (s *Supervisor) Socket() string {
	return s.socket
}

// Start plays a track, replacing any currently managed process. The stale
// socket is removed before spawning so the client never connects to a
// dead endpoint, and Start waits up to the settle interval for the fresh
// socket to appear.
func (s *Supervisor) Start(track string) error {
	s.Stop()

	args := []string{
		"--no-video",
		"--quiet",
		"--input-terminal=no",
		"--input-ipc-server=" + s.socket,
	}
	if script := findMPRISScript(); script != "" {
		args = append(args, "--script="+script)
	}
	args = append(args, track)

	cmd := exec.Command(s.command, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start player %s: %w", s.command, err)
	}

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	s.mu.Lock()
	s.cmd = cmd
	s.done = done
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"pid":   cmd.Process.Pid,
		"track": filepath.Base(track),
	}).Debug("player started")

	s.waitForSocket()
	return nil
}

// Alive reports whether the managed process is still running.
func (s *Supervisor) Alive() bool {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Stop terminates the managed process, escalating from SIGTERM to
// SIGKILL after the grace period, and removes the socket. Safe to call
// when nothing is running.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	cmd, done := s.cmd, s.done
	s.cmd, s.done = nil, nil
	s.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		alive := true
		select {
		case <-done:
			alive = false
		default:
		}

		if alive {
			_ = cmd.Process.Signal(syscall.SIGTERM)
			select {
			case <-done:
			case <-time.After(s.grace):
				s.log.WithField("pid", cmd.Process.Pid).Debug("player did not exit, killing")
				_ = cmd.Process.Kill()
				<-done
			}
		}
		s.log.WithField("pid", cmd.Process.Pid).Debug("player stopped")
	}

	_ = os.Remove(s.socket)
}

// waitForSocket polls until the player has created its IPC socket or the
// settle interval elapses.
func (s *Supervisor) waitForSocket() {
	deadline := time.Now().Add(s.settle)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(s.socket); err == nil {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// findMPRISScript returns the path of an installed mpris.so mpv script,
// or "" if none is present.
func findMPRISScript() string {
	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config/mpv/scripts/mpris.so"))
	}
	candidates = append(candidates,
		"/usr/share/mpv/scripts/mpris.so",
		"/usr/local/share/mpv/scripts/mpris.so",
	)

	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p
		}
	}
	return ""
}
