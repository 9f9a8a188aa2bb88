package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spinapp/spin/internal/core"
	spinerrors "github.com/spinapp/spin/internal/errors"
	"github.com/spinapp/spin/internal/library"
	"github.com/spinapp/spin/internal/render"
)

// State is the lifecycle phase of a session.
type State int

const (
	StateIdle State = iota
	StateSelecting
	StatePlaying
	StateTerminating
)

// Feedback classifies a transient flash message.
type Feedback int

const (
	FeedbackPositive Feedback = iota
	FeedbackNegative
)

// Player supervises the external playback process.
type Player interface {
	Start(track string) error
	Alive() bool
	Stop()
}

// Channel is the bounded control channel to the running player. All
// calls are soft: ok=false means the player was not reachable.
type Channel interface {
	Status() (*core.Status, bool)
	Cycle(prop string) bool
	SeekRelative(seconds float64) bool
}

// Picker chooses one entry from a list of display strings.
type Picker interface {
	Pick(items []string, prompt string) (string, bool, error)
}

// Keys yields buffered keystrokes without blocking.
type Keys interface {
	Poll() (byte, bool)
}

// Display renders the session interface.
type Display interface {
	FullRedraw(snap render.Snapshot, info core.TrackInfo)
	UpdateStatusLine(status *core.Status)
	Flash(message string, kind Feedback, duration time.Duration)
}

// Prober supplies the technical info line for the header.
type Prober interface {
	Inspect(path string) core.TrackInfo
}

// Deps are the session's collaborators. Everything that touches a
// process, socket or terminal sits behind an interface so tests can
// substitute fakes.
type Deps struct {
	Library  *library.Library
	Player   Player
	Channel  Channel
	Picker   Picker
	Keys     Keys
	Display  Display
	Prober   Prober
	Likes    *library.PreferenceLog
	Dislikes *library.PreferenceLog
	Log      *logrus.Logger
}

// Options tune the session loop.
type Options struct {
	DefaultFolder  string
	Tick           time.Duration
	StatusInterval time.Duration
	FlashDuration  time.Duration

	// RandomIndex picks the starting track; replaced in tests.
	RandomIndex func(n int) int
}

// Session owns the playback state: the current folder, the ordered
// track list, the active index and the pending-redraw flag. It is
// mutated only from the single loop goroutine.
type Session struct {
	deps Deps
	opts Options

	state       State
	folder      string
	tracks      []core.Track
	index       int
	needsRedraw bool
	lastPoll    time.Time
}

// New creates a session. Zero option values get the standard loop
// timings.
func New(deps Deps, opts Options) *Session {
	if opts.Tick == 0 {
		opts.Tick = 100 * time.Millisecond
	}
	if opts.StatusInterval == 0 {
		opts.StatusInterval = time.Second
	}
	if opts.FlashDuration == 0 {
		opts.FlashDuration = time.Second
	}
	if opts.RandomIndex == nil {
		opts.RandomIndex = rand.Intn
	}
	if deps.Log == nil {
		deps.Log = logrus.New()
	}
	return &Session{
		deps:  deps,
		opts:  opts,
		state: StateIdle,
	}
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Run selects a folder, starts playback and drives the cooperative loop
// until quit or context cancellation. Cleanup runs on every exit path.
func (s *Session) Run(ctx context.Context) error {
	if err := s.load(); err != nil {
		s.terminate()
		return err
	}

	ticker := time.NewTicker(s.opts.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.terminate()
			return nil
		case <-ticker.C:
			quit, err := s.tick()
			if err != nil {
				s.terminate()
				return err
			}
			if quit {
				s.terminate()
				return nil
			}
		}
	}
}

// load runs the initial folder selection and starts the first track at
// a pseudo-random index.
func (s *Session) load() error {
	folders, err := s.deps.Library.Folders()
	if err != nil {
		return err
	}
	if len(folders) == 0 {
		return fmt.Errorf("%w in %s", spinerrors.ErrNoFolders, s.deps.Library.Root())
	}

	s.state = StateSelecting

	folder := ""
	if s.opts.DefaultFolder != "" && contains(folders, s.opts.DefaultFolder) {
		folder = s.opts.DefaultFolder
	} else {
		selected, ok, err := s.deps.Picker.Pick(folders, "Select folder: ")
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("no folder selected")
		}
		folder = selected
	}

	if err := s.setFolder(folder); err != nil {
		return err
	}

	s.index = s.opts.RandomIndex(len(s.tracks))
	s.state = StatePlaying
	return s.restart()
}

// tick is one iteration of the cooperative loop: redraw if flagged,
// poll status at the rate limit, restart on player exit, then handle at
// most one key.
func (s *Session) tick() (quit bool, err error) {
	if s.needsRedraw {
		s.deps.Display.FullRedraw(s.snapshot(), s.deps.Prober.Inspect(s.current().Path))
		s.needsRedraw = false
		s.lastPoll = time.Time{}
	}

	if time.Since(s.lastPoll) >= s.opts.StatusInterval {
		status, _ := s.deps.Channel.Status()
		s.deps.Display.UpdateStatusLine(status)
		s.lastPoll = time.Now()
	}

	if !s.deps.Player.Alive() {
		s.deps.Log.WithField("index", s.index).Debug("player exited, advancing")
		return false, s.advance()
	}

	if key, ok := s.deps.Keys.Poll(); ok {
		return s.handleKey(key)
	}
	return false, nil
}

func (s *Session) handleKey(key byte) (quit bool, err error) {
	switch key {
	case 'l', 'L':
		s.recordPreference(s.deps.Likes, "Liked!", FeedbackPositive)
	case 'd', 'D':
		s.recordPreference(s.deps.Dislikes, "Disliked!", FeedbackNegative)
	case 'n', 'N':
		return false, s.advance()
	case 's', 'S':
		return false, s.chooseTrack()
	case 'c', 'C':
		return false, s.changeFolder()
	case 'p', 'P', ' ':
		s.deps.Channel.Cycle("pause")
	case 'b', 'B':
		s.deps.Channel.SeekRelative(-5)
	case 'f', 'F':
		s.deps.Channel.SeekRelative(5)
	case 'q', 'Q':
		return true, nil
	default:
		// Unrecognized keys are ignored.
	}
	return false, nil
}

// advance moves to the next track circularly and restarts playback.
func (s *Session) advance() error {
	s.index = (s.index + 1) % len(s.tracks)
	return s.restart()
}

// chooseTrack delegates to the external picker. Cancellation keeps the
// current track but forces a redraw, since the picker owned the screen.
func (s *Session) chooseTrack() error {
	names := make([]string, len(s.tracks))
	for i, t := range s.tracks {
		names[i] = t.Name
	}

	selected, ok, err := s.deps.Picker.Pick(names, "Select track: ")
	if err != nil {
		return err
	}
	if !ok {
		s.needsRedraw = true
		return nil
	}

	for i, name := range names {
		if name == selected {
			s.index = i
			return s.restart()
		}
	}
	s.needsRedraw = true
	return nil
}

// changeFolder re-enters folder selection. The index resets to zero on
// a successful change; on cancellation nothing changes except a redraw.
func (s *Session) changeFolder() error {
	folders, err := s.deps.Library.Folders()
	if err != nil {
		return err
	}

	s.state = StateSelecting
	defer func() { s.state = StatePlaying }()

	selected, ok, err := s.deps.Picker.Pick(folders, "Select folder: ")
	if err != nil {
		return err
	}
	if !ok {
		s.needsRedraw = true
		return nil
	}

	if err := s.setFolder(selected); err != nil {
		return err
	}
	s.index = 0
	return s.restart()
}

func (s *Session) recordPreference(log *library.PreferenceLog, message string, kind Feedback) {
	track := s.current()
	if err := log.Append(s.folder, track.Name); err != nil {
		s.deps.Log.WithError(err).Warn("preference log append failed")
	}
	s.deps.Display.Flash(message, kind, s.opts.FlashDuration)
}

// setFolder enumerates tracks for a folder. An empty folder is fatal.
func (s *Session) setFolder(folder string) error {
	tracks, err := s.deps.Library.Tracks(folder)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		return fmt.Errorf("%w in folder %s", spinerrors.ErrNoTracks, folder)
	}
	s.folder = folder
	s.tracks = tracks
	return nil
}

// restart supervises a playback restart of the current track. The index
// and the audible track never diverge for more than one tick.
func (s *Session) restart() error {
	if err := s.deps.Player.Start(s.current().Path); err != nil {
		return err
	}
	s.needsRedraw = true
	return nil
}

// terminate is the single cleanup path for every way out of the loop.
func (s *Session) terminate() {
	s.state = StateTerminating
	s.deps.Player.Stop()
	s.deps.Log.Debug("session terminated")
}

func (s *Session) current() core.Track {
	if s.index < 0 || s.index >= len(s.tracks) {
		return core.Track{}
	}
	return s.tracks[s.index]
}

func (s *Session) snapshot() render.Snapshot {
	return render.Snapshot{
		Folder: s.folder,
		Tracks: s.tracks,
		Index:  s.index,
	}
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
