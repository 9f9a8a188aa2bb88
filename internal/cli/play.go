package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spinapp/spin/internal/core"
	spinerrors "github.com/spinapp/spin/internal/errors"
	"github.com/spinapp/spin/internal/library"
	"github.com/spinapp/spin/internal/mpv"
	"github.com/spinapp/spin/internal/picker"
	"github.com/spinapp/spin/internal/probe"
	"github.com/spinapp/spin/internal/render"
	"github.com/spinapp/spin/internal/session"
	"github.com/spinapp/spin/internal/term"
)

const proberCommand = "ffprobe"

// feedbackDisplay adapts the view to the session's display contract,
// mapping feedback kinds onto flash styles.
type feedbackDisplay struct {
	view *render.View
}

func (d feedbackDisplay) FullRedraw(snap render.Snapshot, info core.TrackInfo) {
	d.view.FullRedraw(snap, info)
}

func (d feedbackDisplay) UpdateStatusLine(status *core.Status) {
	d.view.UpdateStatusLine(status)
}

func (d feedbackDisplay) Flash(message string, kind session.Feedback, duration time.Duration) {
	style := render.FlashLike
	if kind == session.FeedbackNegative {
		style = render.FlashDislike
	}
	d.view.Flash(message, style, duration)
}

func runSpin(cmd *cobra.Command, args []string) error {
	if err := checkTools(); err != nil {
		return err
	}

	if !term.IsTerminal(os.Stdin) || !term.IsTerminal(os.Stdout) {
		return spinerrors.ErrNotATerminal
	}

	folder := cfg.Library.DefaultFolder
	if len(args) > 0 {
		folder = args[0]
	}

	mode, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer mode.Restore()

	screen := render.NewScreen(os.Stdout)
	screen.HideCursor()
	defer screen.ShowCursor()

	width := term.Width(os.Stdout, 80)
	view := render.NewView(screen, width, cfg.UI.BarWidth)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess := session.New(session.Deps{
		Library:  library.New(cfg.Library.Root, cfg.Library.Extensions),
		Player:   mpv.NewSupervisor(cfg.Player.Command, cfg.Player.Socket, cfg.Player.Settle(), cfg.Player.StopGrace(), log),
		Channel:  mpv.NewClient(cfg.Player.Socket, cfg.Player.IPCTimeout()),
		Picker:   picker.New(cfg.Picker.Command, cfg.Picker.Height),
		Keys:     term.NewKeyReader(os.Stdin),
		Display:  feedbackDisplay{view: view},
		Prober:   probe.New(proberCommand),
		Likes:    library.NewPreferenceLog(prefsPath(cfg.Library.LikesFile)),
		Dislikes: library.NewPreferenceLog(prefsPath(cfg.Library.DislikesFile)),
		Log:      log,
	}, session.Options{
		DefaultFolder:  folder,
		Tick:           cfg.UI.Tick(),
		StatusInterval: cfg.UI.StatusInterval(),
	})

	err = sess.Run(ctx)

	screen.Clear()
	screen.ShowCursor()
	mode.Restore()

	if err != nil {
		return err
	}
	fmt.Println("Goodbye!")
	return nil
}

// checkTools verifies the external commands before touching the
// terminal, so failures surface as plain messages.
func checkTools() error {
	if _, err := exec.LookPath(cfg.Player.Command); err != nil {
		return fmt.Errorf("%w: %s", spinerrors.ErrPlayerNotFound, cfg.Player.Command)
	}
	if err := picker.New(cfg.Picker.Command, cfg.Picker.Height).Check(); err != nil {
		return err
	}
	if _, err := exec.LookPath(proberCommand); err != nil {
		log.WithField("command", proberCommand).Warn("prober not found, track info will be blank")
	}
	return nil
}

// prefsPath anchors relative preference files at the library root.
func prefsPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.Library.Root, name)
}
