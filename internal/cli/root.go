package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spinapp/spin/internal/config"
	spinerrors "github.com/spinapp/spin/internal/errors"
)

var (
	cfgFile string
	verbose bool

	cfg *config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "spin [folder]",
	Short: "Play music folders in the terminal",
	Long: `Spin is a terminal music session: it picks a folder from your
library, hands playback to mpv, and maps single keystrokes to
playback controls while drawing a flicker-free status display.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE:          runSpin,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.spinrc)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %s", spinerrors.ErrInvalidConfig, err)
	}

	log = newLogger(cfg.Log)
	return nil
}

// newLogger builds the session logger. The terminal belongs to the
// display, so logs go to a file or nowhere.
func newLogger(lc config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			logger.SetOutput(f)
		}
	}
	return logger
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, spinerrors.Format(err))
		os.Exit(1)
	}
}
