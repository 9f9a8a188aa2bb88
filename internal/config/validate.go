package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Library.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("library: %w", err))
	}
	if err := c.Player.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if err := c.Picker.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("picker: %w", err))
	}
	if err := c.UI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks LibraryConfig for errors.
func (c *LibraryConfig) Validate() error {
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}

// Validate checks PlayerConfig for errors.
func (c *PlayerConfig) Validate() error {
	if c.Command == "" {
		return errors.New("command must not be empty")
	}
	if c.SettleMS < 0 {
		return errors.New("settle_ms must be non-negative")
	}
	if c.StopGraceMS < 0 {
		return errors.New("stop_grace_ms must be non-negative")
	}
	if c.IPCTimeoutMS < 0 {
		return errors.New("ipc_timeout_ms must be non-negative")
	}
	return nil
}

// Validate checks PickerConfig for errors.
func (c *PickerConfig) Validate() error {
	if c.Command == "" {
		return errors.New("command must not be empty")
	}
	return nil
}

// Validate checks UIConfig for errors.
func (c *UIConfig) Validate() error {
	if c.TickMS < 0 {
		return errors.New("tick_ms must be non-negative")
	}
	if c.StatusIntervalMS < 0 {
		return errors.New("status_interval_ms must be non-negative")
	}
	if c.BarWidth < 10 {
		return errors.New("bar_width must be at least 10")
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
