package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Library LibraryConfig `toml:"library"`
	Player  PlayerConfig  `toml:"player"`
	Picker  PickerConfig  `toml:"picker"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// LibraryConfig holds music library settings.
type LibraryConfig struct {
	Root          string   `toml:"root"`
	Extensions    []string `toml:"extensions"`
	DefaultFolder string   `toml:"default_folder"`
	LikesFile     string   `toml:"likes_file"`
	DislikesFile  string   `toml:"dislikes_file"`
}

// PlayerConfig holds external player process settings.
type PlayerConfig struct {
	Command      string `toml:"command"`
	Socket       string `toml:"socket"`
	SettleMS     int    `toml:"settle_ms"`
	StopGraceMS  int    `toml:"stop_grace_ms"`
	IPCTimeoutMS int    `toml:"ipc_timeout_ms"`
}

// Settle returns the post-spawn settle interval.
func (c *PlayerConfig) Settle() time.Duration {
	return time.Duration(c.SettleMS) * time.Millisecond
}

// StopGrace returns the graceful-termination grace period.
func (c *PlayerConfig) StopGrace() time.Duration {
	return time.Duration(c.StopGraceMS) * time.Millisecond
}

// IPCTimeout returns the per-request control channel timeout.
func (c *PlayerConfig) IPCTimeout() time.Duration {
	return time.Duration(c.IPCTimeoutMS) * time.Millisecond
}

// PickerConfig holds external fuzzy-picker settings.
type PickerConfig struct {
	Command string `toml:"command"`
	Height  string `toml:"height"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	TickMS           int `toml:"tick_ms"`
	StatusIntervalMS int `toml:"status_interval_ms"`
	BarWidth         int `toml:"bar_width"`
}

// Tick returns the main loop tick interval.
func (c *UIConfig) Tick() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// StatusInterval returns the status poll rate limit.
func (c *UIConfig) StatusInterval() time.Duration {
	return time.Duration(c.StatusIntervalMS) * time.Millisecond
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
