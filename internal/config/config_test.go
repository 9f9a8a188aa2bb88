package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Player.Command != "mpv" {
		t.Errorf("Player.Command = %q, want %q", cfg.Player.Command, "mpv")
	}
	if cfg.Picker.Command != "fzf" {
		t.Errorf("Picker.Command = %q, want %q", cfg.Picker.Command, "fzf")
	}
	if cfg.UI.TickMS != 100 {
		t.Errorf("UI.TickMS = %d, want 100", cfg.UI.TickMS)
	}
	if cfg.UI.StatusIntervalMS != 1000 {
		t.Errorf("UI.StatusIntervalMS = %d, want 1000", cfg.UI.StatusIntervalMS)
	}
	if len(cfg.Library.Extensions) == 0 {
		t.Error("Library.Extensions is empty after defaults")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()

	if cfg.Player.Settle() != time.Second {
		t.Errorf("Settle() = %v, want 1s", cfg.Player.Settle())
	}
	if cfg.Player.StopGrace() != 2*time.Second {
		t.Errorf("StopGrace() = %v, want 2s", cfg.Player.StopGrace())
	}
	if cfg.Player.IPCTimeout() != 500*time.Millisecond {
		t.Errorf("IPCTimeout() = %v, want 500ms", cfg.Player.IPCTimeout())
	}
	if cfg.UI.Tick() != 100*time.Millisecond {
		t.Errorf("Tick() = %v, want 100ms", cfg.UI.Tick())
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[library]
root = "/music"
default_folder = "Ambient"

[player]
command = "mpv-custom"
settle_ms = 250

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Library.Root != "/music" {
		t.Errorf("Library.Root = %q, want %q", cfg.Library.Root, "/music")
	}
	if cfg.Library.DefaultFolder != "Ambient" {
		t.Errorf("Library.DefaultFolder = %q", cfg.Library.DefaultFolder)
	}
	if cfg.Player.Command != "mpv-custom" {
		t.Errorf("Player.Command = %q", cfg.Player.Command)
	}
	if cfg.Player.SettleMS != 250 {
		t.Errorf("Player.SettleMS = %d, want 250", cfg.Player.SettleMS)
	}

	// Unset values fall back to defaults.
	if cfg.Picker.Command != "fzf" {
		t.Errorf("Picker.Command = %q, want default fzf", cfg.Picker.Command)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SPIN_PLAYER_COMMAND", "fake-player")
	t.Setenv("SPIN_LOG_LEVEL", "warn")

	cfg := &Config{}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	if cfg.Player.Command != "fake-player" {
		t.Errorf("Player.Command = %q, want env override", cfg.Player.Command)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestValidateErrors(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil for bad log level, want error")
	}

	cfg = Default()
	cfg.Player.Command = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil for empty player command, want error")
	}

	cfg = Default()
	cfg.Library.Extensions = []string{"mp3"}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil for extension without dot, want error")
	}

	cfg = Default()
	cfg.UI.BarWidth = 2
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil for tiny bar width, want error")
	}
}
