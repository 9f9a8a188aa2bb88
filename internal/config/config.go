package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.spinrc, $XDG_CONFIG_HOME/spin/config.toml, ~/.config/spin/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	path := findConfigFile()
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".spinrc"),
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "spin", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Library
	if v := os.Getenv("SPIN_LIBRARY_ROOT"); v != "" {
		cfg.Library.Root = v
	}
	if v := os.Getenv("SPIN_LIBRARY_DEFAULT_FOLDER"); v != "" {
		cfg.Library.DefaultFolder = v
	}

	// Player
	if v := os.Getenv("SPIN_PLAYER_COMMAND"); v != "" {
		cfg.Player.Command = v
	}
	if v := os.Getenv("SPIN_PLAYER_SOCKET"); v != "" {
		cfg.Player.Socket = v
	}

	// Picker
	if v := os.Getenv("SPIN_PICKER_COMMAND"); v != "" {
		cfg.Picker.Command = v
	}

	// UI
	if v := os.Getenv("SPIN_UI_TICK_MS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.UI.TickMS = i
		}
	}

	// Log
	if v := os.Getenv("SPIN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SPIN_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
