package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Library: LibraryConfig{
			Root:         ".",
			Extensions:   []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a"},
			LikesFile:    "likes.txt",
			DislikesFile: "dislikes.txt",
		},
		Player: PlayerConfig{
			Command:      "mpv",
			Socket:       "/tmp/mpv-spin",
			SettleMS:     1000,
			StopGraceMS:  2000,
			IPCTimeoutMS: 500,
		},
		Picker: PickerConfig{
			Command: "fzf",
			Height:  "40%",
		},
		UI: UIConfig{
			TickMS:           100,
			StatusIntervalMS: 1000,
			BarWidth:         50,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Library
	if c.Library.Root == "" {
		c.Library.Root = d.Library.Root
	}
	if len(c.Library.Extensions) == 0 {
		c.Library.Extensions = d.Library.Extensions
	}
	if c.Library.LikesFile == "" {
		c.Library.LikesFile = d.Library.LikesFile
	}
	if c.Library.DislikesFile == "" {
		c.Library.DislikesFile = d.Library.DislikesFile
	}

	// Player
	if c.Player.Command == "" {
		c.Player.Command = d.Player.Command
	}
	if c.Player.Socket == "" {
		c.Player.Socket = d.Player.Socket
	}
	if c.Player.SettleMS == 0 {
		c.Player.SettleMS = d.Player.SettleMS
	}
	if c.Player.StopGraceMS == 0 {
		c.Player.StopGraceMS = d.Player.StopGraceMS
	}
	if c.Player.IPCTimeoutMS == 0 {
		c.Player.IPCTimeoutMS = d.Player.IPCTimeoutMS
	}

	// Picker
	if c.Picker.Command == "" {
		c.Picker.Command = d.Picker.Command
	}
	if c.Picker.Height == "" {
		c.Picker.Height = d.Picker.Height
	}

	// UI
	if c.UI.TickMS == 0 {
		c.UI.TickMS = d.UI.TickMS
	}
	if c.UI.StatusIntervalMS == 0 {
		c.UI.StatusIntervalMS = d.UI.StatusIntervalMS
	}
	if c.UI.BarWidth == 0 {
		c.UI.BarWidth = d.UI.BarWidth
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
