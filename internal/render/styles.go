package render

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

var flavour = catppuccin.Mocha

// Text styles used by the view.
var (
	Border = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(flavour.Mauve().Hex))

	Folder = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(flavour.Sapphire().Hex))

	TrackTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(flavour.Yellow().Hex))

	Current = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(flavour.Green().Hex))

	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(flavour.Blue().Hex))

	Key = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(flavour.Peach().Hex))

	BarFill = lipgloss.NewStyle().
		Foreground(lipgloss.Color(flavour.Teal().Hex))

	BarEmpty = lipgloss.NewStyle().
			Foreground(lipgloss.Color(flavour.Surface2().Hex))

	Clock = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(flavour.Text().Hex))

	Loading = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(flavour.Yellow().Hex))

	FlashLike = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(flavour.Green().Hex))

	FlashDislike = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(flavour.Red().Hex))
)
