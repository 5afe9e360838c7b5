package tui

import (
	catppuccin "github.com/catppuccin/go"

	"github.com/balkashynov/zentime/internal/models"
)

// Theme holds the colors of the zentime TUI, resolved from a catppuccin flavor
type Theme struct {
	Name string

	// Base Colors
	Border string

	// Text Colors
	PrimaryText   string // Titles, clock digits, user input
	SecondaryText string // Labels, tip text
	DisabledText  string // Inactive tabs, muted text
	HelpText      string

	// Mode Colors
	Focus      string
	ShortBreak string
	LongBreak  string

	// Accent Colors
	Accent       string
	AccentBright string

	// State Colors
	Error   string
	Success string
	Warning string
}

var flavors = map[string]catppuccin.Flavor{
	"latte":     catppuccin.Latte,
	"frappe":    catppuccin.Frappe,
	"macchiato": catppuccin.Macchiato,
	"mocha":     catppuccin.Mocha,
}

// ThemeFor resolves a flavor name, falling back to mocha
func ThemeFor(name string) Theme {
	flavor, ok := flavors[name]
	if !ok {
		name = "mocha"
		flavor = catppuccin.Mocha
	}
	return Theme{
		Name:          name,
		Border:        flavor.Surface1().Hex,
		PrimaryText:   flavor.Text().Hex,
		SecondaryText: flavor.Subtext0().Hex,
		DisabledText:  flavor.Overlay0().Hex,
		HelpText:      flavor.Overlay1().Hex,
		Focus:         flavor.Red().Hex,
		ShortBreak:    flavor.Teal().Hex,
		LongBreak:     flavor.Blue().Hex,
		Accent:        flavor.Mauve().Hex,
		AccentBright:  flavor.Lavender().Hex,
		Error:         flavor.Red().Hex,
		Success:       flavor.Green().Hex,
		Warning:       flavor.Yellow().Hex,
	}
}

// ModeColor returns the accent used for everything tied to the current mode
func (t Theme) ModeColor(mode models.Mode) string {
	switch mode {
	case models.ModeShortBreak:
		return t.ShortBreak
	case models.ModeLongBreak:
		return t.LongBreak
	default:
		return t.Focus
	}
}
