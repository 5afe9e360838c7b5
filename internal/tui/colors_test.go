package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/zentime/internal/models"
)

func TestThemeForKnownFlavors(t *testing.T) {
	for _, name := range []string{"latte", "frappe", "macchiato", "mocha"} {
		theme := ThemeFor(name)
		assert.Equal(t, name, theme.Name)
		assert.NotEmpty(t, theme.PrimaryText)
		assert.NotEqual(t, theme.Focus, theme.ShortBreak)
		assert.NotEqual(t, theme.ShortBreak, theme.LongBreak)
	}
}

func TestThemeForUnknownFallsBackToMocha(t *testing.T) {
	assert.Equal(t, ThemeFor("mocha"), withName(ThemeFor("dracula"), "mocha"))
}

func withName(t Theme, name string) Theme {
	t.Name = name
	return t
}

func TestModeColor(t *testing.T) {
	theme := ThemeFor("mocha")
	assert.Equal(t, theme.Focus, theme.ModeColor(models.ModeFocus))
	assert.Equal(t, theme.ShortBreak, theme.ModeColor(models.ModeShortBreak))
	assert.Equal(t, theme.LongBreak, theme.ModeColor(models.ModeLongBreak))
}
