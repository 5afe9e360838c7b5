package tui

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/zentime/internal/app"
	"github.com/balkashynov/zentime/internal/config"
	"github.com/balkashynov/zentime/internal/models"
	"github.com/balkashynov/zentime/internal/pomodoro"
	"github.com/balkashynov/zentime/internal/tips"
)

func newTestModel(t *testing.T) (TimerModel, *clockwork.FakeClock, chan any) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	msgs := make(chan any, 16)

	cfg := config.DefaultConfig()
	a, err := app.New(context.Background(), app.Options{
		Config:   cfg,
		Clock:    clock,
		Post:     func(msg any) { msgs <- msg },
		Provider: tips.Static{},
		CueOut:   &bytes.Buffer{},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	m := NewTimerModel(a, ThemeFor("mocha"))
	m.shimmer.SupportsTrueColor = false
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(TimerModel), clock, msgs
}

func press(t *testing.T, m TimerModel, keys ...string) (TimerModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(TimerModel)
	}
	return m, cmd
}

func nextTick(t *testing.T, msgs chan any) pomodoro.Tick {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case msg := <-msgs:
			if tick, ok := msg.(pomodoro.Tick); ok {
				return tick
			}
		case <-deadline:
			t.Fatal("expected a tick")
			return pomodoro.Tick{}
		}
	}
}

func TestTimerModelInitialView(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Focus")
	assert.Contains(t, view, "Ready")
	assert.Contains(t, view, tips.Placeholder)
	assert.Contains(t, view, "space start")
	assert.Contains(t, view, "0 focus sessions completed")
}

func TestTimerModelLoadingBeforeSize(t *testing.T) {
	a, err := app.New(context.Background(), app.Options{Post: func(any) {}, Provider: tips.Static{}, CueOut: &bytes.Buffer{}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, "Loading...", NewTimerModel(a, ThemeFor("latte")).View())
}

func TestTimerModelSpaceTogglesAndTicks(t *testing.T) {
	m, clock, msgs := newTestModel(t)

	m, _ = press(t, m, "space")
	assert.True(t, m.app.Engine.State().Running)
	assert.Contains(t, m.View(), "Session Active")
	assert.Contains(t, m.View(), "space pause")

	clock.Advance(time.Second)
	updated, _ := m.Update(nextTick(t, msgs))
	m = updated.(TimerModel)
	assert.Equal(t, 25*60-1, m.app.Engine.State().RemainingSeconds)

	m, _ = press(t, m, "p")
	assert.False(t, m.app.Engine.State().Running)
	assert.Contains(t, m.View(), "Ready")
}

func TestTimerModelModeKeys(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "2")
	assert.Equal(t, models.ModeShortBreak, m.app.Engine.State().Mode)
	assert.Equal(t, 5*60, m.app.Engine.State().RemainingSeconds)

	m, _ = press(t, m, "3")
	assert.Equal(t, models.ModeLongBreak, m.app.Engine.State().Mode)
	assert.Equal(t, 15*60, m.app.Engine.State().RemainingSeconds)

	m, _ = press(t, m, "tab")
	assert.Equal(t, models.ModeFocus, m.app.Engine.State().Mode)

	m, _ = press(t, m, "1")
	assert.Equal(t, models.ModeFocus, m.app.Engine.State().Mode)
	assert.False(t, m.app.Engine.State().Running)
}

func TestTimerModelSwitchStopsRunningTimer(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "space", "2")
	assert.False(t, m.app.Engine.State().Running)
	assert.Equal(t, models.ModeShortBreak, m.app.Engine.State().Mode)
}

func TestTimerModelReset(t *testing.T) {
	m, clock, msgs := newTestModel(t)

	m, _ = press(t, m, "space")
	clock.Advance(time.Second)
	updated, _ := m.Update(nextTick(t, msgs))
	m = updated.(TimerModel)

	m, _ = press(t, m, "r")
	state := m.app.Engine.State()
	assert.False(t, state.Running)
	assert.Equal(t, 25*60, state.RemainingSeconds)
}

func TestTimerModelMute(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "m")
	assert.True(t, m.app.Engine.Muted())
	assert.Contains(t, m.View(), "muted")
	assert.Contains(t, m.View(), "Sound off")

	m, _ = press(t, m, "m")
	assert.False(t, m.app.Engine.Muted())
}

func TestTimerModelTipMessage(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, _ := m.Update(tips.Tip{Mode: models.ModeFocus, Text: "Close the other tabs.", Source: tips.SourceModel})
	m = updated.(TimerModel)
	assert.Equal(t, "Close the other tabs.", m.app.Tip().Text)
	assert.Contains(t, m.View(), "Close the other tabs.")
}

func TestTimerModelSettingsSave(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "s")
	require.NotNil(t, m.form)
	assert.Contains(t, m.View(), "Settings")

	// replace "25" with "50"
	m, _ = press(t, m, "backspace", "backspace", "5", "0", "enter")
	assert.Nil(t, m.form)
	assert.Equal(t, 50, m.app.Engine.Settings().FocusMinutes)
	assert.Equal(t, 50*60, m.app.Engine.State().RemainingSeconds)
	assert.Contains(t, m.View(), "Settings saved")
}

func TestTimerModelSettingsInvalidBecomesOne(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "s", "backspace", "backspace", "x", "enter")
	assert.Equal(t, 1, m.app.Engine.Settings().FocusMinutes)
	assert.Equal(t, 60, m.app.Engine.State().RemainingSeconds)
}

func TestTimerModelSettingsCancel(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "s", "backspace", "9", "esc")
	assert.Nil(t, m.form)
	assert.Equal(t, 25, m.app.Engine.Settings().FocusMinutes)
}

func TestTimerModelSettingsWhileRunningKeepsCountdown(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "space", "s", "backspace", "backspace", "1", "0", "enter")
	state := m.app.Engine.State()
	assert.True(t, state.Running)
	assert.Equal(t, 25*60, state.RemainingSeconds)
	assert.Equal(t, 10, m.app.Engine.Settings().FocusMinutes)
}

func TestTimerModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", FormatClock(1500))
	assert.Equal(t, "00:59", FormatClock(59))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:00", FormatClock(-3))
	assert.Equal(t, "90:00", FormatClock(5400))
}

func TestRenderBigClockLines(t *testing.T) {
	lines := renderBigClock("12:34", "#ffffff")
	assert.Len(t, splitLines(lines), 5)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := range s {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
