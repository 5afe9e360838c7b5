package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/zentime/internal/app"
	"github.com/balkashynov/zentime/internal/models"
	"github.com/balkashynov/zentime/internal/pomodoro"
	"github.com/balkashynov/zentime/internal/tips"
)

// statusTTL is how long a transient status line stays visible
const statusTTL = 3 * time.Second

// TimerModel is the bubbletea model of the timer screen
type TimerModel struct {
	app   *app.App
	theme Theme

	width  int
	height int

	progress progress.Model
	shimmer  *ShimmerState

	// Overlays, nil while closed
	form    *SettingsForm
	history *HistoryView

	status      string
	statusUntil time.Time

	quitting bool
}

// shimmerTickMsg drives the tip animation
type shimmerTickMsg struct{}

// NewTimerModel creates the timer screen for a wired app
func NewTimerModel(a *app.App, theme Theme) TimerModel {
	return TimerModel{
		app:      a,
		theme:    theme,
		progress: progress.New(progress.WithSolidFill(theme.ModeColor(models.ModeFocus)), progress.WithoutPercentage()),
		shimmer:  NewShimmerState(DefaultShimmerConfig()),
	}
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	return m.shimmerTick()
}

func (m TimerModel) shimmerTick() tea.Cmd {
	interval := m.shimmer.Interval()
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pomodoro.Tick:
		m.app.HandleTick(msg)
		return m, nil

	case tips.Tip:
		m.app.DeliverTip(msg)
		m.shimmer.Reset()
		return m, nil

	case shimmerTickMsg:
		m.shimmer.Advance(time.Now(), len([]rune(m.app.Tip().Text)))
		if m.quitting {
			return m, nil
		}
		return m, m.shimmerTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateSettings(msg)
		}
		if m.history != nil {
			history, closed := m.history.Update(msg)
			m.history = &history
			if closed {
				m.history = nil
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	if m.form != nil {
		form, cmd, _ := m.form.Update(msg)
		m.form = &form
		return m, cmd
	}
	return m, nil
}

func (m TimerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	engine := m.app.Engine

	switch msg.String() {
	case " ", "p":
		engine.Toggle()
	case "r":
		engine.Reset()
	case "1":
		engine.SwitchMode(models.ModeFocus, false)
	case "2":
		engine.SwitchMode(models.ModeShortBreak, false)
	case "3":
		engine.SwitchMode(models.ModeLongBreak, false)
	case "tab":
		next := models.Modes[(int(engine.State().Mode)+1)%len(models.Modes)]
		engine.SwitchMode(next, false)
	case "shift+tab":
		prev := models.Modes[(int(engine.State().Mode)+len(models.Modes)-1)%len(models.Modes)]
		engine.SwitchMode(prev, false)
	case "m":
		if engine.ToggleMute() {
			m.setStatus("🔇 Sound off")
		} else {
			m.setStatus("🔔 Sound on")
		}
	case "s":
		form := NewSettingsForm(engine.Settings(), m.theme)
		m.form = &form
	case "h":
		recent, err := m.app.Recent(historyLimit)
		history := NewHistoryView(recent, err, m.theme, m.height)
		m.history = &history
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m TimerModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd, result := m.form.Update(msg)
	switch result {
	case FormSaved:
		m.app.Engine.ApplySettings(form.Draft())
		m.form = nil
		m.setStatus("✅ Settings saved")
		return m, nil
	case FormCancelled:
		m.form = nil
		return m, nil
	}
	m.form = &form
	return m, cmd
}

func (m *TimerModel) setStatus(text string) {
	m.status = text
	m.statusUntil = time.Now().Add(statusTTL)
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	var body string
	switch {
	case m.form != nil:
		body = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, m.form.View(m.width))
	case m.history != nil:
		body = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, m.history.View(m.width))
	default:
		body = m.renderTimerPanel(m.width, contentHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, helpBar)
}

// renderTimerPanel renders mode tabs, clock, progress and tip
func (m TimerModel) renderTimerPanel(width, height int) string {
	state := m.app.Engine.State()
	modeColor := m.theme.ModeColor(state.Mode)
	center := lipgloss.NewStyle().Align(lipgloss.Center).Width(width)

	var components []string

	components = append(components, center.Render(m.renderTabs(state.Mode)))

	statusText := "Ready"
	statusColor := m.theme.SecondaryText
	if state.Running {
		statusText = "Session Active"
		statusColor = modeColor
	}
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusColor)).
		Bold(state.Running).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, statusStyle.Render(statusText))

	clockLines := strings.Split(renderBigClock(FormatClock(state.RemainingSeconds), modeColor), "\n")
	for i, line := range clockLines {
		clockLines[i] = center.Render(line)
	}
	components = append(components, strings.Join(clockLines, "\n"))

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}
	bar := m.progress
	bar.Width = barWidth
	bar.FullColor = modeColor
	bar.EmptyColor = m.theme.Border
	components = append(components, center.Render(bar.ViewAs(m.app.Engine.Progress())))

	tallyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.SecondaryText)).
		Align(lipgloss.Center).
		Width(width)
	tally := fmt.Sprintf("🍅 %d focus session%s completed", state.CompletedFocusSessions, plural(state.CompletedFocusSessions))
	if m.app.Engine.Muted() {
		tally += "  ·  🔇 muted"
	}
	components = append(components, tallyStyle.Render(tally))

	tipWidth := width - 8
	if tipWidth > 80 {
		tipWidth = 80
	}
	tip := m.shimmer.Render(m.app.Tip().Text, tipWidth, m.theme.SecondaryText, m.theme.AccentBright)
	components = append(components, center.Render(tip))

	if m.status != "" && time.Now().Before(m.statusUntil) {
		components = append(components, center.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Success)).Render(m.status)))
	}

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

func (m TimerModel) renderTabs(active models.Mode) string {
	tabs := make([]string, 0, len(models.Modes))
	for i, mode := range models.Modes {
		label := fmt.Sprintf(" %d %s ", i+1, mode.Label())
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.DisabledText))
		if mode == active {
			style = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(m.theme.ModeColor(mode))).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(m.theme.ModeColor(mode)))
		} else {
			style = style.Border(lipgloss.HiddenBorder())
		}
		tabs = append(tabs, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.HelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	if m.form != nil {
		return helpStyle.Render("editing settings")
	}
	if m.history != nil {
		return helpStyle.Render("session history")
	}

	action := "start"
	if m.app.Engine.State().Running {
		action = "pause"
	}
	helpText := fmt.Sprintf("space %s · r reset · 1/2/3 mode · s settings · h history · m mute · q quit", action)

	return helpStyle.Render(helpText)
}

// FormatClock renders seconds as MM:SS; minutes are not wrapped into hours
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// bigDigits are 5x5 glyphs for the clock
var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders ASCII art clock
func renderBigClock(timeStr, color string) string {
	var lines [5]strings.Builder
	for _, char := range timeStr {
		glyph, ok := bigDigits[char]
		if !ok {
			continue
		}
		for i := range glyph {
			lines[i].WriteString(glyph[i])
			lines[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)

	rendered := make([]string, len(lines))
	for i := range lines {
		rendered[i] = clockStyle.Render(lines[i].String())
	}
	return strings.Join(rendered, "\n")
}
