package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/zentime/internal/models"
	"github.com/balkashynov/zentime/internal/parser"
)

// SettingsField identifies a row of the settings form
type SettingsField int

const (
	FieldFocus SettingsField = iota
	FieldShortBreak
	FieldLongBreak
	FieldAutoBreaks
	FieldAutoFocus
	fieldCount
)

// FormResult reports how a key press left the form
type FormResult int

const (
	FormEditing FormResult = iota
	FormSaved
	FormCancelled
)

// SettingsForm edits a draft of the settings; nothing is applied until save
type SettingsForm struct {
	inputs     []textinput.Model
	autoBreaks bool
	autoFocus  bool
	focused    SettingsField
	theme      Theme
}

// NewSettingsForm creates a form prefilled with current
func NewSettingsForm(current models.Settings, theme Theme) SettingsForm {
	inputs := make([]textinput.Model, 3)
	values := []int{current.FocusMinutes, current.ShortBreakMinutes, current.LongBreakMinutes}

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 8
		inputs[i].CharLimit = 6
		inputs[i].Placeholder = "minutes"
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.PrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.DisabledText))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.AccentBright))
		inputs[i].SetValue(strconv.Itoa(values[i]))
	}
	inputs[0].Focus()

	return SettingsForm{
		inputs:     inputs,
		autoBreaks: current.AutoStartBreaks,
		autoFocus:  current.AutoStartFocus,
		focused:    FieldFocus,
		theme:      theme,
	}
}

// Draft returns the settings the form would save. Unparseable or
// non-positive minute fields become 1.
func (f SettingsForm) Draft() models.Settings {
	return models.Settings{
		FocusMinutes:      parser.ForgivingMinutes(f.inputs[FieldFocus].Value()),
		ShortBreakMinutes: parser.ForgivingMinutes(f.inputs[FieldShortBreak].Value()),
		LongBreakMinutes:  parser.ForgivingMinutes(f.inputs[FieldLongBreak].Value()),
		AutoStartBreaks:   f.autoBreaks,
		AutoStartFocus:    f.autoFocus,
	}
}

// Focused returns the active row
func (f SettingsForm) Focused() SettingsField {
	return f.focused
}

// Update handles a message while the form is open
func (f SettingsForm) Update(msg tea.Msg) (SettingsForm, tea.Cmd, FormResult) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			return f, nil, FormCancelled
		case "enter":
			return f, nil, FormSaved
		case "tab", "down":
			return f.focus((f.focused + 1) % fieldCount), nil, FormEditing
		case "shift+tab", "up":
			return f.focus((f.focused + fieldCount - 1) % fieldCount), nil, FormEditing
		case " ", "left", "right", "y", "n":
			if f.focused == FieldAutoBreaks || f.focused == FieldAutoFocus {
				f.toggle(key.String())
				return f, nil, FormEditing
			}
		}
	}

	if f.focused > FieldLongBreak {
		return f, nil, FormEditing
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd, FormEditing
}

func (f *SettingsForm) toggle(key string) {
	target := &f.autoBreaks
	if f.focused == FieldAutoFocus {
		target = &f.autoFocus
	}
	switch key {
	case "y":
		*target = true
	case "n":
		*target = false
	default:
		*target = !*target
	}
}

func (f SettingsForm) focus(field SettingsField) SettingsForm {
	for i := range f.inputs {
		if SettingsField(i) == field {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	f.focused = field
	return f
}

// View renders the form as a bordered panel
func (f SettingsForm) View(width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(f.theme.AccentBright))
	b.WriteString(titleStyle.Render("⚙  Settings"))
	b.WriteString("\n\n")

	labels := []string{"Focus", "Short break", "Long break"}
	for i, label := range labels {
		b.WriteString(f.renderLabel(SettingsField(i), label))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(f.renderLabel(FieldAutoBreaks, "Auto-start breaks"))
	b.WriteString(f.renderToggle(f.autoBreaks))
	b.WriteString("\n")
	b.WriteString(f.renderLabel(FieldAutoFocus, "Auto-start focus"))
	b.WriteString(f.renderToggle(f.autoFocus))
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(f.theme.HelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("tab next · space toggle · enter save · esc cancel"))

	panelWidth := 46
	if width > 0 && width-4 < panelWidth {
		panelWidth = width - 4
	}
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(f.theme.Accent)).
		Padding(1, 2).
		Width(panelWidth)

	return panelStyle.Render(b.String())
}

func (f SettingsForm) renderLabel(field SettingsField, label string) string {
	style := lipgloss.NewStyle().Width(20).Foreground(lipgloss.Color(f.theme.SecondaryText))
	marker := "  "
	if field == f.focused {
		style = style.Foreground(lipgloss.Color(f.theme.AccentBright)).Bold(true)
		marker = "▶ "
	}
	return style.Render(marker + label)
}

func (f SettingsForm) renderToggle(on bool) string {
	if on {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(f.theme.Success)).Bold(true).Render("[x] on")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(f.theme.DisabledText)).Render("[ ] off")
}
