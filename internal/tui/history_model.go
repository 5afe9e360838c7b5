package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/zentime/internal/models"
)

// historyLimit caps how many journal rows the overlay loads
const historyLimit = 50

// HistoryView lists the intervals completed during this run, newest first
type HistoryView struct {
	intervals []models.Interval
	err       error
	theme     Theme

	currentPage int
	perPage     int
}

// NewHistoryView creates the overlay from journal rows
func NewHistoryView(intervals []models.Interval, err error, theme Theme, height int) HistoryView {
	perPage := height - 12
	if perPage < 3 {
		perPage = 3
	}
	return HistoryView{
		intervals: intervals,
		err:       err,
		theme:     theme,
		perPage:   perPage,
	}
}

// Update handles paging; closed reports that the overlay should go away
func (h HistoryView) Update(msg tea.KeyMsg) (view HistoryView, closed bool) {
	switch msg.String() {
	case "esc", "q", "h", "enter":
		return h, true
	case "left", "up", "k":
		if h.currentPage > 0 {
			h.currentPage--
		}
	case "right", "down", "j":
		if (h.currentPage+1)*h.perPage < len(h.intervals) {
			h.currentPage++
		}
	}
	return h, false
}

// View renders the history table in a bordered panel
func (h HistoryView) View(width int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(h.theme.AccentBright))
	b.WriteString(headerStyle.Render("📋 This session"))
	b.WriteString("\n\n")

	switch {
	case h.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(h.theme.Error)).Render(fmt.Sprintf("❌ %v", h.err)))
	case len(h.intervals) == 0:
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(h.theme.SecondaryText)).
			Italic(true).
			Render("Nothing completed yet"))
	default:
		b.WriteString(h.renderTable())
	}

	b.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(h.theme.HelpText)).Italic(true)
	b.WriteString(helpStyle.Render("←/→ page · esc close"))

	panelWidth := 56
	if width > 0 && width-4 < panelWidth {
		panelWidth = width - 4
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(h.theme.Accent)).
		Padding(1, 2).
		Width(panelWidth).
		Render(b.String())
}

func (h HistoryView) renderTable() string {
	var b strings.Builder

	columnHeaderStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(h.theme.SecondaryText))
	b.WriteString(columnHeaderStyle.Render(fmt.Sprintf("%-6s %-12s %-7s %-12s", "TIME", "MODE", "LENGTH", "NEXT")))
	b.WriteString("\n")

	start := h.currentPage * h.perPage
	end := min(start+h.perPage, len(h.intervals))

	for _, iv := range h.intervals[start:end] {
		mode := modeFromString(iv.Mode)
		next := modeFromString(iv.NextMode).Label()
		if iv.AutoStarted {
			next += " ▶"
		}
		modeText := lipgloss.NewStyle().
			Foreground(lipgloss.Color(h.theme.ModeColor(mode))).
			Render(fmt.Sprintf("%-12s", mode.Label()))
		b.WriteString(fmt.Sprintf("%-6s %s %-7s %-12s\n",
			iv.CompletedAt.Local().Format("15:04"),
			modeText,
			FormatClock(iv.PlannedSeconds),
			next))
	}

	if pages := (len(h.intervals) + h.perPage - 1) / h.perPage; pages > 1 {
		b.WriteString(fmt.Sprintf("\npage %d/%d", h.currentPage+1, pages))
	}
	return strings.TrimRight(b.String(), "\n")
}

func modeFromString(s string) models.Mode {
	for _, mode := range models.Modes {
		if mode.String() == s {
			return mode
		}
	}
	return models.ModeFocus
}
