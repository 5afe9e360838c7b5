package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/balkashynov/zentime/internal/db"
	"github.com/balkashynov/zentime/internal/pomodoro"
)

// PrintSummary writes the end-of-run report
func PrintSummary(w io.Writer, summary db.Summary, state pomodoro.State) {
	if summary.Total() == 0 {
		fmt.Fprintln(w, "👋 No intervals completed this time. See you soon.")
		return
	}

	fmt.Fprintf(w, "🍅 Focus sessions: %d (%s)\n", summary.FocusSessions, formatDuration(time.Duration(summary.FocusSeconds)*time.Second))
	fmt.Fprintf(w, "☕ Breaks: %d short, %d long (%s)\n", summary.ShortBreaks, summary.LongBreaks, formatDuration(time.Duration(summary.BreakSeconds)*time.Second))
	if summary.FirstCompletedAt != nil && summary.LastCompletedAt != nil {
		fmt.Fprintf(w, "🕒 %s – %s\n", summary.FirstCompletedAt.Local().Format("15:04"), summary.LastCompletedAt.Local().Format("15:04"))
	}
	if state.RemainingSeconds < state.TotalSeconds {
		fmt.Fprintf(w, "⏸️  Left %s with %s remaining\n", state.Mode.Label(), FormatClock(state.RemainingSeconds))
	}
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}
