package models

// MaxMinutes caps every interval at one day.
const MaxMinutes = 24 * 60

// Settings holds the user configured interval lengths and auto-advance flags.
type Settings struct {
	FocusMinutes      int  `yaml:"focus_minutes" json:"focus_minutes"`
	ShortBreakMinutes int  `yaml:"short_break_minutes" json:"short_break_minutes"`
	LongBreakMinutes  int  `yaml:"long_break_minutes" json:"long_break_minutes"`
	AutoStartBreaks   bool `yaml:"auto_start_breaks" json:"auto_start_breaks"`
	AutoStartFocus    bool `yaml:"auto_start_focus" json:"auto_start_focus"`
}

// DefaultSettings returns the classic 25/5/15 schedule with manual advance
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		AutoStartBreaks:   false,
		AutoStartFocus:    false,
	}
}

// MinutesFor returns the configured length of the given mode in minutes
func (s Settings) MinutesFor(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return s.ShortBreakMinutes
	case ModeLongBreak:
		return s.LongBreakMinutes
	default:
		return s.FocusMinutes
	}
}

// SecondsFor returns the full countdown length of the given mode
func (s Settings) SecondsFor(mode Mode) int {
	return s.MinutesFor(mode) * 60
}

// Clamped returns a copy with every duration kept within 1..MaxMinutes
func (s Settings) Clamped() Settings {
	s.FocusMinutes = clampMinutes(s.FocusMinutes)
	s.ShortBreakMinutes = clampMinutes(s.ShortBreakMinutes)
	s.LongBreakMinutes = clampMinutes(s.LongBreakMinutes)
	return s
}

func clampMinutes(minutes int) int {
	if minutes < 1 {
		return 1
	}
	if minutes > MaxMinutes {
		return MaxMinutes
	}
	return minutes
}
