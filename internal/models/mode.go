package models

// Mode identifies which kind of interval the timer is counting down.
type Mode int

const (
	ModeFocus Mode = iota
	ModeShortBreak
	ModeLongBreak
)

// Modes lists every mode in tab order.
var Modes = []Mode{ModeFocus, ModeShortBreak, ModeLongBreak}

// String returns the stable identifier used in logs, metrics and the journal
func (m Mode) String() string {
	switch m {
	case ModeShortBreak:
		return "short_break"
	case ModeLongBreak:
		return "long_break"
	default:
		return "focus"
	}
}

// Label returns the human readable tab label
func (m Mode) Label() string {
	switch m {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

// IsBreak reports whether the mode is one of the recovery intervals
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}
