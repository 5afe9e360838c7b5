package tui

import (
	"fmt"
	"strings"

	"github.com/balkashynov/zentime/internal/models"
	"github.com/balkashynov/zentime/internal/parser"
)

// IntentKind is a line-mode command
type IntentKind int

const (
	IntentToggle IntentKind = iota
	IntentReset
	IntentSwitch
	IntentMute
	IntentSet
	IntentStatus
	IntentHelp
	IntentQuit
)

// Intent is one parsed line of line-mode input
type Intent struct {
	Kind  IntentKind
	Mode  models.Mode
	Field SettingsField
	Value string
}

const lineHelp = `commands:
  enter, p     start / pause
  r            reset
  1, 2, 3      focus, short break, long break
  m            mute / unmute
  set <field> <value>
               focus|short|long <minutes>, auto-breaks|auto-focus on|off
  status       show the timer
  q            quit`

// ParseIntent parses a line of input. An empty line toggles the timer.
func ParseIntent(line string) (Intent, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Intent{Kind: IntentToggle}, nil
	}

	switch fields[0] {
	case "p", "space", "start", "pause":
		return Intent{Kind: IntentToggle}, nil
	case "r", "reset":
		return Intent{Kind: IntentReset}, nil
	case "1", "focus":
		return Intent{Kind: IntentSwitch, Mode: models.ModeFocus}, nil
	case "2", "short":
		return Intent{Kind: IntentSwitch, Mode: models.ModeShortBreak}, nil
	case "3", "long":
		return Intent{Kind: IntentSwitch, Mode: models.ModeLongBreak}, nil
	case "m", "mute":
		return Intent{Kind: IntentMute}, nil
	case "status":
		return Intent{Kind: IntentStatus}, nil
	case "h", "help", "?":
		return Intent{Kind: IntentHelp}, nil
	case "q", "quit", "exit":
		return Intent{Kind: IntentQuit}, nil
	case "set":
		return parseSet(fields[1:])
	}
	return Intent{}, fmt.Errorf("unknown command %q (try help)", fields[0])
}

func parseSet(args []string) (Intent, error) {
	if len(args) != 2 {
		return Intent{}, fmt.Errorf("usage: set <field> <value>")
	}

	fields := map[string]SettingsField{
		"focus":       FieldFocus,
		"short":       FieldShortBreak,
		"long":        FieldLongBreak,
		"auto-breaks": FieldAutoBreaks,
		"auto-focus":  FieldAutoFocus,
	}
	field, ok := fields[args[0]]
	if !ok {
		return Intent{}, fmt.Errorf("unknown setting %q", args[0])
	}
	return Intent{Kind: IntentSet, Field: field, Value: args[1]}, nil
}

// ApplyTo returns settings with the intent's field changed
func (i Intent) ApplyTo(s models.Settings) models.Settings {
	switch i.Field {
	case FieldFocus:
		s.FocusMinutes = parser.ForgivingMinutes(i.Value)
	case FieldShortBreak:
		s.ShortBreakMinutes = parser.ForgivingMinutes(i.Value)
	case FieldLongBreak:
		s.LongBreakMinutes = parser.ForgivingMinutes(i.Value)
	case FieldAutoBreaks:
		s.AutoStartBreaks = parseOn(i.Value)
	case FieldAutoFocus:
		s.AutoStartFocus = parseOn(i.Value)
	}
	return s
}

func parseOn(value string) bool {
	switch value {
	case "on", "true", "yes", "y", "1":
		return true
	}
	return false
}
