package pomodoro

import (
	"time"

	"github.com/balkashynov/zentime/internal/models"
)

// EventType names an engine transition.
type EventType string

const (
	EventStarted         EventType = "started"
	EventPaused          EventType = "paused"
	EventReset           EventType = "reset"
	EventModeSwitched    EventType = "mode_switched"
	EventTick            EventType = "tick"
	EventCompleted       EventType = "completed"
	EventSettingsApplied EventType = "settings_applied"
	EventCueFailed       EventType = "cue_failed"
)

// Event is delivered synchronously to observers after the state has changed.
type Event struct {
	Type  EventType
	State State
	At    time.Time

	// Set on EventCompleted.
	Finished       models.Mode
	PlannedSeconds int

	// Set on EventSettingsApplied.
	Settings models.Settings

	// Set on EventCueFailed.
	Err error
}

// Observer receives engine events on the actor goroutine. It must not call back into the engine.
type Observer func(Event)
