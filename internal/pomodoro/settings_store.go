package pomodoro

import "github.com/balkashynov/zentime/internal/models"

// Store holds the applied Settings. Invalid durations are clamped, never rejected.
type Store struct {
	current models.Settings
}

// NewStore creates a store seeded with the given settings (clamped).
func NewStore(initial models.Settings) *Store {
	return &Store{current: initial.Clamped()}
}

// Apply replaces the held settings wholesale and returns what was stored.
func (s *Store) Apply(next models.Settings) models.Settings {
	s.current = next.Clamped()
	return s.current
}

// Current returns a copy of the held settings.
func (s *Store) Current() models.Settings {
	return s.current
}
