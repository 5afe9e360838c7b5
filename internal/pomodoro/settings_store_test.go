package pomodoro

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/zentime/internal/models"
)

func TestStoreApplyClampsDurations(t *testing.T) {
	tests := []struct {
		name string
		in   models.Settings
		want models.Settings
	}{
		{
			name: "valid values pass through",
			in:   models.Settings{FocusMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30, AutoStartBreaks: true},
			want: models.Settings{FocusMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30, AutoStartBreaks: true},
		},
		{
			name: "zero and negative clamp to one",
			in:   models.Settings{FocusMinutes: 0, ShortBreakMinutes: -5, LongBreakMinutes: 0, AutoStartFocus: true},
			want: models.Settings{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, AutoStartFocus: true},
		},
		{
			name: "oversized values clamp to one day",
			in:   models.Settings{FocusMinutes: 200000000000000000, ShortBreakMinutes: 1441, LongBreakMinutes: models.MaxMinutes},
			want: models.Settings{FocusMinutes: models.MaxMinutes, ShortBreakMinutes: models.MaxMinutes, LongBreakMinutes: models.MaxMinutes},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(models.DefaultSettings())
			got := store.Apply(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, store.Current())
		})
	}
}

func TestNewStoreClampsInitial(t *testing.T) {
	store := NewStore(models.Settings{})
	assert.Equal(t, 1, store.Current().FocusMinutes)
}
