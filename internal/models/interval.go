package models

import (
	"time"

	"gorm.io/gorm"
)

// Interval is a journal row for one countdown that reached zero
type Interval struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RunID          string    `gorm:"index;not null" json:"run_id"`
	Mode           string    `gorm:"not null" json:"mode"` // focus, short_break, long_break
	PlannedSeconds int       `json:"planned_seconds"`
	CompletedAt    time.Time `gorm:"not null" json:"completed_at"`
	FocusTally     int       `json:"focus_tally"` // completed focus sessions after this interval
	NextMode       string    `json:"next_mode"`
	AutoStarted    bool      `json:"auto_started"` // whether NextMode began running immediately
}
