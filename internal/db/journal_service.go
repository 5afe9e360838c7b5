package db

import (
	"fmt"
	"time"

	"github.com/balkashynov/zentime/internal/models"
)

// Summary aggregates the intervals completed during one run
type Summary struct {
	RunID            string
	FocusSessions    int
	ShortBreaks      int
	LongBreaks       int
	FocusSeconds     int
	BreakSeconds     int
	FirstCompletedAt *time.Time
	LastCompletedAt  *time.Time
}

// Total returns the number of completed intervals of any mode
func (s Summary) Total() int {
	return s.FocusSessions + s.ShortBreaks + s.LongBreaks
}

// Record stores a completed interval
func (j *Journal) Record(interval *models.Interval) error {
	if interval.RunID == "" {
		return fmt.Errorf("interval has no run id")
	}
	if interval.CompletedAt.IsZero() {
		interval.CompletedAt = time.Now()
	}
	if err := j.db.Create(interval).Error; err != nil {
		return fmt.Errorf("failed to record interval: %w", err)
	}
	return nil
}

// Intervals returns the run's intervals in completion order
func (j *Journal) Intervals(runID string) ([]models.Interval, error) {
	var intervals []models.Interval

	err := j.db.Where("run_id = ?", runID).
		Order("completed_at ASC").
		Order("id ASC").
		Find(&intervals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list intervals: %w", err)
	}

	return intervals, nil
}

// Recent returns up to limit of the run's latest intervals, newest first
func (j *Journal) Recent(runID string, limit int) ([]models.Interval, error) {
	var intervals []models.Interval

	err := j.db.Where("run_id = ?", runID).
		Order("completed_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&intervals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent intervals: %w", err)
	}

	return intervals, nil
}

type modeTotal struct {
	Mode    string
	Count   int
	Seconds int
}

// Summarize totals the run's intervals per mode
func (j *Journal) Summarize(runID string) (Summary, error) {
	summary := Summary{RunID: runID}

	var totals []modeTotal
	err := j.db.Model(&models.Interval{}).
		Select("mode, COUNT(*) AS count, COALESCE(SUM(planned_seconds), 0) AS seconds").
		Where("run_id = ?", runID).
		Group("mode").
		Scan(&totals).Error
	if err != nil {
		return summary, fmt.Errorf("failed to summarize run: %w", err)
	}

	for _, total := range totals {
		switch total.Mode {
		case models.ModeFocus.String():
			summary.FocusSessions = total.Count
			summary.FocusSeconds += total.Seconds
		case models.ModeShortBreak.String():
			summary.ShortBreaks = total.Count
			summary.BreakSeconds += total.Seconds
		case models.ModeLongBreak.String():
			summary.LongBreaks = total.Count
			summary.BreakSeconds += total.Seconds
		}
	}

	if summary.Total() == 0 {
		return summary, nil
	}

	intervals, err := j.Intervals(runID)
	if err != nil {
		return summary, err
	}
	first := intervals[0].CompletedAt
	last := intervals[len(intervals)-1].CompletedAt
	summary.FirstCompletedAt = &first
	summary.LastCompletedAt = &last

	return summary, nil
}
