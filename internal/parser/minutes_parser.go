package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/zentime/internal/models"
)

// ErrTooLong is returned for durations above models.MaxMinutes.
var ErrTooLong = fmt.Errorf("duration is longer than %d minutes", models.MaxMinutes)

var (
	plainMinutesRegex = regexp.MustCompile(`^(\d+)$`)
	unitMinutesRegex  = regexp.MustCompile(`^(\d+)\s*(m|min|mins|minute|minutes)$`)
	unitHoursRegex    = regexp.MustCompile(`^(\d+)\s*(h|hr|hrs|hour|hours)$`)
)

// ParseMinutes parses a duration field into whole minutes
// Supported formats:
// - plain integers (e.g., "25")
// - X minutes (e.g., "25m", "25 min", "45 minutes")
// - X hours (e.g., "1h", "2 hours")
// - Go durations (e.g., "1h30m", "90m"); seconds round up to the next minute
func ParseMinutes(input string) (int, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("duration is empty")
	}

	if matches := plainMinutesRegex.FindStringSubmatch(input); matches != nil {
		return positive(matches[1], 1)
	}
	if matches := unitMinutesRegex.FindStringSubmatch(input); matches != nil {
		return positive(matches[1], 1)
	}
	if matches := unitHoursRegex.FindStringSubmatch(input); matches != nil {
		return positive(matches[1], 60)
	}

	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q. Use: 25, 25m, 1h or 1h30m", input)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	if d > time.Duration(models.MaxMinutes)*time.Minute {
		return 0, ErrTooLong
	}
	minutes := int((d + time.Minute - 1) / time.Minute)
	return minutes, nil
}

// ForgivingMinutes parses input like ParseMinutes but never fails: anything
// too long becomes models.MaxMinutes, anything else unparseable becomes 1
func ForgivingMinutes(input string) int {
	minutes, err := ParseMinutes(input)
	if errors.Is(err, ErrTooLong) {
		return models.MaxMinutes
	}
	if err != nil || minutes < 1 {
		return 1
	}
	return minutes
}

func positive(digits string, scale int) (int, error) {
	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrTooLong
	}
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", digits)
	}
	if n <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	if n > models.MaxMinutes/scale {
		return 0, ErrTooLong
	}
	return n * scale, nil
}
