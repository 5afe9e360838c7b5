package tui

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ShimmerConfig holds configuration for the tip shimmer
type ShimmerConfig struct {
	Enabled        bool
	ReduceMotion   bool    // static highlight instead of a moving band
	SpeedMs        int     // frame interval
	WidthRatio     float64 // band width relative to the text
	CycleMs        int     // time for one sweep
	PauseBetweenMs int
}

// ShimmerState tracks the band position across frames
type ShimmerState struct {
	Center            float64
	LastUpdate        time.Time
	Active            bool
	Config            ShimmerConfig
	SupportsTrueColor bool
	IsPaused          bool
	PauseStartTime    time.Time
}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:        true,
		SpeedMs:        100,
		WidthRatio:     0.25,
		CycleMs:        2400,
		PauseBetweenMs: 1500,
	}
}

// NewShimmerState creates a new shimmer state
func NewShimmerState(config ShimmerConfig) *ShimmerState {
	return &ShimmerState{
		LastUpdate:        time.Now(),
		Active:            config.Enabled && !config.ReduceMotion,
		Config:            config,
		SupportsTrueColor: os.Getenv("COLORTERM") == "truecolor" || os.Getenv("COLORTERM") == "24bit",
	}
}

// Advance moves the band for a text of visibleLen runes
func (s *ShimmerState) Advance(now time.Time, visibleLen int) {
	if !s.Active || visibleLen <= 0 {
		return
	}
	if now.Sub(s.LastUpdate).Milliseconds() < int64(s.Config.SpeedMs) {
		return
	}
	defer func() { s.LastUpdate = now }()

	if s.IsPaused {
		if now.Sub(s.PauseStartTime).Milliseconds() >= int64(s.Config.PauseBetweenMs) {
			s.IsPaused = false
			s.Center = -float64(visibleLen) * s.Config.WidthRatio
		}
		return
	}

	framesPerCycle := float64(s.Config.CycleMs) / float64(s.Config.SpeedMs)
	distance := float64(visibleLen) * (1.0 + 2.0*s.Config.WidthRatio)
	s.Center += distance / framesPerCycle

	end := float64(visibleLen) * (1.0 + s.Config.WidthRatio)
	if s.Center >= end {
		s.IsPaused = true
		s.PauseStartTime = now
		s.Center = end
	}
}

// Reset restarts the sweep, e.g. when a new tip arrives
func (s *ShimmerState) Reset() {
	s.Center = 0
	s.LastUpdate = time.Now()
	s.IsPaused = false
	s.PauseStartTime = time.Time{}
}

// Render draws text with the band blended from base toward highlight
func (s *ShimmerState) Render(text string, maxWidth int, base, highlight string) string {
	runes := []rune(text)
	if maxWidth > 3 && len(runes) > maxWidth {
		runes = append(runes[:maxWidth-3], []rune("...")...)
	}
	if len(runes) == 0 {
		return ""
	}

	if !s.Active || !s.SupportsTrueColor {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(base)).Italic(true).Render(string(runes))
	}

	baseR, baseG, baseB := hexToRGB(base)
	hiR, hiG, hiB := hexToRGB(highlight)

	sigma := math.Max(1.0, s.Config.WidthRatio*float64(len(runes))/2.0)

	var b strings.Builder
	for i, char := range runes {
		dx := float64(i) - s.Center
		w := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		r := blend(baseR, hiR, w)
		g := blend(baseG, hiG, w)
		bl := blend(baseB, hiB, w)
		fmt.Fprintf(&b, "\033[3;38;2;%d;%d;%dm%c", r, g, bl, char)
	}
	b.WriteString("\033[0m")
	return b.String()
}

// Interval is the frame interval, zero when the shimmer is off
func (s *ShimmerState) Interval() time.Duration {
	if !s.Active {
		return 0
	}
	return time.Duration(s.Config.SpeedMs) * time.Millisecond
}

func blend(from, to int, w float64) int {
	return int(float64(from)*(1-w) + float64(to)*w)
}

// hexToRGB parses #RRGGBB; anything else is mid grey
func hexToRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 128, 128, 128
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 128, 128, 128
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
