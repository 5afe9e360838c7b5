package tips

import (
	"context"

	"github.com/balkashynov/zentime/internal/models"
)

// Fixed texts. The fallbacks are keyed by mode family (focus vs. break).
const (
	Placeholder   = "Your productivity sanctuary awaits."
	FallbackFocus = "Focus on one thing at a time."
	FallbackBreak = "Take a deep breath and relax."
	EmptyResponse = "Stay focused, you've got this."
)

// Source tells where a tip's text came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
	SourceStatic   Source = "static"
)

// Tip is a short display-only text for a mode.
type Tip struct {
	Mode   models.Mode
	Text   string
	Source Source
}

// Provider fetches a tip. Implementations never fail: errors become a fallback tip.
type Provider interface {
	FetchTip(ctx context.Context, mode models.Mode) Tip
}

// Fallback returns the fixed tip for the mode's family.
func Fallback(mode models.Mode) string {
	if mode.IsBreak() {
		return FallbackBreak
	}
	return FallbackFocus
}

// Static serves the fallback texts without any network access.
type Static struct{}

func (Static) FetchTip(_ context.Context, mode models.Mode) Tip {
	return Tip{Mode: mode, Text: Fallback(mode), Source: SourceStatic}
}
