package tips

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/balkashynov/zentime/internal/logfields"
	"github.com/balkashynov/zentime/internal/models"
)

const (
	DefaultModel       = "gemini-2.5-flash"
	defaultTemperature = float32(0.8)

	focusPrompt = "Give a short, powerful, 1-sentence motivational focus tip for someone starting a productivity session."
	breakPrompt = "Give a short, 1-sentence tip on how to effectively recharge during a quick break."
)

// generator is the part of *genai.Models the provider uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiOptions tunes the Gemini provider.
type GeminiOptions struct {
	Model       string
	Temperature float32
	Logger      *slog.Logger
}

// Gemini fetches tips from the Gemini text-generation API. Single attempt, no retries.
type Gemini struct {
	models      generator
	model       string
	temperature float32
	logger      *slog.Logger
}

// NewGemini creates a Gemini provider authenticated with apiKey.
func NewGemini(ctx context.Context, apiKey string, opts GeminiOptions) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newGemini(client.Models, opts), nil
}

func newGemini(gen generator, opts GeminiOptions) *Gemini {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Temperature <= 0 {
		opts.Temperature = defaultTemperature
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Gemini{
		models:      gen,
		model:       opts.Model,
		temperature: opts.Temperature,
		logger:      opts.Logger,
	}
}

func (g *Gemini) FetchTip(ctx context.Context, mode models.Mode) Tip {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(promptFor(mode)), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	})
	if err != nil {
		g.logger.Warn("Tip generation failed, using fallback",
			logfields.Mode(mode.String()),
			logfields.Error(err))
		return Tip{Mode: mode, Text: Fallback(mode), Source: SourceFallback}
	}

	text := ""
	if resp != nil {
		text = strings.TrimSpace(resp.Text())
	}
	if text == "" {
		return Tip{Mode: mode, Text: EmptyResponse, Source: SourceModel}
	}
	return Tip{Mode: mode, Text: text, Source: SourceModel}
}

func promptFor(mode models.Mode) string {
	if mode == models.ModeFocus {
		return focusPrompt
	}
	return breakPrompt
}
