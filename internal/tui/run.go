package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/balkashynov/zentime/internal/app"
	"github.com/balkashynov/zentime/internal/config"
	"github.com/balkashynov/zentime/internal/logfields"
	"github.com/balkashynov/zentime/internal/tips"
)

// RunOptions configures a timer session
type RunOptions struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *prom.Registry

	// Overrides for tests
	Provider tips.Provider
	Clock    clockwork.Clock
	CueOut   io.Writer
}

func (o RunOptions) appOptions(post func(any)) app.Options {
	return app.Options{
		Config:   o.Config,
		Logger:   o.Logger,
		Clock:    o.Clock,
		Post:     post,
		Provider: o.Provider,
		Registry: o.Registry,
		CueOut:   o.CueOut,
	}
}

// RunTimerTUI starts the interactive timer and prints the run summary once it exits
func RunTimerTUI(ctx context.Context, opts RunOptions) error {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}

	var program *tea.Program
	a, err := app.New(ctx, opts.appOptions(func(msg any) { program.Send(msg) }))
	if err != nil {
		return err
	}

	model := NewTimerModel(a, ThemeFor(opts.Config.Theme))
	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	a.Start()

	_, runErr := program.Run()

	summary, sumErr := a.Summary()
	if err := a.Close(); err != nil && opts.Logger != nil {
		opts.Logger.Warn("Failed to close journal", logfields.Error(err))
	}

	// A cancelled context is how the process is asked to stop, not a failure
	if runErr != nil && ctx.Err() == nil {
		return fmt.Errorf("timer ui: %w", runErr)
	}

	if sumErr != nil {
		fmt.Printf("❌ Error: %v\n", sumErr)
		return nil
	}
	PrintSummary(os.Stdout, summary, a.Engine.State())
	return nil
}
