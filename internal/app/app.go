package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/balkashynov/zentime/internal/config"
	"github.com/balkashynov/zentime/internal/cue"
	"github.com/balkashynov/zentime/internal/db"
	"github.com/balkashynov/zentime/internal/logfields"
	"github.com/balkashynov/zentime/internal/metrics"
	"github.com/balkashynov/zentime/internal/models"
	"github.com/balkashynov/zentime/internal/pomodoro"
	"github.com/balkashynov/zentime/internal/tips"
)

// Options are the collaborators an App is built from. Zero values get
// production defaults.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	Clock  clockwork.Clock

	// Post hands a message to the actor goroutine. Ticks and tips arrive through it.
	Post func(msg any)

	// Provider overrides the tip provider chosen from Config.
	Provider tips.Provider
	// Cue overrides the completion cue.
	Cue pomodoro.Cue
	// CueOut forces the terminal bell on this writer instead of the speaker.
	CueOut io.Writer
	// Registry enables Prometheus metrics when set.
	Registry *prom.Registry
}

// App owns one timer run: the engine and everything observing it.
type App struct {
	RunID  string
	Engine *pomodoro.Engine

	cfg       *config.Config
	logger    *slog.Logger
	driver    *pomodoro.Driver
	refresher *tips.Refresher
	journal   *db.Journal
	recorder  metrics.Recorder
	tip       tips.Tip
}

// New wires an engine to its driver, tips, journal, metrics and logging.
func New(ctx context.Context, opts Options) (*App, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Post == nil {
		return nil, fmt.Errorf("app needs a post function")
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	runID := uuid.NewString()
	logger := opts.Logger.With(logfields.RunID(runID))

	if opts.Cue == nil {
		if opts.CueOut != nil {
			opts.Cue = cue.NewBell(opts.CueOut)
		} else {
			opts.Cue = cue.Open(os.Stderr, logger)
		}
	}

	journal, err := db.Open(db.MemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	provider := opts.Provider
	if provider == nil {
		provider, err = providerFor(ctx, opts.Config, logger)
		if err != nil {
			_ = journal.Close()
			return nil, err
		}
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if opts.Registry != nil {
		recorder = metrics.NewPrometheusRecorder(opts.Registry)
	}

	a := &App{
		RunID:    runID,
		cfg:      opts.Config,
		logger:   logger,
		journal:  journal,
		recorder: recorder,
		tip:      tips.Tip{Mode: models.ModeFocus, Text: tips.Placeholder, Source: tips.SourceStatic},
	}

	post := opts.Post
	a.driver = pomodoro.NewDriver(opts.Clock, time.Second, func(t pomodoro.Tick) { post(t) })
	a.refresher = tips.NewRefresher(provider, opts.Config.Tips.Timeout, func(tip tips.Tip) { post(tip) })

	a.Engine = pomodoro.New(opts.Config.Timer, pomodoro.Options{
		Scheduler: a.driver,
		Cue:       opts.Cue,
		Tips:      a.refresher,
		Clock:     opts.Clock,
		Logger:    logger,
		Muted:     opts.Config.Muted,
	})
	a.Engine.Observe(a.logEvent)
	a.Engine.Observe(a.recordMetrics)
	a.Engine.Observe(a.recordInterval)

	logger.Info("Timer ready",
		logfields.Mode(a.Engine.State().Mode.String()),
		logfields.Remaining(a.Engine.State().RemainingSeconds))

	return a, nil
}

func providerFor(ctx context.Context, cfg *config.Config, logger *slog.Logger) (tips.Provider, error) {
	if !cfg.TipsAvailable() {
		logger.Info("Using static tips", logfields.Source(string(tips.SourceStatic)))
		return tips.Static{}, nil
	}
	gemini, err := tips.NewGemini(ctx, cfg.Tips.APIKey, tips.GeminiOptions{
		Model:  cfg.Tips.Model,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create tip provider: %w", err)
	}
	return gemini, nil
}

// Start asks for the opening tip. Call it once the actor is receiving posts.
func (a *App) Start() {
	a.refresher.RequestTip(a.Engine.State().Mode)
}

// Tip is the tip currently on display.
func (a *App) Tip() tips.Tip {
	return a.tip
}

// DeliverTip installs a fetched tip. The most recently delivered tip wins,
// even when it was requested for an earlier mode.
func (a *App) DeliverTip(tip tips.Tip) {
	a.tip = tip
	a.recorder.IncTipResult(string(tip.Source))
	a.logger.Debug("Tip delivered",
		logfields.Mode(tip.Mode.String()),
		logfields.Source(string(tip.Source)))
}

// HandleTick forwards a posted tick to the engine.
func (a *App) HandleTick(t pomodoro.Tick) {
	a.Engine.HandleTick(t)
}

// Summary totals the intervals completed so far in this run.
func (a *App) Summary() (db.Summary, error) {
	return a.journal.Summarize(a.RunID)
}

// Recent returns the latest completed intervals, newest first.
func (a *App) Recent(limit int) ([]models.Interval, error) {
	return a.journal.Recent(a.RunID, limit)
}

// Close stops the countdown, cancels in-flight tip fetches and closes the journal.
// Post must not block once the actor has stopped receiving.
func (a *App) Close() error {
	a.Engine.Pause()
	a.refresher.Stop()
	return a.journal.Close()
}

func (a *App) logEvent(ev pomodoro.Event) {
	switch ev.Type {
	case pomodoro.EventTick:
		a.logger.Debug("Tick", logfields.Remaining(ev.State.RemainingSeconds))
	case pomodoro.EventCompleted, pomodoro.EventCueFailed:
		// logged by the engine
	case pomodoro.EventSettingsApplied:
		a.logger.Info("Settings applied",
			"focus_minutes", ev.Settings.FocusMinutes,
			"short_break_minutes", ev.Settings.ShortBreakMinutes,
			"long_break_minutes", ev.Settings.LongBreakMinutes,
			"auto_start_breaks", ev.Settings.AutoStartBreaks,
			"auto_start_focus", ev.Settings.AutoStartFocus)
	default:
		a.logger.Info("Timer "+string(ev.Type),
			logfields.Mode(ev.State.Mode.String()),
			logfields.Remaining(ev.State.RemainingSeconds),
			logfields.Running(ev.State.Running))
	}
}

func (a *App) recordMetrics(ev pomodoro.Event) {
	if ev.Type != pomodoro.EventTick {
		a.recorder.IncTransition(string(ev.Type))
	}
	switch ev.Type {
	case pomodoro.EventCompleted:
		a.recorder.IncCompletion(ev.Finished.String())
	case pomodoro.EventCueFailed:
		a.recorder.IncCueFailure()
	}
	a.recorder.SetRemaining(ev.State.RemainingSeconds)
	a.recorder.SetFocusTally(ev.State.CompletedFocusSessions)
	a.recorder.SetRunning(ev.State.Running)
}

func (a *App) recordInterval(ev pomodoro.Event) {
	if ev.Type != pomodoro.EventCompleted {
		return
	}
	interval := &models.Interval{
		RunID:          a.RunID,
		Mode:           ev.Finished.String(),
		PlannedSeconds: ev.PlannedSeconds,
		CompletedAt:    ev.At,
		FocusTally:     ev.State.CompletedFocusSessions,
		NextMode:       ev.State.Mode.String(),
		AutoStarted:    ev.State.Running,
	}
	if err := a.journal.Record(interval); err != nil {
		a.logger.Warn("Failed to journal interval", logfields.Error(err))
	}
}
