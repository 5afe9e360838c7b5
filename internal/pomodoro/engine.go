package pomodoro

import (
	"io"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/balkashynov/zentime/internal/logfields"
	"github.com/balkashynov/zentime/internal/models"
)

// LongBreakEvery is the focus-session cycle length: every 4th completed focus
// session is followed by a long break.
const LongBreakEvery = 4

// Cue plays the completion sound.
type Cue interface {
	Play() error
}

// TipRequester asks for a fresh tip for a mode. It must not block.
type TipRequester interface {
	RequestTip(mode models.Mode)
}

// State is the single mutable source of truth of the timer.
type State struct {
	Mode                   models.Mode
	RemainingSeconds       int
	TotalSeconds           int // full length of the currently loaded countdown
	Running                bool
	CompletedFocusSessions int
}

// Options wires the engine to its collaborators. Nil fields get no-op defaults.
type Options struct {
	Scheduler Scheduler
	Cue       Cue
	Tips      TipRequester
	Clock     clockwork.Clock
	Logger    *slog.Logger
	Muted     bool
}

// Engine is the timer state machine. It is not safe for concurrent use: every
// call, including HandleTick, must come from one actor goroutine.
type Engine struct {
	store     *Store
	state     State
	sched     Scheduler
	cue       Cue
	tips      TipRequester
	clock     clockwork.Clock
	logger    *slog.Logger
	observers []Observer
	muted     bool

	completing bool
}

// New creates an idle engine in Focus mode with the full focus duration loaded.
func New(settings models.Settings, opts Options) *Engine {
	if opts.Scheduler == nil {
		opts.Scheduler = nopScheduler{}
	}
	if opts.Cue == nil {
		opts.Cue = nopCue{}
	}
	if opts.Tips == nil {
		opts.Tips = nopTips{}
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	engine := &Engine{
		store:  NewStore(settings),
		sched:  opts.Scheduler,
		cue:    opts.Cue,
		tips:   opts.Tips,
		clock:  opts.Clock,
		logger: opts.Logger,
		muted:  opts.Muted,
	}
	engine.state.Mode = models.ModeFocus
	engine.loadDuration()
	return engine
}

// Observe registers an observer. Observers run in registration order.
func (e *Engine) Observe(observer Observer) {
	e.observers = append(e.observers, observer)
}

// State returns a snapshot of the current state.
func (e *Engine) State() State {
	return e.state
}

// Settings returns the applied settings.
func (e *Engine) Settings() models.Settings {
	return e.store.Current()
}

// Progress returns the elapsed fraction of the loaded countdown in [0,1].
func (e *Engine) Progress() float64 {
	if e.state.TotalSeconds <= 0 {
		return 0
	}
	progress := float64(e.state.TotalSeconds-e.state.RemainingSeconds) / float64(e.state.TotalSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (e *Engine) Muted() bool { return e.muted }

func (e *Engine) SetMuted(muted bool) { e.muted = muted }

// ToggleMute flips the mute flag and returns the new value.
func (e *Engine) ToggleMute() bool {
	e.muted = !e.muted
	return e.muted
}

// Start runs the countdown if there is time left. Starting a running timer is a no-op.
func (e *Engine) Start() {
	if e.state.Running || e.state.RemainingSeconds <= 0 {
		return
	}
	e.state.Running = true
	e.sched.Arm()
	e.emit(Event{Type: EventStarted})
}

// Pause stops the countdown without touching the remaining time.
func (e *Engine) Pause() {
	e.sched.Cancel()
	if !e.state.Running {
		return
	}
	e.state.Running = false
	e.emit(Event{Type: EventPaused})
}

// Toggle is the start/pause control.
func (e *Engine) Toggle() {
	if e.state.Running {
		e.Pause()
		return
	}
	e.Start()
}

// Reset stops the countdown and reloads the full duration of the current mode.
func (e *Engine) Reset() {
	e.sched.Cancel()
	e.state.Running = false
	e.loadDuration()
	e.emit(Event{Type: EventReset})
}

// SwitchMode loads target's full duration and runs it when autoStart is set.
// Manual switches (autoStart false) refresh the tip.
func (e *Engine) SwitchMode(target models.Mode, autoStart bool) {
	e.switchMode(target, autoStart)
	if !autoStart {
		e.requestTip()
	}
}

// HandleTick applies a tick posted by the scheduler. Ticks from a cancelled
// or superseded schedule are dropped.
func (e *Engine) HandleTick(t Tick) {
	if !e.sched.Accept(t) {
		e.logger.Debug("Dropped stale tick", slog.Uint64("gen", t.Gen))
		return
	}
	e.Tick()
}

// Tick advances the countdown by one second. Reaching zero completes the
// interval exactly once; ticks while idle or already at zero do nothing.
func (e *Engine) Tick() {
	if !e.state.Running || e.completing {
		return
	}
	if e.state.RemainingSeconds <= 0 {
		e.state.RemainingSeconds = 0
		return
	}

	e.state.RemainingSeconds--
	e.emit(Event{Type: EventTick})

	if e.state.RemainingSeconds == 0 {
		e.complete()
		return
	}
	e.sched.Arm()
}

// ApplySettings stores new settings. An idle timer reloads the current mode's
// duration at once; a running countdown is left alone until the next reset or switch.
func (e *Engine) ApplySettings(next models.Settings) models.Settings {
	applied := e.store.Apply(next)
	if !e.state.Running {
		e.loadDuration()
	}
	e.emit(Event{Type: EventSettingsApplied, Settings: applied})
	return applied
}

// NextBreak returns the break that follows the n-th completed focus session.
func NextBreak(completedFocusSessions int) models.Mode {
	if completedFocusSessions > 0 && completedFocusSessions%LongBreakEvery == 0 {
		return models.ModeLongBreak
	}
	return models.ModeShortBreak
}

func (e *Engine) complete() {
	e.completing = true
	defer func() { e.completing = false }()

	finished := e.state.Mode
	planned := e.state.TotalSeconds

	e.state.Running = false
	e.sched.Cancel()
	e.playCue()

	settings := e.store.Current()
	if finished == models.ModeFocus {
		e.state.CompletedFocusSessions++
		e.switchMode(NextBreak(e.state.CompletedFocusSessions), settings.AutoStartBreaks)
	} else {
		e.switchMode(models.ModeFocus, settings.AutoStartFocus)
	}

	e.logger.Info("Interval completed",
		logfields.Mode(finished.String()),
		logfields.NextMode(e.state.Mode.String()),
		logfields.Tally(e.state.CompletedFocusSessions),
		logfields.Running(e.state.Running))

	e.emit(Event{Type: EventCompleted, Finished: finished, PlannedSeconds: planned})
	e.requestTip()
}

func (e *Engine) switchMode(target models.Mode, autoStart bool) {
	e.sched.Cancel()
	e.state.Mode = target
	e.loadDuration()
	e.state.Running = autoStart
	if autoStart {
		e.sched.Arm()
	}
	e.emit(Event{Type: EventModeSwitched})
}

func (e *Engine) loadDuration() {
	seconds := e.store.Current().SecondsFor(e.state.Mode)
	e.state.RemainingSeconds = seconds
	e.state.TotalSeconds = seconds
}

func (e *Engine) playCue() {
	if e.muted {
		return
	}
	if err := e.cue.Play(); err != nil {
		e.logger.Warn("Completion cue failed", logfields.Error(err))
		e.emit(Event{Type: EventCueFailed, Err: err})
	}
}

func (e *Engine) requestTip() {
	e.tips.RequestTip(e.state.Mode)
}

func (e *Engine) emit(event Event) {
	event.State = e.state
	event.At = e.clock.Now()
	for _, observer := range e.observers {
		observer(event)
	}
}

type nopScheduler struct{}

func (nopScheduler) Arm()             {}
func (nopScheduler) Cancel()          {}
func (nopScheduler) Accept(Tick) bool { return true }

type nopCue struct{}

func (nopCue) Play() error { return nil }

type nopTips struct{}

func (nopTips) RequestTip(models.Mode) {}
