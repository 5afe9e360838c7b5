package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/balkashynov/zentime/internal/app"
	"github.com/balkashynov/zentime/internal/config"
	"github.com/balkashynov/zentime/internal/logfields"
	"github.com/balkashynov/zentime/internal/pomodoro"
	"github.com/balkashynov/zentime/internal/tips"
)

// lineInput is a line read from the user
type lineInput string

// lineEOF reports that input is exhausted; the timer keeps running
type lineEOF struct{}

// RunLineMode drives the timer from plain text lines instead of the full-screen UI.
// It returns after a quit command or when ctx is cancelled.
func RunLineMode(ctx context.Context, opts RunOptions, in io.Reader, out io.Writer) error {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgs := make(chan any, 16)
	post := func(msg any) {
		select {
		case msgs <- msg:
		case <-ctx.Done():
		}
	}

	a, err := app.New(ctx, opts.appOptions(post))
	if err != nil {
		return err
	}
	a.Engine.Observe(func(ev pomodoro.Event) { printEvent(out, ev) })

	fmt.Fprintf(out, "zentime %s · %s · press enter to start, help for commands\n",
		a.Engine.State().Mode.Label(), FormatClock(a.Engine.State().RemainingSeconds))
	a.Start()

	go readLines(in, post)

	loop(ctx, a, msgs, out)

	cancel()
	summary, sumErr := a.Summary()
	if err := a.Close(); err != nil && opts.Logger != nil {
		opts.Logger.Warn("Failed to close journal", logfields.Error(err))
	}
	if sumErr != nil {
		return sumErr
	}
	PrintSummary(out, summary, a.Engine.State())
	return nil
}

func loop(ctx context.Context, a *app.App, msgs <-chan any, out io.Writer) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-msgs:
			switch msg := msg.(type) {
			case pomodoro.Tick:
				a.HandleTick(msg)
			case tips.Tip:
				a.DeliverTip(msg)
				fmt.Fprintf(out, "💡 %s\n", msg.Text)
			case lineEOF:
				// keep counting down until interrupted
			case lineInput:
				if quit := handleLine(a, string(msg), out); quit {
					return
				}
			}
		}
	}
}

func readLines(in io.Reader, post func(any)) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		post(lineInput(scanner.Text()))
	}
	post(lineEOF{})
}

func handleLine(a *app.App, line string, out io.Writer) bool {
	intent, err := ParseIntent(line)
	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		return false
	}

	engine := a.Engine
	switch intent.Kind {
	case IntentToggle:
		engine.Toggle()
	case IntentReset:
		engine.Reset()
	case IntentSwitch:
		engine.SwitchMode(intent.Mode, false)
	case IntentMute:
		if engine.ToggleMute() {
			fmt.Fprintln(out, "🔇 Sound off")
		} else {
			fmt.Fprintln(out, "🔔 Sound on")
		}
	case IntentSet:
		applied := engine.ApplySettings(intent.ApplyTo(engine.Settings()))
		fmt.Fprintf(out, "✅ Settings saved: focus %dm, short %dm, long %dm, auto-breaks %s, auto-focus %s\n",
			applied.FocusMinutes, applied.ShortBreakMinutes, applied.LongBreakMinutes,
			onOff(applied.AutoStartBreaks), onOff(applied.AutoStartFocus))
	case IntentStatus:
		fmt.Fprintln(out, statusLine(engine.State(), engine.Muted()))
	case IntentHelp:
		fmt.Fprintln(out, lineHelp)
	case IntentQuit:
		return true
	}
	return false
}

func printEvent(out io.Writer, ev pomodoro.Event) {
	state := ev.State
	switch ev.Type {
	case pomodoro.EventTick:
		if state.RemainingSeconds%60 == 0 || state.RemainingSeconds <= 5 {
			fmt.Fprintf(out, "⏱  %s %s\n", state.Mode.Label(), FormatClock(state.RemainingSeconds))
		}
	case pomodoro.EventStarted:
		fmt.Fprintf(out, "▶  %s started · %s\n", state.Mode.Label(), FormatClock(state.RemainingSeconds))
	case pomodoro.EventPaused:
		fmt.Fprintf(out, "⏸  Paused at %s\n", FormatClock(state.RemainingSeconds))
	case pomodoro.EventReset:
		fmt.Fprintf(out, "↺  %s reset · %s\n", state.Mode.Label(), FormatClock(state.RemainingSeconds))
	case pomodoro.EventModeSwitched:
		fmt.Fprintf(out, "⇄  %s · %s\n", state.Mode.Label(), FormatClock(state.RemainingSeconds))
	case pomodoro.EventCompleted:
		fmt.Fprintf(out, "🔔 %s complete · %d focus session%s done\n",
			ev.Finished.Label(), state.CompletedFocusSessions, plural(state.CompletedFocusSessions))
	case pomodoro.EventCueFailed:
		fmt.Fprintf(out, "⚠️  Could not play sound: %v\n", ev.Err)
	}
}

func statusLine(state pomodoro.State, muted bool) string {
	status := "Ready"
	if state.Running {
		status = "Session Active"
	}
	line := fmt.Sprintf("%s · %s · %s · %d focus session%s completed",
		state.Mode.Label(), FormatClock(state.RemainingSeconds), status,
		state.CompletedFocusSessions, plural(state.CompletedFocusSessions))
	if muted {
		line += " · muted"
	}
	return line
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
