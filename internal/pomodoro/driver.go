package pomodoro

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Tick is posted by a Driver into the actor once per interval while armed.
type Tick struct {
	Gen uint64
}

// Scheduler is the tick source the engine drives.
type Scheduler interface {
	// Arm cancels any pending callback and schedules exactly one new one.
	Arm()
	// Cancel drops the pending callback, if any.
	Cancel()
	// Accept reports whether t belongs to the pending callback and consumes it.
	Accept(t Tick) bool
}

// Driver is a one-shot, re-armable tick source. Arm, Cancel and Accept must be
// called from the actor goroutine; the timer callback only posts a Tick.
type Driver struct {
	clock    clockwork.Clock
	interval time.Duration
	post     func(Tick)

	timer clockwork.Timer
	gen   uint64
	armed bool
}

// NewDriver creates a Driver that posts ticks through post every interval.
func NewDriver(clock clockwork.Clock, interval time.Duration, post func(Tick)) *Driver {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Driver{
		clock:    clock,
		interval: interval,
		post:     post,
	}
}

func (d *Driver) Arm() {
	d.stop()
	d.gen++
	d.armed = true

	tick := Tick{Gen: d.gen}
	post := d.post
	d.timer = d.clock.AfterFunc(d.interval, func() {
		post(tick)
	})
}

func (d *Driver) Cancel() {
	d.stop()
	// bump so a callback that already fired is rejected by Accept
	d.gen++
	d.armed = false
}

func (d *Driver) Accept(t Tick) bool {
	if !d.armed || t.Gen != d.gen {
		return false
	}
	d.armed = false
	d.timer = nil
	return true
}

// Pending reports whether a callback is scheduled.
func (d *Driver) Pending() bool {
	return d.armed
}

func (d *Driver) stop() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
