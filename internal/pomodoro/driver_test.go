package pomodoro

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/zentime/internal/models"
)

func newTestDriver() (*Driver, *clockwork.FakeClock, chan Tick) {
	clock := clockwork.NewFakeClock()
	ticks := make(chan Tick, 8)
	driver := NewDriver(clock, time.Second, func(t Tick) { ticks <- t })
	return driver, clock, ticks
}

func receiveTick(t *testing.T, ticks <-chan Tick) Tick {
	t.Helper()
	select {
	case tick := <-ticks:
		return tick
	case <-time.After(time.Second):
		t.Fatal("expected a tick")
		return Tick{}
	}
}

func assertNoTick(t *testing.T, ticks <-chan Tick) {
	t.Helper()
	select {
	case tick := <-ticks:
		t.Fatalf("unexpected tick %+v", tick)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDriverFiresOncePerArm(t *testing.T) {
	driver, clock, ticks := newTestDriver()

	driver.Arm()
	assert.True(t, driver.Pending())
	clock.Advance(time.Second)

	tick := receiveTick(t, ticks)
	assert.True(t, driver.Accept(tick))
	assert.False(t, driver.Pending())

	// one-shot: nothing more without a new Arm
	clock.Advance(3 * time.Second)
	assertNoTick(t, ticks)
}

func TestDriverCancelStopsPendingCallback(t *testing.T) {
	driver, clock, ticks := newTestDriver()

	driver.Arm()
	driver.Cancel()
	assert.False(t, driver.Pending())

	clock.Advance(2 * time.Second)
	assertNoTick(t, ticks)
}

func TestDriverRearmKeepsSingleCallback(t *testing.T) {
	driver, clock, ticks := newTestDriver()

	driver.Arm()
	driver.Arm()
	clock.Advance(time.Second)

	tick := receiveTick(t, ticks)
	assert.Equal(t, uint64(2), tick.Gen)
	assert.True(t, driver.Accept(tick))
	assertNoTick(t, ticks)
}

func TestDriverRejectsTickThatRacedCancel(t *testing.T) {
	driver, clock, ticks := newTestDriver()

	driver.Arm()
	clock.Advance(time.Second)
	tick := receiveTick(t, ticks)

	// the callback fired but the actor cancelled before handling it
	driver.Cancel()
	assert.False(t, driver.Accept(tick))

	driver.Arm()
	assert.False(t, driver.Accept(tick))
}

func TestDriverDefaults(t *testing.T) {
	driver := NewDriver(nil, 0, func(Tick) {})
	assert.Equal(t, time.Second, driver.interval)
	assert.NotNil(t, driver.clock)
}

func TestEngineWithDriverCountsDown(t *testing.T) {
	driver, clock, ticks := newTestDriver()
	engine := New(models.Settings{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1}, Options{
		Scheduler: driver,
		Clock:     clock,
	})

	engine.Start()
	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		engine.HandleTick(receiveTick(t, ticks))
	}
	assert.Equal(t, 57, engine.State().RemainingSeconds)

	engine.Pause()
	clock.Advance(5 * time.Second)
	assertNoTick(t, ticks)
	require.Equal(t, 57, engine.State().RemainingSeconds)
}
