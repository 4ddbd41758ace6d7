package emulator

import (
	"time"
)

// Clock paces the emulator run loop, and measures the wall-clock time
// that drives the delay timer.
type Clock interface {
	// Delta returns the time elapsed since the previous call.
	Delta() time.Duration
	// Pace blocks until the next cycle is due.
	Pace()
}

// FixedClock advances by Step on every Delta, and never blocks.
type FixedClock struct {
	Step time.Duration
}

var _ Clock = (*FixedClock)(nil)

func (fc *FixedClock) Delta() time.Duration {
	return fc.Step
}

func (fc *FixedClock) Pace() {
}

// RealClock runs at a fixed cycle rate, measured against the host clock.
type RealClock struct {
	ticker *time.Ticker
	last   time.Time
}

var _ Clock = (*RealClock)(nil)

// NewRealClock creates a clock pacing hz cycles per second.
func NewRealClock(hz int) (rc *RealClock) {
	if hz <= 0 {
		hz = CYCLE_HZ
	}

	rc = &RealClock{
		ticker: time.NewTicker(time.Second / time.Duration(hz)),
	}

	return
}

// Delta returns the host time since the previous call. The first call
// returns zero.
func (rc *RealClock) Delta() (dt time.Duration) {
	now := time.Now()
	if !rc.last.IsZero() {
		dt = now.Sub(rc.last)
	}
	rc.last = now

	return
}

// Pace waits for the next tick of the cycle rate.
func (rc *RealClock) Pace() {
	<-rc.ticker.C
}

// Stop releases the clock ticker.
func (rc *RealClock) Stop() {
	rc.ticker.Stop()
}
