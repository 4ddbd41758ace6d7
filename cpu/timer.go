package cpu

import (
	"time"
)

const (
	TIMER_HZ     = 60                     // Delay timer decrement rate.
	TIMER_PERIOD = time.Second / TIMER_HZ // Time between decrements.
)

// Timer is a countdown register decremented at TIMER_HZ until it reaches zero.
type Timer struct {
	Value uint8

	elapsed time.Duration // Time accumulated towards the next decrement.
}

// Set loads the timer.
func (tm *Timer) Set(value uint8) {
	tm.Value = value
}

// Tick decrements the timer once, stopping at zero.
func (tm *Timer) Tick() {
	if tm.Value > 0 {
		tm.Value--
	}
}

// Advance accumulates wall-clock time, and ticks once for every full
// TIMER_PERIOD elapsed. Returns the number of periods consumed.
func (tm *Timer) Advance(dt time.Duration) (ticks int) {
	if dt <= 0 {
		return
	}

	tm.elapsed += dt
	for tm.elapsed >= TIMER_PERIOD {
		tm.elapsed -= TIMER_PERIOD
		tm.Tick()
		ticks++
	}

	return
}

// Reset zeroes the timer and its accumulated time.
func (tm *Timer) Reset() {
	tm.Value = 0
	tm.elapsed = 0
}
