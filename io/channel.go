// Package io provides the display and input collaborators for the CHIP-8
// emulator. It includes a FIFO keypad of logical keys (Keypad), the QWERTY
// host keyboard layout, and a text mode framebuffer renderer (Screen).
package io

import (
	"github.com/ezrec/chip8/cpu"
)

// Display presents framebuffer snapshots to the user.
type Display interface {
	// Render presents the current framebuffer.
	Render(frame *cpu.Frame) error
}

// Input supplies logical key presses and quit requests.
type Input interface {
	// Poll collects pending host events. Returns quit once the user has
	// asked to stop.
	Poll() (quit bool, err error)
	// Key returns the next pressed logical key, if any.
	Key() (key cpu.Key, ok bool)
}
