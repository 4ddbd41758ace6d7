// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/internal"
	"github.com/ezrec/chip8/io"
)

const (
	CYCLE_HZ = 60 // Default instruction rate, in cycles per second.
)

var _emulator_defines = map[string]string{
	"TIMER_HZ":  fmt.Sprintf("%X", cpu.TIMER_HZ),
	"KEY_COUNT": fmt.Sprintf("%X", cpu.KEY_COUNT),
}

// Emulator state. CPU + program listing + display and input.
type Emulator struct {
	Verbose    bool         // If set, enables verbose logging.
	*cpu.Chip8              // Reference to the CPU simulation.
	Program    *cpu.Program // Reference to the currently running program listing.

	Display io.Display // Frame output. Optional.
	Input   io.Input   // Key input. Defaults to Keypad.
	Clock   Clock      // Run loop pacing. Defaults to one timer period per cycle.

	Keypad io.Keypad // Default keypad input.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Chip8:   cpu.NewChip8(),
		Program: &cpu.Program{},
	}

	emu.Input = &emu.Keypad
	emu.Clock = &FixedClock{Step: cpu.TIMER_PERIOD}

	return
}

// Defines returns an iterator over all of the loader predefines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		cpu.Defines(),
	)
}

// Reset the CPU, and load the program listing into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Chip8.Verbose = emu.Verbose
	emu.Chip8.Reset()

	err = emu.Program.Load(&emu.Chip8.Memory)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d bytes", emu.Program.Size())
	}

	return
}

// Ticks returns the total executed instructions since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Chip8.Ticks
}

// LineNo returns the listing line number of the instruction at PC, or 0
// if no line placed it.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Chip8.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
//
// While the CPU waits on a key, a tick consumes at most one key from
// Input. Returns done at the end of the program.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Chip8.Verbose = emu.Verbose

	if emu.Chip8.Halted() {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.Chip8.Waiting() {
		if emu.Input == nil {
			return
		}
		key, ok := emu.Input.Key()
		if !ok {
			return
		}
		err = emu.Chip8.PressKey(key)
		return
	}

	err = emu.Chip8.Cycle()
	if errors.Is(err, cpu.ErrProgramEnd) {
		err = nil
		done = true
		return
	}

	return
}

// render presents the framebuffer, if there is a display.
func (emu *Emulator) render() (err error) {
	if emu.Display == nil {
		return
	}

	err = emu.Display.Render(&emu.Chip8.Memory.Framebuffer)
	return
}

// poll checks for a quit request, if there is an input.
func (emu *Emulator) poll() (quit bool, err error) {
	if emu.Input == nil {
		return
	}

	quit, err = emu.Input.Poll()
	return
}

// Run ticks the emulator until the program ends, faults, or the input
// requests quit. Each cycle advances the delay timer by the clock delta,
// presents the framebuffer, and polls input before executing.
func (emu *Emulator) Run() (err error) {
	for {
		emu.Chip8.Delay.Advance(emu.Clock.Delta())

		err = emu.render()
		if err != nil {
			return
		}

		var quit bool
		quit, err = emu.poll()
		if err != nil || quit {
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		if done {
			err = emu.render()
			return
		}

		emu.Clock.Pace()
	}
}

// Linger keeps presenting the final frame until the input requests quit.
func (emu *Emulator) Linger() (err error) {
	if emu.Input == nil {
		return
	}

	for {
		err = emu.render()
		if err != nil {
			return
		}

		var quit bool
		quit, err = emu.poll()
		if err != nil || quit {
			return
		}

		emu.Clock.Pace()
	}
}
