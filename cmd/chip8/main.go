// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"maps"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/emulator"
	"github.com/ezrec/chip8/internal"
	"github.com/ezrec/chip8/io"
	"github.com/ezrec/chip8/window"
)

func main() {
	var compile string
	var backend string
	var scale int
	var hz int
	var keys string
	var palette string
	var verbose bool
	var defines []string

	flag.StringVar(&compile, "c", "", "program listing to load")
	flag.StringVar(&backend, "b", "pixel", "backend: pixel, sdl or text")
	flag.IntVar(&scale, "s", window.DEFAULT_SCALE, "window scale")
	flag.IntVar(&hz, "hz", emulator.CYCLE_HZ, "cycles per second")
	flag.StringVar(&keys, "k", "", "QWERTY keys typed ahead into the keypad (text backend)")
	flag.StringVar(&palette, "p", "green", "palette: "+strings.Join(window.PaletteNames(), ", "))
	flag.Func("D", "loader predefine NAME=VALUE (repeatable)", func(s string) error {
		defines = append(defines, s)
		return nil
	})
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: no program listing (-c FILE)", os.Args[0])
	}

	pal, ok := window.Palettes[palette]
	if !ok {
		log.Fatalf("%v: unknown palette '%v'", os.Args[0], palette)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	ldr := &cpu.Loader{Verbose: verbose}
	predefines := maps.Collect(emu.Defines())
	for _, def := range defines {
		name, value, ok := strings.Cut(def, "=")
		if !ok || len(name) == 0 {
			log.Fatalf("-D %v: expected NAME=VALUE", def)
		}
		predefines[name] = value
	}
	for name, value := range predefines {
		ldr.Predefine(name, value)
	}

	if verbose {
		for _, name := range slices.Sorted(internal.IterSeq2Keys(maps.All(predefines))) {
			log.Printf("predefine: %v = %v", name, predefines[name])
		}
	}

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	prog, err := ldr.Parse(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	emu.Program = prog
	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	title := "chip8: " + compile

	switch backend {
	case "text":
		emu.Display = &io.Screen{Output: os.Stdout}
		err = emu.Keypad.Type(keys)
		if err != nil {
			log.Fatalf("-k %v: %v", keys, err)
		}
		emu.Keypad.QuitWhenEmpty = true
		run(emu, false)
		if emu.Waiting() {
			log.Fatalf("%v: keypad empty while waiting for a key", compile)
		}
	case "pixel":
		window.RunPixel(func() {
			px, err := window.NewPixel(title, float64(scale), pal)
			if err != nil {
				log.Fatalf("%v: %v", backend, err)
			}
			defer px.Close()

			clock := emulator.NewRealClock(hz)
			defer clock.Stop()

			emu.Display = px
			emu.Input = px
			emu.Clock = clock
			run(emu, true)
		})
	case "sdl":
		runtime.LockOSThread()

		sd, err := window.NewSDL(title, int32(scale), pal)
		if err != nil {
			log.Fatalf("%v: %v", backend, err)
		}
		defer sd.Close()

		clock := emulator.NewRealClock(hz)
		defer clock.Stop()

		emu.Display = sd
		emu.Input = sd
		emu.Clock = clock
		run(emu, true)
	default:
		log.Fatalf("%v: unknown backend '%v'", os.Args[0], backend)
	}
}

// run executes the program, then optionally keeps the window open until
// the user quits.
func run(emu *emulator.Emulator, linger bool) {
	err := emu.Run()
	if err != nil {
		log.Printf("%v", emu.Chip8.String())
		log.Fatal(err)
	}

	if emu.Verbose {
		log.Printf("emulator: %d instructions", emu.Ticks())
	}

	if linger && emu.Halted() {
		err = emu.Linger()
		if err != nil {
			log.Fatal(err)
		}
	}
}
