package window

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/io"
)

// SDL is an SDL2 window Display and Input.
type SDL struct {
	Palette Palette
	Scale   int32

	io.Keypad // Keys pressed since the last Poll.

	window   *sdl.Window
	renderer *sdl.Renderer
}

var _ io.Display = (*SDL)(nil)
var _ io.Input = (*SDL)(nil)

// NewSDL initializes SDL video, and opens a window of the framebuffer
// size times scale.
func NewSDL(title string, scale int32, pal Palette) (sd *SDL, err error) {
	if scale <= 0 {
		scale = DEFAULT_SCALE
	}

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		cpu.SCREEN_WIDTH*scale, cpu.SCREEN_HEIGHT*scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return
	}

	sd = &SDL{
		Palette:  pal,
		Scale:    scale,
		window:   window,
		renderer: renderer,
	}

	return
}

// frameRects returns the screen rectangle of every lit pixel.
func frameRects(frame *cpu.Frame, scale int32) (rects []sdl.Rect) {
	for y := range int32(cpu.SCREEN_HEIGHT) {
		for x := range int32(cpu.SCREEN_WIDTH) {
			if frame.Lit(int(x), int(y)) {
				rects = append(rects, sdl.Rect{
					X: x * scale,
					Y: y * scale,
					W: scale,
					H: scale,
				})
			}
		}
	}

	return
}

// Render draws the frame scaled to the window.
func (sd *SDL) Render(frame *cpu.Frame) (err error) {
	on, off := sd.Palette.On, sd.Palette.Off

	err = sd.renderer.SetDrawColor(off.R, off.G, off.B, off.A)
	if err != nil {
		return
	}
	err = sd.renderer.Clear()
	if err != nil {
		return
	}

	rects := frameRects(frame, sd.Scale)
	if len(rects) > 0 {
		err = sd.renderer.SetDrawColor(on.R, on.G, on.B, on.A)
		if err != nil {
			return
		}
		err = sd.renderer.FillRects(rects)
		if err != nil {
			return
		}
	}

	sd.renderer.Present()

	return
}

// Poll drains the SDL event queue. Window close or Escape is a quit.
// Keys pressed since the last Poll are queued.
func (sd *SDL) Poll() (quit bool, err error) {
	sd.Keypad.Rewind()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			if e.Keysym.Sym == sdl.K_ESCAPE {
				quit = true
				continue
			}
			key, ok := io.Lookup(rune(e.Keysym.Sym))
			if !ok {
				continue
			}
			err = sd.Keypad.Press(key)
			if errors.Is(err, io.ErrKeypadFull) {
				err = nil
			}
			if err != nil {
				return
			}
		}
	}

	return
}

// Close destroys the window, and shuts down SDL.
func (sd *SDL) Close() {
	sd.renderer.Destroy()
	sd.window.Destroy()
	sdl.Quit()
}
