package window

import (
	"errors"
	"image"

	"github.com/gopxl/pixel/v2"
	"github.com/gopxl/pixel/v2/backends/opengl"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/io"
)

// Host keys watched by the Pixel backend, with their QWERTY runes.
var _pixel_keys = map[pixel.Button]rune{
	pixel.Key1: '1', pixel.Key2: '2', pixel.Key3: '3', pixel.Key4: '4',
	pixel.KeyQ: 'q', pixel.KeyW: 'w', pixel.KeyE: 'e', pixel.KeyR: 'r',
	pixel.KeyA: 'a', pixel.KeyS: 's', pixel.KeyD: 'd', pixel.KeyF: 'f',
	pixel.KeyZ: 'z', pixel.KeyX: 'x', pixel.KeyC: 'c', pixel.KeyV: 'v',
}

// Pixel is an OpenGL window Display and Input.
//
// Pixel must be created and used from the function passed to RunPixel.
type Pixel struct {
	Palette Palette
	Scale   float64

	io.Keypad // Keys pressed since the last Poll.

	win *opengl.Window
	img *image.RGBA
}

var _ io.Display = (*Pixel)(nil)
var _ io.Input = (*Pixel)(nil)

// RunPixel runs fn on the main thread, as OpenGL requires.
func RunPixel(fn func()) {
	opengl.Run(fn)
}

// NewPixel opens a window of the framebuffer size times scale.
func NewPixel(title string, scale float64, pal Palette) (px *Pixel, err error) {
	if scale <= 0 {
		scale = DEFAULT_SCALE
	}

	cfg := opengl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, cpu.SCREEN_WIDTH*scale, cpu.SCREEN_HEIGHT*scale),
		VSync:  true,
	}

	win, err := opengl.NewWindow(cfg)
	if err != nil {
		return
	}

	px = &Pixel{
		Palette: pal,
		Scale:   scale,
		win:     win,
		img:     image.NewRGBA(image.Rect(0, 0, cpu.SCREEN_WIDTH, cpu.SCREEN_HEIGHT)),
	}

	win.Clear(pal.Off)

	return
}

// Render draws the frame scaled to the window, and processes window events.
func (px *Pixel) Render(frame *cpu.Frame) (err error) {
	frameImage(px.img, frame, px.Palette)

	pic := pixel.PictureDataFromImage(px.img)
	sprite := pixel.NewSprite(pic, pic.Bounds())

	mat := pixel.IM.
		Scaled(pixel.ZV, px.Scale).
		Moved(px.win.Bounds().Center())

	px.win.Clear(px.Palette.Off)
	sprite.Draw(px.win, mat)
	px.win.Update()

	return
}

// Poll reports window close or Escape as quit, and queues the keys
// pressed since the last Update.
func (px *Pixel) Poll() (quit bool, err error) {
	if px.win.Closed() || px.win.Pressed(pixel.KeyEscape) {
		quit = true
		return
	}

	px.Keypad.Rewind()
	for button, r := range _pixel_keys {
		if !px.win.JustPressed(button) {
			continue
		}
		key, _ := io.Lookup(r)
		err = px.Keypad.Press(key)
		if errors.Is(err, io.ErrKeypadFull) {
			err = nil
		}
		if err != nil {
			return
		}
	}

	return
}

// Close destroys the window.
func (px *Pixel) Close() {
	px.win.Destroy()
}
