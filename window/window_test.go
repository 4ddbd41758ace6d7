package window

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/io"
)

func TestPaletteNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"amber", "green", "paper", "white"}, PaletteNames())
	assert.Equal(Palettes["green"], DefaultPalette)

	for name, pal := range Palettes {
		assert.NotEqual(pal.On, pal.Off, name)
	}
}

func TestFrameImage(t *testing.T) {
	assert := assert.New(t)

	frame := &cpu.Frame{}
	frame.SetPixel(0, 0, 1)
	frame.SetPixel(63, 31, 1)

	img := image.NewRGBA(image.Rect(0, 0, cpu.SCREEN_WIDTH, cpu.SCREEN_HEIGHT))
	frameImage(img, frame, DefaultPalette)

	assert.Equal(DefaultPalette.On, img.RGBAAt(0, 0))
	assert.Equal(DefaultPalette.On, img.RGBAAt(63, 31))
	assert.Equal(DefaultPalette.Off, img.RGBAAt(1, 0))
	assert.Equal(DefaultPalette.Off, img.RGBAAt(0, 1))
}

func TestFrameRects(t *testing.T) {
	assert := assert.New(t)

	frame := &cpu.Frame{}
	assert.Empty(frameRects(frame, 10))

	frame.SetPixel(0, 0, 1)
	frame.SetPixel(5, 2, 1)

	assert.Equal([]sdl.Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 50, Y: 20, W: 10, H: 10},
	}, frameRects(frame, 10))
}

func TestPixelKeys(t *testing.T) {
	assert := assert.New(t)

	assert.Len(_pixel_keys, cpu.KEY_COUNT)

	seen := map[cpu.Key]bool{}
	for button, r := range _pixel_keys {
		key, ok := io.Lookup(r)
		assert.True(ok, "%v", button)
		seen[key] = true
	}
	assert.Len(seen, cpu.KEY_COUNT)
}

func TestSDLKeys(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		sym sdl.Keycode
		key cpu.Key
	}){
		{sdl.K_1, 0x1},
		{sdl.K_4, 0xC},
		{sdl.K_q, 0x4},
		{sdl.K_r, 0xD},
		{sdl.K_x, 0x0},
		{sdl.K_v, 0xF},
	}

	for _, entry := range table {
		key, ok := io.Lookup(rune(entry.sym))
		assert.True(ok)
		assert.Equal(entry.key, key)
	}
}
