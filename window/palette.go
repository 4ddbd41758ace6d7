// Package window provides interactive display and input backends for the
// emulator: Pixel, an OpenGL window built on gopxl/pixel, and SDL, built on
// go-sdl2. Both present the framebuffer scaled up, and map the QWERTY
// keyboard onto the hex keypad.
package window

import (
	"image"
	"image/color"
	"maps"
	"slices"

	"golang.org/x/image/colornames"

	"github.com/ezrec/chip8/cpu"
)

const DEFAULT_SCALE = 10 // Default screen pixels per framebuffer pixel.

// Palette is the pair of colors used to draw the framebuffer.
type Palette struct {
	On  color.RGBA // Lit pixel color.
	Off color.RGBA // Clear pixel color.
}

// Palettes are the named palettes.
var Palettes = map[string]Palette{
	"green": {On: colornames.Lime, Off: colornames.Black},
	"amber": {On: colornames.Orange, Off: colornames.Black},
	"white": {On: colornames.White, Off: colornames.Black},
	"paper": {On: colornames.Darkslategray, Off: colornames.Whitesmoke},
}

// DefaultPalette is the palette used when none is named.
var DefaultPalette = Palettes["green"]

// PaletteNames returns the sorted palette names.
func PaletteNames() []string {
	return slices.Sorted(maps.Keys(Palettes))
}

// frameImage paints the framebuffer into a SCREEN_WIDTH x SCREEN_HEIGHT image.
func frameImage(img *image.RGBA, frame *cpu.Frame, pal Palette) {
	for y := range cpu.SCREEN_HEIGHT {
		for x := range cpu.SCREEN_WIDTH {
			if frame.Lit(x, y) {
				img.SetRGBA(x, y, pal.On)
			} else {
				img.SetRGBA(x, y, pal.Off)
			}
		}
	}
}
