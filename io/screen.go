package io

import (
	"bytes"
	"io"

	"github.com/ezrec/chip8/cpu"
)

// Screen renders frames as rows of text, '#' for a lit pixel and '.' for
// a clear one, followed by a blank line. A frame identical to the last
// one written is skipped.
type Screen struct {
	Output io.Writer

	Frames int // Number of frames written.

	last  cpu.Frame
	drawn bool
}

var _ Display = (*Screen)(nil)

// Render writes the frame if it differs from the previous one.
func (scr *Screen) Render(frame *cpu.Frame) (err error) {
	if scr.drawn && scr.last == *frame {
		return
	}

	var buff bytes.Buffer
	for y := range cpu.SCREEN_HEIGHT {
		for x := range cpu.SCREEN_WIDTH {
			if frame.Lit(x, y) {
				buff.WriteByte('#')
			} else {
				buff.WriteByte('.')
			}
		}
		buff.WriteByte('\n')
	}
	buff.WriteByte('\n')

	_, err = scr.Output.Write(buff.Bytes())
	if err != nil {
		return
	}

	scr.last = *frame
	scr.drawn = true
	scr.Frames++

	return
}

// Rewind forgets the last frame, so the next Render always writes.
func (scr *Screen) Rewind() {
	scr.drawn = false
	scr.Frames = 0
}
