package io

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chip8/cpu"
)

func TestScreen_Render(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	scr := &Screen{Output: output}

	frame := &cpu.Frame{}
	frame.SetPixel(0, 0, 1)
	frame.SetPixel(cpu.SCREEN_WIDTH-1, cpu.SCREEN_HEIGHT-1, 1)

	assert.NoError(scr.Render(frame))
	assert.Equal(1, scr.Frames)

	rows := strings.Split(output.String(), "\n")
	assert.Len(rows, cpu.SCREEN_HEIGHT+2)
	assert.Equal("#"+strings.Repeat(".", cpu.SCREEN_WIDTH-1), rows[0])
	assert.Equal(strings.Repeat(".", cpu.SCREEN_WIDTH), rows[1])
	assert.Equal(strings.Repeat(".", cpu.SCREEN_WIDTH-1)+"#", rows[cpu.SCREEN_HEIGHT-1])
	assert.Equal("", rows[cpu.SCREEN_HEIGHT])

	// Unchanged frames are not written again.
	size := output.Len()
	assert.NoError(scr.Render(frame))
	assert.Equal(size, output.Len())
	assert.Equal(1, scr.Frames)

	frame.SetPixel(1, 0, 1)
	assert.NoError(scr.Render(frame))
	assert.Equal(2*size, output.Len())
	assert.Equal(2, scr.Frames)

	scr.Rewind()
	assert.NoError(scr.Render(frame))
	assert.Equal(3*size, output.Len())
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (fw failWriter) Write(p []byte) (n int, err error) {
	err = errWrite
	return
}

func TestScreen_RenderError(t *testing.T) {
	assert := assert.New(t)

	scr := &Screen{Output: failWriter{}}
	err := scr.Render(&cpu.Frame{})
	assert.ErrorIs(err, errWrite)
	assert.Equal(0, scr.Frames)
}
