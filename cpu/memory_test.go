package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_Set8(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Set8(0x123, 0x12)
	assert.Equal(uint8(0x12), mem.Get8(0x123))
	assert.Equal(uint8(0), mem.Get8(0x124))
}

func TestMemory_Set16(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Set16(0x206, 0xD015)
	assert.Equal(uint16(0xD015), mem.Get16(0x206))
	assert.Equal(uint8(0xD0), mem.Get8(0x206))
	assert.Equal(uint8(0x15), mem.Get8(0x207))

	mem.Set16(MEMORY_SIZE-2, 0xBEEF)
	assert.Equal(uint16(0xBEEF), mem.Get16(MEMORY_SIZE-2))
}

func TestMemory_InRange(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.True(mem.InRange(0, MEMORY_SIZE))
	assert.True(mem.InRange(MEMORY_SIZE-2, 2))
	assert.False(mem.InRange(MEMORY_SIZE-1, 2))
	assert.False(mem.InRange(0xffff, 1))
	assert.True(mem.InRange(0x300, 0))
}

func TestMemory_Pixel(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.SetPixel(10, 10, 1)
	assert.Equal(uint8(1), mem.GetPixel(10, 10))
	assert.Equal(uint8(1), mem.Framebuffer[10*SCREEN_WIDTH+10])

	// Coordinates wrap.
	mem.SetPixel(SCREEN_WIDTH, SCREEN_HEIGHT, 1)
	assert.Equal(uint8(1), mem.GetPixel(0, 0))
	assert.Equal(uint8(1), mem.GetPixel(-SCREEN_WIDTH, -SCREEN_HEIGHT))
	assert.Equal(uint8(1), mem.GetPixel(SCREEN_WIDTH+10, 10))
	assert.True(mem.Framebuffer.Lit(10, SCREEN_HEIGHT+10))

	// Only the low bit is kept.
	mem.SetPixel(1, 1, 0xfe)
	assert.Equal(uint8(0), mem.GetPixel(1, 1))
}

func TestMemory_ClearFramebuffer(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	for n := range mem.Framebuffer {
		mem.Framebuffer[n] = 1
	}
	mem.Set8(0x300, 0xff)
	mem.Set16(0x000, 0x1234)

	mem.ClearFramebuffer()

	for n := range mem.Framebuffer {
		assert.Equal(uint8(0), mem.Framebuffer[n])
	}
	assert.Len(mem.Framebuffer, 2048)
	assert.Equal(uint8(0xff), mem.Get8(0x300))
	assert.Equal(uint16(0x1234), mem.Get16(0x000))
}

func TestMemory_Reset(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Set8(0x300, 0xff)
	mem.SetPixel(3, 4, 1)

	mem.Reset()

	assert.Equal(Memory{}, *mem)
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defs := map[string]string{}
	for k, v := range Defines() {
		defs[k] = v
	}

	assert.Equal("200", defs["PROGRAM_START"])
	assert.Equal("1000", defs["MEMORY_SIZE"])
	assert.Equal("40", defs["SCREEN_WIDTH"])
	assert.Equal("20", defs["SCREEN_HEIGHT"])
}
