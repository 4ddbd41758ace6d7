package cpu

import (
	"encoding/binary"
	"fmt"
	"iter"
	"maps"
)

const (
	MEMORY_SIZE   = 4096  // Size of addressable memory in bytes.
	PROGRAM_START = 0x200 // Load address and initial PC of a program.
	SCREEN_WIDTH  = 64    // Framebuffer width in pixels.
	SCREEN_HEIGHT = 32    // Framebuffer height in pixels.
)

var _memory_defines = map[string]string{
	"MEMORY_SIZE":   fmt.Sprintf("%X", MEMORY_SIZE),
	"PROGRAM_START": fmt.Sprintf("%X", PROGRAM_START),
	"SCREEN_WIDTH":  fmt.Sprintf("%X", SCREEN_WIDTH),
	"SCREEN_HEIGHT": fmt.Sprintf("%X", SCREEN_HEIGHT),
}

// Defines returns the loader predefines for the memory map.
func Defines() iter.Seq2[string, string] {
	return maps.All(_memory_defines)
}

// Frame is a row-major 64x32 framebuffer. Each cell is 0 or 1.
type Frame [SCREEN_WIDTH * SCREEN_HEIGHT]uint8

// frameIndex wraps the coordinates onto the screen.
func frameIndex(x, y int) int {
	x %= SCREEN_WIDTH
	if x < 0 {
		x += SCREEN_WIDTH
	}
	y %= SCREEN_HEIGHT
	if y < 0 {
		y += SCREEN_HEIGHT
	}
	return y*SCREEN_WIDTH + x
}

// Pixel returns the pixel at (x, y), wrapping the coordinates.
func (fb *Frame) Pixel(x, y int) uint8 {
	return fb[frameIndex(x, y)]
}

// Lit returns true if the pixel at (x, y) is set.
func (fb *Frame) Lit(x, y int) bool {
	return fb.Pixel(x, y) != 0
}

// SetPixel sets the pixel at (x, y), wrapping the coordinates.
func (fb *Frame) SetPixel(x, y int, value uint8) {
	fb[frameIndex(x, y)] = value & 1
}

// Memory is the addressable memory and framebuffer of the machine.
type Memory struct {
	Data        [MEMORY_SIZE]uint8 // Addressable memory.
	Framebuffer Frame              // Display pixels.
}

// InRange returns true if size bytes starting at addr are addressable.
func (mem *Memory) InRange(addr uint16, size int) bool {
	return int(addr)+size <= MEMORY_SIZE
}

// Get8 reads the byte at addr, which must be below MEMORY_SIZE.
func (mem *Memory) Get8(addr uint16) uint8 {
	return mem.Data[addr]
}

// Set8 writes the byte at addr, which must be below MEMORY_SIZE.
func (mem *Memory) Set8(addr uint16, value uint8) {
	mem.Data[addr] = value
}

// Get16 reads the big-endian word at addr and addr+1.
func (mem *Memory) Get16(addr uint16) uint16 {
	return binary.BigEndian.Uint16(mem.Data[addr : addr+2])
}

// Set16 writes value as a big-endian word at addr and addr+1.
func (mem *Memory) Set16(addr uint16, value uint16) {
	binary.BigEndian.PutUint16(mem.Data[addr:addr+2], value)
}

// GetPixel reads a framebuffer pixel.
func (mem *Memory) GetPixel(x, y int) uint8 {
	return mem.Framebuffer.Pixel(x, y)
}

// SetPixel writes a framebuffer pixel.
func (mem *Memory) SetPixel(x, y int, value uint8) {
	mem.Framebuffer.SetPixel(x, y, value)
}

// ClearFramebuffer turns off every pixel. Memory is left untouched.
func (mem *Memory) ClearFramebuffer() {
	clear(mem.Framebuffer[:])
}

// Reset zeroes memory and the framebuffer.
func (mem *Memory) Reset() {
	clear(mem.Data[:])
	mem.ClearFramebuffer()
}
