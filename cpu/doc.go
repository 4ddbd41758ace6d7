// Package cpu implements the CHIP-8 virtual machine core and its program loader.
//
// The machine consists of 4096 bytes of memory, a separate 64x32 monochrome
// framebuffer, a 16-bit program counter (PC), a 16-bit index register (IR),
// sixteen 8-bit general-purpose registers (v0-vf) and a 60Hz delay timer.
// Register vf doubles as the carry, borrow and sprite collision flag.
//
// Every instruction is a single big-endian 16-bit word. Decode turns a word
// into one of a closed set of typed instructions, and Chip8.Execute applies
// it. A fetched word of 0x0000 is not an instruction: it marks the end of
// the program.
//
// The loader reads the "ADDR: HEX..." program listing format, supporting
// .equ definitions and $(...) compile-time expressions.
package cpu
