package cpu

import (
	"iter"
)

// Line is a single listing line with the bytes it places in memory.
type Line struct {
	LineNo  int      // Source line number.
	Address uint16   // Address of the first byte.
	Words   []string // Tokens after equate and expression expansion.
	Data    []uint8  // Bytes placed at Address onward.
}

// Program is a loaded program listing.
type Program struct {
	Lines []Line
}

// Debug locates the listing line that placed a memory address.
type Debug struct {
	*Line
	Index int // Offset of the address within Line.Data.
}

// Debug returns the most recent line covering addr. Lines later in the
// listing overwrite earlier ones, so the last match wins.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n := len(prog.Lines) - 1; n >= 0; n-- {
		line := &prog.Lines[n]
		if addr >= line.Address && int(addr) < int(line.Address)+len(line.Data) {
			dbg = Debug{
				Line:  line,
				Index: int(addr - line.Address),
			}
			break
		}
	}

	return
}

// Bytes iterates over every (address, byte) pair in listing order.
func (prog *Program) Bytes() iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, value uint8) bool) {
		for _, line := range prog.Lines {
			for n, value := range line.Data {
				if !yield(line.Address+uint16(n), value) {
					return
				}
			}
		}
	}
}

// Size returns the number of bytes placed by the program.
func (prog *Program) Size() (size int) {
	for _, line := range prog.Lines {
		size += len(line.Data)
	}
	return
}

// Load writes the program into memory. The whole program is checked
// against the memory bounds before anything is written.
func (prog *Program) Load(mem *Memory) (err error) {
	for _, line := range prog.Lines {
		if !mem.InRange(line.Address, len(line.Data)) {
			err = ErrSyntax{LineNo: line.LineNo, Err: ErrAddressRange}
			return
		}
	}

	for addr, value := range prog.Bytes() {
		mem.Set8(addr, value)
	}

	return
}
