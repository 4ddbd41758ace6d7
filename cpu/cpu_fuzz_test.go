package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDecode(f *testing.F) {
	for n := range 0x10 {
		f.Add(uint16(n << 12))
		f.Add(uint16(n<<12) | 0x0fff)
		f.Add(uint16(n<<12) | 0x0123)
	}
	f.Add(uint16(0x00E0))
	f.Add(uint16(0xF00A))

	f.Fuzz(func(t *testing.T, word uint16) {
		assert := assert.New(t)

		ins, err := Decode(word)
		again, err_again := Decode(word)
		assert.Equal(ins, again)
		assert.Equal(err, err_again)

		if err != nil {
			assert.Nil(ins)
			assert.Equal(ErrOpcode(word), err)
			return
		}

		code_str := fmt.Sprintf("0x%04x (%v)", word, ins)
		assert.Equal(word, ins.Encode(), code_str)
		assert.NotEmpty(ins.String(), code_str)
	})
}

func FuzzCycle(f *testing.F) {
	for n := range 0x10 {
		f.Add(uint16(n<<12)|0x0123, uint8(0x55), uint8(0xaa), uint16(0x300))
	}
	f.Add(uint16(0xD0FF), uint8(62), uint8(30), uint16(MEMORY_SIZE-4))
	f.Add(uint16(0xBFFF), uint8(0xff), uint8(0), uint16(0))

	f.Fuzz(func(t *testing.T, word uint16, v0 uint8, v1 uint8, ir uint16) {
		assert := assert.New(t)

		c8 := NewChip8()
		c8.Memory.Set16(PROGRAM_START, word)
		c8.V[0] = v0
		c8.V[1] = v1
		c8.Ir = ir

		err := c8.Cycle()

		code_str := fmt.Sprintf("0x%04x v0:%02x v1:%02x\ncpu:%v", word, v0, v1, c8.String())

		if err != nil {
			assert.True(c8.Halted(), code_str)
			switch {
			case word == 0:
				assert.ErrorIs(err, ErrProgramEnd, code_str)
			case errors.Is(err, ErrMemoryRange):
				assert.Equal(uint16(0xD), word>>12, code_str)
			default:
				assert.ErrorIs(err, ErrOpcode(0), code_str)
			}
			return
		}

		assert.Equal(1, c8.Ticks, code_str)

		ins, _ := Decode(word)
		switch ins.(type) {
		case Jp, JpOff:
		case SeImm, Sne, SeDir:
			assert.Contains([]uint16{PROGRAM_START + 2, PROGRAM_START + 4}, c8.Pc, code_str)
		case LdK:
			assert.True(c8.Waiting(), code_str)
			assert.Equal(uint16(PROGRAM_START+2), c8.Pc, code_str)
		default:
			assert.Equal(uint16(PROGRAM_START+2), c8.Pc, code_str)
		}
	})
}
