package cpu

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// Key is a logical keypad key, 0x0 through 0xF.
type Key uint8

const KEY_COUNT = 16 // Number of keypad keys.

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_WAITING = State(1) // waiting
	STATE_HALTED  = State(2) // halted
)

// Chip8 is the simulation context for the CHIP-8 processor.
type Chip8 struct {
	Verbose bool // Set to enable verbose logging.

	Memory Memory    // Memory and framebuffer.
	Pc     uint16    // Program counter.
	Ir     uint16    // Index register.
	V      [16]uint8 // General-purpose registers v0-vf.
	Delay  Timer     // Delay timer.
	State  State     // Execution state.

	Ticks int // Executed instruction counter.

	keyTarget Register // Destination of a pending key wait.
}

// NewChip8 creates a new CPU, with PC at PROGRAM_START.
func NewChip8() (c8 *Chip8) {
	c8 = &Chip8{}
	c8.Reset()

	return
}

// Reset clears memory, registers and the timer, and sets PC to PROGRAM_START.
func (c8 *Chip8) Reset() {
	if c8.Verbose {
		log.Printf("cpu: reset")
	}

	c8.Memory.Reset()
	clear(c8.V[:])
	c8.Pc = PROGRAM_START
	c8.Ir = 0
	c8.Delay.Reset()
	c8.State = STATE_RUNNING
	c8.Ticks = 0
	c8.keyTarget = REG_V0
}

// Get returns the value of a register.
func (c8 *Chip8) Get(reg Register) (value uint16, err error) {
	switch {
	case reg.IsV():
		value = uint16(c8.V[reg.Index()])
	case reg == REG_PC:
		value = c8.Pc
	case reg == REG_IR:
		value = c8.Ir
	case reg == REG_DT:
		value = uint16(c8.Delay.Value)
	default:
		err = ErrRegisterInvalid
	}

	return
}

// Set writes the value of a register. 8-bit registers keep the low byte.
func (c8 *Chip8) Set(reg Register, value uint16) (err error) {
	switch {
	case reg.IsV():
		c8.V[reg.Index()] = uint8(value)
	case reg == REG_PC:
		c8.Pc = value
	case reg == REG_IR:
		c8.Ir = value
	case reg == REG_DT:
		c8.Delay.Set(uint8(value))
	default:
		err = ErrRegisterInvalid
	}

	return
}

// String returns the current CPU state as a string.
func (c8 *Chip8) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "% 5s: %03X\n", REG_PC, c8.Pc)
	fmt.Fprintf(&sb, "% 5s: %03X\n", REG_IR, c8.Ir)
	fmt.Fprintf(&sb, "% 5s: %02X\n", REG_DT, c8.Delay.Value)
	for n, val := range c8.V {
		fmt.Fprintf(&sb, "% 5s: %02X\n", REG_V0+Register(n), val)
	}
	fmt.Fprintf(&sb, "% 5s: %v\n", "state", c8.State)

	return sb.String()
}

// Waiting returns true while the CPU is blocked on a key press.
func (c8 *Chip8) Waiting() bool {
	return c8.State == STATE_WAITING
}

// Halted returns true once the CPU has stopped.
func (c8 *Chip8) Halted() bool {
	return c8.State == STATE_HALTED
}

// PressKey completes a pending key wait, storing key in the waiting register.
func (c8 *Chip8) PressKey(key Key) (err error) {
	if !c8.Waiting() {
		err = ErrNotWaiting
		return
	}
	if key >= KEY_COUNT {
		err = ErrKeyInvalid
		return
	}

	if c8.Verbose {
		log.Printf("cpu: key %X -> %v", uint8(key), c8.keyTarget)
	}

	c8.V[c8.keyTarget.Index()] = uint8(key)
	c8.State = STATE_RUNNING

	return
}

// Fetch reads the word at PC, and advances PC by 2.
func (c8 *Chip8) Fetch() (word uint16, err error) {
	if !c8.Memory.InRange(c8.Pc, 2) {
		err = ErrPcRange
		return
	}

	word = c8.Memory.Get16(c8.Pc)
	c8.Pc += 2

	return
}

// Cycle fetches, decodes and executes a single instruction.
//
// Returns ErrProgramEnd on a 0x0000 word, and ErrHalted once halted.
// Any error halts the CPU. A waiting CPU does not advance.
func (c8 *Chip8) Cycle() (err error) {
	switch c8.State {
	case STATE_HALTED:
		return ErrHalted
	case STATE_WAITING:
		return
	}

	defer func() {
		if err != nil {
			c8.State = STATE_HALTED
		}
	}()

	pc := c8.Pc
	word, err := c8.Fetch()
	if err != nil {
		err = &ErrFault{Pc: pc, Err: err}
		return
	}

	if word == 0x0000 {
		if c8.Verbose {
			log.Printf("%03x: end of program", pc)
		}
		err = ErrProgramEnd
		return
	}

	ins, err := Decode(word)
	if err != nil {
		err = &ErrFault{Pc: pc, Err: err}
		return
	}

	if c8.Verbose {
		log.Printf("%03x: %v", pc, ins)
	}

	err = c8.Execute(ins)
	if err != nil {
		err = &ErrFault{Pc: pc, Err: errors.Join(ErrOpcode(word), err)}
		return
	}

	c8.Ticks++

	return
}

// skip discards the next instruction word.
func (c8 *Chip8) skip() (err error) {
	_, err = c8.Fetch()
	return
}

// Execute applies a single decoded instruction.
func (c8 *Chip8) Execute(ins Instruction) (err error) {
	err = checkOperands(ins)
	if err != nil {
		return
	}

	v := &c8.V

	switch in := ins.(type) {
	case Cls:
		c8.Memory.ClearFramebuffer()
	case Jp:
		c8.Pc = in.Addr
	case SeImm:
		if v[in.X.Index()] == in.Value {
			err = c8.skip()
		}
	case Sne:
		if v[in.X.Index()] != in.Value {
			err = c8.skip()
		}
	case SeDir:
		if v[in.X.Index()] == v[in.Y.Index()] {
			err = c8.skip()
		}
	case LdImm:
		v[in.X.Index()] = in.Value
	case AddImm:
		v[in.X.Index()] += in.Value
	case LdDir:
		v[in.X.Index()] = v[in.Y.Index()]
	case Or:
		v[in.X.Index()] |= v[in.Y.Index()]
	case And:
		v[in.X.Index()] &= v[in.Y.Index()]
	case Xor:
		v[in.X.Index()] ^= v[in.Y.Index()]
	case AddDir:
		vx, vy := v[in.X.Index()], v[in.Y.Index()]
		sum := uint16(vx) + uint16(vy)
		v[in.X.Index()] = uint8(sum)
		v[0xf] = uint8(sum >> 8)
	case Sub:
		vx, vy := v[in.X.Index()], v[in.Y.Index()]
		v[in.X.Index()] = vx - vy
		v[0xf] = flag(vx >= vy)
	case Shr:
		vx := v[in.X.Index()]
		v[in.X.Index()] = vx >> 1
		v[0xf] = vx & 1
	case Subn:
		vx, vy := v[in.X.Index()], v[in.Y.Index()]
		v[in.X.Index()] = vy - vx
		v[0xf] = flag(vy >= vx)
	case Shl:
		vx := v[in.X.Index()]
		v[in.X.Index()] = vx << 1
		v[0xf] = (vx >> 7) & 1
	case Ldi:
		c8.Ir = in.Addr
	case JpOff:
		c8.Pc = uint16(v[0]) + in.Addr
	case Drw:
		err = c8.draw(v[in.X.Index()], v[in.Y.Index()], in.Height)
	case LdVDt:
		v[in.X.Index()] = c8.Delay.Value
	case LdK:
		c8.keyTarget = in.X
		c8.State = STATE_WAITING
	case LdDt:
		c8.Delay.Set(v[in.X.Index()])
	default:
		err = ErrInstructionInvalid
	}

	return
}

// checkOperands verifies that every register operand is one of v0-vf.
func checkOperands(ins Instruction) (err error) {
	var regs []Register

	switch in := ins.(type) {
	case SeImm:
		regs = []Register{in.X}
	case Sne:
		regs = []Register{in.X}
	case LdImm:
		regs = []Register{in.X}
	case AddImm:
		regs = []Register{in.X}
	case LdVDt:
		regs = []Register{in.X}
	case LdK:
		regs = []Register{in.X}
	case LdDt:
		regs = []Register{in.X}
	case SeDir:
		regs = []Register{in.X, in.Y}
	case LdDir:
		regs = []Register{in.X, in.Y}
	case Or:
		regs = []Register{in.X, in.Y}
	case And:
		regs = []Register{in.X, in.Y}
	case Xor:
		regs = []Register{in.X, in.Y}
	case AddDir:
		regs = []Register{in.X, in.Y}
	case Sub:
		regs = []Register{in.X, in.Y}
	case Shr:
		regs = []Register{in.X, in.Y}
	case Subn:
		regs = []Register{in.X, in.Y}
	case Shl:
		regs = []Register{in.X, in.Y}
	case Drw:
		regs = []Register{in.X, in.Y}
	}

	for _, reg := range regs {
		if !reg.IsV() {
			err = ErrRegisterInvalid
			return
		}
	}

	return
}

// flag converts a condition to a vf value.
func flag(cond bool) uint8 {
	if cond {
		return 1
	}
	return 0
}

// draw XORs the height byte sprite at IR onto the framebuffer at (x, y).
// Coordinates wrap around the screen edges. Bit 7 of each sprite byte is
// the leftmost pixel.
//
// vf is rewritten for every pixel touched: 1 if that pixel went from set to
// clear, 0 otherwise. The last pixel drawn determines the final vf.
func (c8 *Chip8) draw(x, y uint8, height uint8) (err error) {
	if !c8.Memory.InRange(c8.Ir, int(height)) {
		err = ErrMemoryRange
		return
	}

	mem := &c8.Memory
	for i := range int(height) {
		row := mem.Get8(c8.Ir + uint16(i))
		for j := range 8 {
			px := int(x) + j
			py := int(y) + i
			bit := (row >> (7 - j)) & 1
			prior := mem.GetPixel(px, py)
			next := prior ^ bit
			mem.SetPixel(px, py, next)
			c8.V[0xf] = flag(prior > next)
		}
	}

	return
}
