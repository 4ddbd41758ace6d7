package cpu

import (
	"fmt"
)

// Op identifies an instruction variant.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_CLS     = Op(0)  // cls
	OP_JP      = Op(1)  // jp
	OP_SE_IMM  = Op(2)  // se
	OP_SNE     = Op(3)  // sne
	OP_SE_DIR  = Op(4)  // se
	OP_LD_IMM  = Op(5)  // ld
	OP_ADD_IMM = Op(6)  // add
	OP_LD_DIR  = Op(7)  // ld
	OP_OR      = Op(8)  // or
	OP_AND     = Op(9)  // and
	OP_XOR     = Op(10) // xor
	OP_ADD_DIR = Op(11) // add
	OP_SUB     = Op(12) // sub
	OP_SHR     = Op(13) // shr
	OP_SUBN    = Op(14) // subn
	OP_SHL     = Op(15) // shl
	OP_LDI     = Op(16) // ld
	OP_JP_OFF  = Op(17) // jp
	OP_DRW     = Op(18) // drw
	OP_LD_V_DT = Op(19) // ld
	OP_LD_K    = Op(20) // ld
	OP_LD_DT   = Op(21) // ld
)

// Instruction is a decoded opcode. The set of implementations is closed;
// each carries only the operands its encoding holds.
type Instruction interface {
	Op() Op          // Instruction variant.
	Encode() uint16  // Raw opcode word.
	String() string  // Assembly form.
	instruction()
}

// Cls clears the screen (00E0).
type Cls struct{}

// Jp jumps to Addr (1NNN).
type Jp struct{ Addr uint16 }

// SeImm skips the next instruction if X == Value (3XNN).
type SeImm struct {
	X     Register
	Value uint8
}

// Sne skips the next instruction if X != Value (4XNN).
type Sne struct {
	X     Register
	Value uint8
}

// SeDir skips the next instruction if X == Y (5XY0).
type SeDir struct{ X, Y Register }

// LdImm sets X = Value (6XNN).
type LdImm struct {
	X     Register
	Value uint8
}

// AddImm sets X = X + Value, without touching vf (7XNN).
type AddImm struct {
	X     Register
	Value uint8
}

// LdDir sets X = Y (8XY0).
type LdDir struct{ X, Y Register }

// Or sets X = X | Y (8XY1).
type Or struct{ X, Y Register }

// And sets X = X & Y (8XY2).
type And struct{ X, Y Register }

// Xor sets X = X ^ Y (8XY3).
type Xor struct{ X, Y Register }

// AddDir sets X = X + Y, vf = carry (8XY4).
type AddDir struct{ X, Y Register }

// Sub sets X = X - Y, vf = not borrow (8XY5).
type Sub struct{ X, Y Register }

// Shr sets X = X >> 1, vf = shifted out bit (8XY6). Y is encoded but unused.
type Shr struct{ X, Y Register }

// Subn sets X = Y - X, vf = not borrow (8XY7).
type Subn struct{ X, Y Register }

// Shl sets X = X << 1, vf = shifted out bit (8XYE). Y is encoded but unused.
type Shl struct{ X, Y Register }

// Ldi sets IR = Addr (ANNN).
type Ldi struct{ Addr uint16 }

// JpOff jumps to v0 + Addr (BNNN).
type JpOff struct{ Addr uint16 }

// Drw draws the Height byte sprite at IR to (X, Y) (DXYN).
type Drw struct {
	X, Y   Register
	Height uint8
}

// LdVDt sets X = delay timer (FX07).
type LdVDt struct{ X Register }

// LdK waits for a key press, and stores the key in X (FX0A).
type LdK struct{ X Register }

// LdDt sets delay timer = X (FX15).
type LdDt struct{ X Register }

func (Cls) Op() Op    { return OP_CLS }
func (Jp) Op() Op     { return OP_JP }
func (SeImm) Op() Op  { return OP_SE_IMM }
func (Sne) Op() Op    { return OP_SNE }
func (SeDir) Op() Op  { return OP_SE_DIR }
func (LdImm) Op() Op  { return OP_LD_IMM }
func (AddImm) Op() Op { return OP_ADD_IMM }
func (LdDir) Op() Op  { return OP_LD_DIR }
func (Or) Op() Op     { return OP_OR }
func (And) Op() Op    { return OP_AND }
func (Xor) Op() Op    { return OP_XOR }
func (AddDir) Op() Op { return OP_ADD_DIR }
func (Sub) Op() Op    { return OP_SUB }
func (Shr) Op() Op    { return OP_SHR }
func (Subn) Op() Op   { return OP_SUBN }
func (Shl) Op() Op    { return OP_SHL }
func (Ldi) Op() Op    { return OP_LDI }
func (JpOff) Op() Op  { return OP_JP_OFF }
func (Drw) Op() Op    { return OP_DRW }
func (LdVDt) Op() Op  { return OP_LD_V_DT }
func (LdK) Op() Op    { return OP_LD_K }
func (LdDt) Op() Op   { return OP_LD_DT }

func (Cls) instruction()    {}
func (Jp) instruction()     {}
func (SeImm) instruction()  {}
func (Sne) instruction()    {}
func (SeDir) instruction()  {}
func (LdImm) instruction()  {}
func (AddImm) instruction() {}
func (LdDir) instruction()  {}
func (Or) instruction()     {}
func (And) instruction()    {}
func (Xor) instruction()    {}
func (AddDir) instruction() {}
func (Sub) instruction()    {}
func (Shr) instruction()    {}
func (Subn) instruction()   {}
func (Shl) instruction()    {}
func (Ldi) instruction()    {}
func (JpOff) instruction()  {}
func (Drw) instruction()    {}
func (LdVDt) instruction()  {}
func (LdK) instruction()    {}
func (LdDt) instruction()   {}

// Encoding helpers.

func encodeAddr(hi uint16, addr uint16) uint16 {
	return (hi << 12) | (addr & 0xfff)
}

func encodeImm(hi uint16, x Register, value uint8) uint16 {
	return (hi << 12) | (uint16(x.Index()&0xf) << 8) | uint16(value)
}

func encodeXY(hi uint16, x, y Register, lo uint16) uint16 {
	return (hi << 12) | (uint16(x.Index()&0xf) << 8) | (uint16(y.Index()&0xf) << 4) | (lo & 0xf)
}

func encodeF(x Register, lo uint8) uint16 {
	return encodeImm(0xf, x, lo)
}

func (Cls) Encode() uint16      { return 0x00e0 }
func (in Jp) Encode() uint16     { return encodeAddr(0x1, in.Addr) }
func (in SeImm) Encode() uint16  { return encodeImm(0x3, in.X, in.Value) }
func (in Sne) Encode() uint16    { return encodeImm(0x4, in.X, in.Value) }
func (in SeDir) Encode() uint16  { return encodeXY(0x5, in.X, in.Y, 0x0) }
func (in LdImm) Encode() uint16  { return encodeImm(0x6, in.X, in.Value) }
func (in AddImm) Encode() uint16 { return encodeImm(0x7, in.X, in.Value) }
func (in LdDir) Encode() uint16  { return encodeXY(0x8, in.X, in.Y, 0x0) }
func (in Or) Encode() uint16     { return encodeXY(0x8, in.X, in.Y, 0x1) }
func (in And) Encode() uint16    { return encodeXY(0x8, in.X, in.Y, 0x2) }
func (in Xor) Encode() uint16    { return encodeXY(0x8, in.X, in.Y, 0x3) }
func (in AddDir) Encode() uint16 { return encodeXY(0x8, in.X, in.Y, 0x4) }
func (in Sub) Encode() uint16    { return encodeXY(0x8, in.X, in.Y, 0x5) }
func (in Shr) Encode() uint16    { return encodeXY(0x8, in.X, in.Y, 0x6) }
func (in Subn) Encode() uint16   { return encodeXY(0x8, in.X, in.Y, 0x7) }
func (in Shl) Encode() uint16    { return encodeXY(0x8, in.X, in.Y, 0xe) }
func (in Ldi) Encode() uint16    { return encodeAddr(0xa, in.Addr) }
func (in JpOff) Encode() uint16  { return encodeAddr(0xb, in.Addr) }
func (in Drw) Encode() uint16    { return encodeXY(0xd, in.X, in.Y, uint16(in.Height)) }
func (in LdVDt) Encode() uint16  { return encodeF(in.X, 0x07) }
func (in LdK) Encode() uint16    { return encodeF(in.X, 0x0a) }
func (in LdDt) Encode() uint16   { return encodeF(in.X, 0x15) }

func (in Cls) String() string    { return in.Op().String() }
func (in Jp) String() string     { return fmt.Sprintf("%v 0x%03x", in.Op(), in.Addr) }
func (in SeImm) String() string  { return fmt.Sprintf("%v %v, 0x%02x", in.Op(), in.X, in.Value) }
func (in Sne) String() string    { return fmt.Sprintf("%v %v, 0x%02x", in.Op(), in.X, in.Value) }
func (in SeDir) String() string  { return fmt.Sprintf("%v %v, %v", in.Op(), in.X, in.Y) }
func (in LdImm) String() string  { return fmt.Sprintf("%v %v, 0x%02x", in.Op(), in.X, in.Value) }
func (in AddImm) String() string { return fmt.Sprintf("%v %v, 0x%02x", in.Op(), in.X, in.Value) }
func (in LdDir) String() string  { return fmt.Sprintf("%v %v, %v", in.Op(), in.X, in.Y) }
func (in Or) String() string     { return fmt.Sprintf("%v %v, %v", in.Op(), in.X, in.Y) }
func (in And) String() string    { return fmt.Sprintf("%v %v, %v", in.Op(), in.X, in.Y) }
func (in Xor) String() string    { return fmt.Sprintf("%v %v, %v", in.Op(), in.X, in.Y) }
func (in AddDir) String() string { return fmt.Sprintf("%v %v, %v", in.Op(), in.X, in.Y) }
func (in Sub) String() string    { return fmt.Sprintf("%v %v, %v", in.Op(), in.X, in.Y) }
func (in Shr) String() string    { return fmt.Sprintf("%v %v", in.Op(), in.X) }
func (in Subn) String() string   { return fmt.Sprintf("%v %v, %v", in.Op(), in.X, in.Y) }
func (in Shl) String() string    { return fmt.Sprintf("%v %v", in.Op(), in.X) }
func (in Ldi) String() string    { return fmt.Sprintf("%v %v, 0x%03x", in.Op(), REG_IR, in.Addr) }
func (in JpOff) String() string  { return fmt.Sprintf("%v %v, 0x%03x", in.Op(), REG_V0, in.Addr) }
func (in Drw) String() string    { return fmt.Sprintf("%v %v, %v, %d", in.Op(), in.X, in.Y, in.Height) }
func (in LdVDt) String() string  { return fmt.Sprintf("%v %v, %v", in.Op(), in.X, REG_DT) }
func (in LdK) String() string    { return fmt.Sprintf("%v %v, k", in.Op(), in.X) }
func (in LdDt) String() string   { return fmt.Sprintf("%v %v, %v", in.Op(), REG_DT, in.X) }
