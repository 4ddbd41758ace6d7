package cpu

// Register names a machine register.
type Register int

// Register identifiers. The general-purpose registers are contiguous, so
// REG_V0+n is register vn.
//
//go:generate go tool stringer -linecomment -type=Register
const (
	REG_V0 = Register(0)  // v0
	REG_V1 = Register(1)  // v1
	REG_V2 = Register(2)  // v2
	REG_V3 = Register(3)  // v3
	REG_V4 = Register(4)  // v4
	REG_V5 = Register(5)  // v5
	REG_V6 = Register(6)  // v6
	REG_V7 = Register(7)  // v7
	REG_V8 = Register(8)  // v8
	REG_V9 = Register(9)  // v9
	REG_VA = Register(10) // va
	REG_VB = Register(11) // vb
	REG_VC = Register(12) // vc
	REG_VD = Register(13) // vd
	REG_VE = Register(14) // ve
	REG_VF = Register(15) // vf
	REG_PC = Register(16) // pc
	REG_IR = Register(17) // i
	REG_DT = Register(18) // dt
)

// VRegister returns the general-purpose register vn.
func VRegister(n uint8) (reg Register, err error) {
	if n > 0xf {
		err = ErrRegisterInvalid
		return
	}

	reg = REG_V0 + Register(n)
	return
}

// IsV returns true for the general-purpose registers v0-vf.
func (reg Register) IsV() bool {
	return reg >= REG_V0 && reg <= REG_VF
}

// Index returns the general-purpose register number of reg.
func (reg Register) Index() int {
	return int(reg - REG_V0)
}

// Wide returns true for the 16-bit registers.
func (reg Register) Wide() bool {
	return reg == REG_PC || reg == REG_IR
}
