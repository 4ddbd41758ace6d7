package cpu

// nibbles splits a word into its four 4-bit fields, most significant first.
func nibbles(word uint16) (n1, n2, n3, n4 uint8) {
	n1 = uint8(word>>12) & 0xf
	n2 = uint8(word>>8) & 0xf
	n3 = uint8(word>>4) & 0xf
	n4 = uint8(word>>0) & 0xf
	return
}

// Decode classifies an opcode word. Words outside the supported
// instruction set return ErrOpcode.
func Decode(word uint16) (ins Instruction, err error) {
	n1, n2, n3, n4 := nibbles(word)
	x := REG_V0 + Register(n2)
	y := REG_V0 + Register(n3)
	nn := uint8(word & 0xff)
	nnn := word & 0xfff

	switch n1 {
	case 0x0:
		if word == 0x00e0 {
			ins = Cls{}
		}
	case 0x1:
		ins = Jp{Addr: nnn}
	case 0x3:
		ins = SeImm{X: x, Value: nn}
	case 0x4:
		ins = Sne{X: x, Value: nn}
	case 0x5:
		if n4 == 0x0 {
			ins = SeDir{X: x, Y: y}
		}
	case 0x6:
		ins = LdImm{X: x, Value: nn}
	case 0x7:
		ins = AddImm{X: x, Value: nn}
	case 0x8:
		switch n4 {
		case 0x0:
			ins = LdDir{X: x, Y: y}
		case 0x1:
			ins = Or{X: x, Y: y}
		case 0x2:
			ins = And{X: x, Y: y}
		case 0x3:
			ins = Xor{X: x, Y: y}
		case 0x4:
			ins = AddDir{X: x, Y: y}
		case 0x5:
			ins = Sub{X: x, Y: y}
		case 0x6:
			ins = Shr{X: x, Y: y}
		case 0x7:
			ins = Subn{X: x, Y: y}
		case 0xe:
			ins = Shl{X: x, Y: y}
		}
	case 0xa:
		ins = Ldi{Addr: nnn}
	case 0xb:
		ins = JpOff{Addr: nnn}
	case 0xd:
		ins = Drw{X: x, Y: y, Height: n4}
	case 0xf:
		switch nn {
		case 0x07:
			ins = LdVDt{X: x}
		case 0x0a:
			ins = LdK{X: x}
		case 0x15:
			ins = LdDt{X: x}
		}
	}

	if ins == nil {
		err = ErrOpcode(word)
	}

	return
}
