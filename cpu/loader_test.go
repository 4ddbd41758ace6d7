package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoader_Parse(t *testing.T) {
	assert := assert.New(t)

	ldr := &Loader{}
	prog, err := ldr.Parse(strings.NewReader(`
// Draw a box.
200: A300       // ld i, 0x300
202: 6000 6100  // ld v0, 0 ; ld v1, 0
206: D015

300: FF 81 81 81 FF
`))
	assert.NoError(err)
	if !assert.NotNil(prog) {
		return
	}

	assert.Len(prog.Lines, 4)
	assert.Equal(Line{
		LineNo:  4,
		Address: 0x202,
		Words:   []string{"202:", "6000", "6100"},
		Data:    []uint8{0x60, 0x00, 0x61, 0x00},
	}, prog.Lines[1])
	assert.Equal(uint16(0x300), prog.Lines[3].Address)
	assert.Equal([]uint8{0xFF, 0x81, 0x81, 0x81, 0xFF}, prog.Lines[3].Data)
	assert.Equal(13, prog.Size())
}

func TestLoader_Equate(t *testing.T) {
	assert := assert.New(t)

	ldr := &Loader{}
	ldr.Predefine("SPRITE", "0300")
	prog, err := ldr.Parse(strings.NewReader(`
.equ START PROGRAM_START
.equ CLEAR 00E0
START: CLEAR
202: $(0xA000 + SPRITE)
204: $(0x6000 + LINENO)
`))
	assert.NoError(err)
	if !assert.NotNil(prog) {
		return
	}

	assert.Equal("200", ldr.Equate["START"])
	assert.Equal("00E0", ldr.Equate["CLEAR"])

	mem := &Memory{}
	assert.NoError(prog.Load(mem))
	assert.Equal(uint16(0x00E0), mem.Get16(0x200))
	assert.Equal(uint16(0xA300), mem.Get16(0x202))
	assert.Equal(uint16(0x6006), mem.Get16(0x204))
}

func TestLoader_ExpressionComment(t *testing.T) {
	assert := assert.New(t)

	prog, err := (&Loader{}).Parse(strings.NewReader(`
200: $(PROGRAM_START // 2)          // floor division, then a comment
202: $((1 + 2) * 0x1000) // (ld v0, 0x00)
204: $(0x6000 + 7 // 2) 00 // $(not evaluated)
`))
	assert.NoError(err)
	if !assert.NotNil(prog) {
		return
	}

	mem := &Memory{}
	assert.NoError(prog.Load(mem))
	assert.Equal(uint16(0x0100), mem.Get16(0x200))
	assert.Equal(uint16(0x3000), mem.Get16(0x202))
	assert.Equal(uint16(0x6003), mem.Get16(0x204))
	assert.Equal(uint8(0x00), mem.Get8(0x206))
	assert.Equal(7, prog.Size())
}

func TestStripComment(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		result string
	}){
		{"200: 6001", "200: 6001"},
		{"200: 6001 // ld v0, 1", "200: 6001 "},
		{"// whole line", ""},
		{"200: $(8 // 2)", "200: $(8 // 2)"},
		{"200: $(8 // 2) // $(1 // 1)", "200: $(8 // 2) "},
		{"200: $((8) // (2)) // x", "200: $((8) // (2)) "},
		{"200: $(8 // 2", "200: $(8 "},
	}

	for _, entry := range table {
		assert.Equal(entry.result, stripComment(entry.text), entry.text)
	}
}

func TestLoader_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		lineno int
		err    error
	}){
		{"6001", 1, ErrAddressMissing},
		{":", 1, ErrAddressMissing},
		{"200 6001", 1, ErrAddressMissing},
		{"200: 6001\nzz: 6001", 2, ErrAddressInvalid},
		{"1000: 00", 1, ErrAddressRange},
		{"FFF: 6001", 1, ErrAddressRange},
		{"200:", 1, ErrValueMissing},
		{"200: 600", 1, ErrValueWidth},
		{"200: 60011", 1, ErrValueWidth},
		{"200: 6G01", 1, ErrValueInvalid},
		{"200: GG", 1, ErrValueInvalid},
		{".equ A", 1, ErrEquateSyntax},
		{".equ A 1\n.equ A 2", 2, ErrEquateDuplicate},
		{".equ LINENO 1", 1, ErrEquateDuplicate},
		{"200: $(0x10000)", 1, ErrValueWidth},
		{"200: $(1 +)", 1, ErrParseExpression("1 +")},
		{"200: $(\"str\")", 1, ErrParseExpression("\"str\"")},
	}

	for _, entry := range table {
		prog, err := (&Loader{}).Parse(strings.NewReader(entry.text))
		assert.Nil(prog, entry.text)
		assert.ErrorIs(err, entry.err, entry.text)

		var syntax ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.text) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.text)
		}
	}
}

func TestLoader_Predefine(t *testing.T) {
	assert := assert.New(t)

	ldr := &Loader{}
	ldr.Predefine("VALUE", "6042")
	ldr.Predefine("VALUE", "6043")

	prog, err := ldr.Parse(strings.NewReader("200: VALUE"))
	assert.NoError(err)

	c8 := NewChip8()
	assert.NoError(prog.Load(&c8.Memory))
	runToEnd(t, c8)
	assert.Equal(uint8(0x43), c8.V[0])
}

func TestErrSyntax(t *testing.T) {
	assert := assert.New(t)

	err := ErrSyntax{LineNo: 3, Line: "200 6001", Err: ErrAddressMissing}
	assert.Contains(err.Error(), "line 3 '200 6001'")
	assert.ErrorIs(err, ErrAddressMissing)
}
