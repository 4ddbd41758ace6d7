package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVRegister(t *testing.T) {
	assert := assert.New(t)

	for n := range uint8(16) {
		reg, err := VRegister(n)
		assert.NoError(err)
		assert.True(reg.IsV())
		assert.Equal(int(n), reg.Index())
		assert.False(reg.Wide())
	}

	_, err := VRegister(16)
	assert.ErrorIs(err, ErrRegisterInvalid)
}

func TestRegister_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		reg  Register
		name string
	}){
		{REG_V0, "v0"},
		{REG_VA, "va"},
		{REG_VF, "vf"},
		{REG_PC, "pc"},
		{REG_IR, "i"},
		{REG_DT, "dt"},
		{Register(99), "Register(99)"},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.reg.String())
	}

	assert.True(REG_PC.Wide())
	assert.True(REG_IR.Wide())
	assert.False(REG_PC.IsV())
	assert.False(REG_DT.IsV())
}
