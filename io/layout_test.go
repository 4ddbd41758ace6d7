package io

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chip8/cpu"
)

func TestQWERTY(t *testing.T) {
	assert := assert.New(t)

	assert.Len(QWERTY, cpu.KEY_COUNT)

	seen := map[cpu.Key]bool{}
	for _, key := range QWERTY {
		assert.Less(key, cpu.Key(cpu.KEY_COUNT))
		seen[key] = true
	}
	assert.Len(seen, cpu.KEY_COUNT)
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		r   rune
		key cpu.Key
		ok  bool
	}){
		{'1', 0x1, true},
		{'4', 0xC, true},
		{'r', 0xD, true},
		{'R', 0xD, true},
		{'x', 0x0, true},
		{'v', 0xF, true},
		{'5', 0, false},
		{'g', 0, false},
	}

	for _, entry := range table {
		key, ok := Lookup(entry.r)
		assert.Equal(entry.ok, ok, string(entry.r))
		assert.Equal(entry.key, key, string(entry.r))
	}
}
