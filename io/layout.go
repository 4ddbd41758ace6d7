package io

import (
	"unicode"

	"github.com/ezrec/chip8/cpu"
)

// QWERTY maps the left-hand 4x4 block of a QWERTY keyboard onto the
// CHIP-8 hex keypad:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var QWERTY = map[rune]cpu.Key{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Lookup returns the logical key for a host key rune. Letters are case
// insensitive.
func Lookup(r rune) (key cpu.Key, ok bool) {
	key, ok = QWERTY[unicode.ToLower(r)]
	return
}
