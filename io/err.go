package io

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	// Keypad errors
	ErrKeypadFull = errors.New(f("keypad full"))
	ErrKeyInvalid = errors.New(f("key invalid"))
)
