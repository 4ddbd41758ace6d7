package cpu

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrProgramEnd      = errors.New(f("no more instructions"))
	ErrHalted          = errors.New(f("halted"))
	ErrPcRange         = errors.New(f("pc out of range"))
	ErrMemoryRange     = errors.New(f("memory out of range"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrKeyInvalid      = errors.New(f("key invalid"))
	ErrNotWaiting      = errors.New(f("not waiting for a key"))

	// Instruction errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))

	// Loader errors
	ErrAddressMissing  = errors.New(f("address missing"))
	ErrAddressInvalid  = errors.New(f("address invalid"))
	ErrAddressRange    = errors.New(f("address out of range"))
	ErrValueMissing    = errors.New(f("value missing"))
	ErrValueInvalid    = errors.New(f("value invalid"))
	ErrValueWidth      = errors.New(f("value must be 2 or 4 hex digits"))
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
)

// ErrOpcode is a word that does not decode to a supported instruction.
type ErrOpcode uint16

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x", uint16(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrFault is a fault raised while executing the instruction at Pc.
type ErrFault struct {
	Pc  uint16
	Err error
}

func (err *ErrFault) Error() string {
	return f("fault at 0x%03x %v", err.Pc, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrSyntax is a program listing error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a hex number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
