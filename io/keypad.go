package io

import (
	"iter"
	"unicode"

	"github.com/ezrec/chip8/cpu"
)

const KEYPAD_CAPACITY = 16 // Default keypad FIFO depth.

// Keypad is a circular FIFO of logical key presses. Keys are queued by
// Press or Type, and consumed in order by Key.
type Keypad struct {
	Capacity      int  // Capacity in keys. KEYPAD_CAPACITY if zero.
	QuitWhenEmpty bool // If set, Poll reports quit once Key was asked for on an empty keypad.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []cpu.Key

	quit    bool
	starved bool // Key was called while empty.
}

var _ Input = (*Keypad)(nil)

// empty allocates an empty key buffer.
func (kp *Keypad) empty() {
	if kp.Capacity <= 0 {
		kp.Capacity = KEYPAD_CAPACITY
	}
	kp.ReadIndex = 0
	kp.WriteIndex = 0
	kp.Size = 0
	kp.Data = make([]cpu.Key, kp.Capacity)
	kp.starved = false
}

// Rewind empties the keypad and clears any quit request.
func (kp *Keypad) Rewind() {
	kp.empty()
	kp.quit = false
}

// Press queues a logical key.
// Returns ErrKeyInvalid for keys above 0xF, and ErrKeypadFull once the
// keypad has reached capacity.
func (kp *Keypad) Press(key cpu.Key) (err error) {
	if key >= cpu.KEY_COUNT {
		err = ErrKeyInvalid
		return
	}

	if kp.Data == nil {
		kp.empty()
	}

	if kp.Size >= kp.Capacity {
		err = ErrKeypadFull
		return
	}

	kp.Data[kp.WriteIndex] = key

	kp.WriteIndex++
	if kp.WriteIndex == kp.Capacity {
		kp.WriteIndex = 0
	}
	kp.Size++
	kp.starved = false

	return
}

// Type queues the logical key for each QWERTY rune in text. White space
// is skipped. Stops at the first rune with no mapping.
func (kp *Keypad) Type(text string) (err error) {
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		key, ok := Lookup(r)
		if !ok {
			err = ErrKeyInvalid
			return
		}
		err = kp.Press(key)
		if err != nil {
			return
		}
	}

	return
}

// Quit requests the emulator to stop at the next Poll.
func (kp *Keypad) Quit() {
	kp.quit = true
}

// Poll reports a pending quit request. With QuitWhenEmpty, running out of
// keys is also a quit.
func (kp *Keypad) Poll() (quit bool, err error) {
	quit = kp.quit || (kp.QuitWhenEmpty && kp.starved)
	return
}

// Key removes and returns the oldest queued key.
func (kp *Keypad) Key() (key cpu.Key, ok bool) {
	if kp.Size == 0 {
		kp.starved = true
		return
	}

	key = kp.Data[kp.ReadIndex]
	ok = true

	kp.ReadIndex++
	if kp.ReadIndex == kp.Capacity {
		kp.ReadIndex = 0
	}
	kp.Size--

	return
}

// Keys returns an iterator that drains the queued keys.
func (kp *Keypad) Keys() iter.Seq[cpu.Key] {
	return func(yield func(key cpu.Key) bool) {
		for {
			key, ok := kp.Key()
			if !ok {
				return
			}
			if !yield(key) {
				return
			}
		}
	}
}
