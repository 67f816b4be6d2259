// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package keypad implements the sixteen key hexadecimal keypad. Keys are
// identified by their legend, so key 0xA is the key marked "A".
//
// Keys are pressed and released by the embedding application, usually in
// response to events from the host keyboard. A released key is distinct from
// a key that has never been touched. Reset() should be called once per frame
// to return released keys to the idle state.
package keypad

import (
	"fmt"
	"sync"
)

// NumKeys is the number of keys on the keypad
const NumKeys = 16

// Key is the legend of a key on the keypad
type Key uint8

func (k Key) String() string {
	return fmt.Sprintf("%X", uint8(k))
}

// KeyState is the state of a single key
type KeyState int

// List of valid KeyState values
const (
	Idle KeyState = iota
	Pressed
	Released
)

func (s KeyState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	}
	return "idle"
}

// Keypad is the state of all sixteen keys. Safe for concurrent use.
type Keypad struct {
	crit sync.Mutex
	keys [NumKeys]KeyState
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Press the key. Values outside the keypad are ignored
func (kp *Keypad) Press(k Key) {
	if k >= NumKeys {
		return
	}
	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.keys[k] = Pressed
}

// Release the key. Values outside the keypad are ignored
func (kp *Keypad) Release(k Key) {
	if k >= NumKeys {
		return
	}
	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.keys[k] = Released
}

// Reset returns every released key to the idle state. Pressed keys are
// unaffected
func (kp *Keypad) Reset() {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	for i, s := range kp.keys {
		if s == Released {
			kp.keys[i] = Idle
		}
	}
}

// State returns the state of the key
func (kp *Keypad) State(k Key) KeyState {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	return kp.keys[k&0x0f]
}

// IsPressed returns true if the key is currently pressed. Only the low nibble
// of the value is used to identify the key
func (kp *Keypad) IsPressed(k Key) bool {
	return kp.State(k) == Pressed
}

// FirstPressed returns the lowest numbered key that is pressed. The boolean
// is false if no key is pressed
func (kp *Keypad) FirstPressed() (Key, bool) {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	for i, s := range kp.keys {
		if s == Pressed {
			return Key(i), true
		}
	}
	return 0, false
}

// AllPressed returns every key that is currently pressed, in ascending order
func (kp *Keypad) AllPressed() []Key {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	var p []Key
	for i, s := range kp.keys {
		if s == Pressed {
			p = append(p, Key(i))
		}
	}
	return p
}
