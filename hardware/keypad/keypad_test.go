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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestStates(t *testing.T) {
	kp := keypad.NewKeypad()
	test.ExpectEquality(t, kp.State(0xa), keypad.Idle)

	kp.Press(0xa)
	test.ExpectEquality(t, kp.State(0xa), keypad.Pressed)
	test.ExpectSuccess(t, kp.IsPressed(0xa))

	// reset does not affect pressed keys
	kp.Reset()
	test.ExpectSuccess(t, kp.IsPressed(0xa))

	kp.Release(0xa)
	test.ExpectEquality(t, kp.State(0xa), keypad.Released)
	test.ExpectFailure(t, kp.IsPressed(0xa))

	kp.Reset()
	test.ExpectEquality(t, kp.State(0xa), keypad.Idle)

	// keys outside the keypad are ignored
	kp.Press(0x10)
	test.ExpectFailure(t, kp.IsPressed(0x0))
}

func TestFirstPressed(t *testing.T) {
	kp := keypad.NewKeypad()
	_, ok := kp.FirstPressed()
	test.ExpectFailure(t, ok)

	kp.Press(0xc)
	kp.Press(0x3)
	kp.Press(0xf)
	k, ok := kp.FirstPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, keypad.Key(0x3))

	p := kp.AllPressed()
	test.DemandEquality(t, len(p), 3)
	test.ExpectEquality(t, p[0], keypad.Key(0x3))
	test.ExpectEquality(t, p[1], keypad.Key(0xc))
	test.ExpectEquality(t, p[2], keypad.Key(0xf))

	test.ExpectEquality(t, keypad.Key(0xc).String(), "C")
}
