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

package gui_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func newChip8(t *testing.T) *hardware.Chip8 {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, env.Normalise())
	test.DemandSuccess(t, env.Prefs.Set("hardware.instructionPeriod", 0))

	c8, err := hardware.NewChip8(env, nil)
	test.DemandSuccess(t, err)
	return c8
}

func TestKeypadEvents(t *testing.T) {
	c8 := newChip8(t)
	ctl := gui.NewController(c8)

	test.ExpectSuccess(t, ctl.Handle(gui.EventKeypad{Key: 0xa, Down: true}))
	test.ExpectSuccess(t, c8.Keypad.IsPressed(0xa))

	test.ExpectSuccess(t, ctl.Handle(gui.EventKeypad{Key: 0xa, Down: false}))
	test.ExpectEquality(t, c8.Keypad.State(0xa), keypad.Released)

	test.ExpectFailure(t, ctl.Handle("not an event"))
}

func TestPauseAndQuit(t *testing.T) {
	c8 := newChip8(t)
	c8.LoadProgramHex("7001 1200")

	delay, sound, err := c8.Start()
	test.DemandSuccess(t, err)
	defer c8.Stop(delay, sound)

	ctl := gui.NewController(c8)
	test.ExpectEquality(t, ctl.State(), govern.Running)

	done := ctl.Emulate()

	test.ExpectSuccess(t, ctl.Handle(gui.EventPause{}))
	test.ExpectEquality(t, ctl.State(), govern.Paused)
	test.ExpectSuccess(t, ctl.Handle(gui.EventPause{}))
	test.ExpectEquality(t, ctl.State(), govern.Running)

	test.ExpectSuccess(t, ctl.Handle(gui.EventQuit{}))
	test.ExpectEquality(t, ctl.State(), govern.Ending)

	// pausing has no effect once the emulation is ending
	test.ExpectSuccess(t, ctl.Handle(gui.EventPause{}))
	test.ExpectEquality(t, ctl.State(), govern.Ending)

	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(2 * time.Second):
		t.Fatalf("emulation did not end")
	}
}

func TestEmulationError(t *testing.T) {
	c8 := newChip8(t)
	c8.LoadProgramHex("00EE")

	delay, sound, err := c8.Start()
	test.DemandSuccess(t, err)
	defer c8.Stop(delay, sound)

	ctl := gui.NewController(c8)

	select {
	case err := <-ctl.Emulate():
		test.ExpectSuccess(t, errors.Is(err, faults.StackUnderflow))
	case <-time.After(2 * time.Second):
		t.Fatalf("emulation did not end")
	}
}
