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

package hardware_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/hardware/sound"
	"github.com/jetsetilly/gopher8/test"
)

// a machine with no instruction pacing and a fast timer
func newChip8(t *testing.T, snd sound.Device) *hardware.Chip8 {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, env.Normalise())
	test.DemandSuccess(t, env.Prefs.Set("hardware.instructionPeriod", 0))
	test.DemandSuccess(t, env.Prefs.Set("hardware.timerPeriod", 1000))

	c8, err := hardware.NewChip8(env, snd)
	test.DemandSuccess(t, err)
	return c8
}

// waitFor polls the condition until it is true or until a generous deadline
// has passed
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestNoEnvironment(t *testing.T) {
	_, err := hardware.NewChip8(nil, nil)
	test.ExpectFailure(t, err)
}

func TestStartStop(t *testing.T) {
	c8 := newChip8(t, nil)

	// stepping a machine that has not started
	test.ExpectSuccess(t, errors.Is(c8.Step(), faults.ExecutionLocked))

	delay, sound, err := c8.Start()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, c8.State.IsRunning())

	// starting a machine that is already running
	_, _, err = c8.Start()
	test.ExpectSuccess(t, errors.Is(err, faults.ExecutionLocked))

	c8.Stop(delay, sound)
	test.ExpectFailure(t, c8.State.IsRunning())
	test.ExpectSuccess(t, delay.Err())
	test.ExpectSuccess(t, sound.Err())

	// stopping twice and stopping with nil handles
	c8.Stop(delay, sound)
	c8.Stop(nil, nil)

	test.ExpectSuccess(t, errors.Is(c8.Step(), faults.ExecutionLocked))

	// the machine can be started again
	delay, sound, err = c8.Start()
	test.DemandSuccess(t, err)
	c8.Stop(delay, sound)
}

func TestStartResetsProgramCounter(t *testing.T) {
	c8 := newChip8(t, nil)
	c8.CPU.Regs.PC.Load(0x400)

	delay, sound, err := c8.Start()
	test.DemandSuccess(t, err)
	defer c8.Stop(delay, sound)

	test.ExpectEquality(t, c8.CPU.Regs.PC.Address(), 0x200)
}

func TestProgram(t *testing.T) {
	c8 := newChip8(t, nil)
	test.ExpectEquality(t, c8.LoadProgramHex("6005 6103 8014"), 6)

	delay, sound, err := c8.Start()
	test.DemandSuccess(t, err)
	defer c8.Stop(delay, sound)

	for range 3 {
		test.DemandSuccess(t, c8.Step())
	}
	test.ExpectEquality(t, c8.CPU.Regs.V(0), 8)
	test.ExpectEquality(t, c8.CPU.Regs.V(0xf), 0)
	test.ExpectEquality(t, c8.CPU.Regs.PC.Address(), 0x206)
}

func TestLoadProgram(t *testing.T) {
	c8 := newChip8(t, nil)
	test.ExpectSuccess(t, c8.LoadProgram([]uint8{0x12, 0x00}))
	test.ExpectEquality(t, c8.Mem.Word(0x200), 0x1200)

	test.ExpectSuccess(t, c8.LoadProgram(make([]uint8, hardware.MaxProgramSize)))
	test.ExpectFailure(t, c8.LoadProgram(make([]uint8, hardware.MaxProgramSize+1)))
}

func TestFont(t *testing.T) {
	c8 := newChip8(t, nil)

	// the classic glyph for zero
	test.ExpectEquality(t, c8.Mem.Read(0x000), 0xf0)
	test.ExpectEquality(t, c8.Mem.Read(0x001), 0x90)

	// the glyph for F is the last glyph
	test.ExpectEquality(t, c8.Mem.Read(0x04b), 0xf0)
	test.ExpectEquality(t, c8.Mem.Read(0x04f), 0x80)

	// replacing a glyph does not touch its neighbours
	c8.SetGlyph(1, "FF FF FF FF FF FF")
	test.ExpectEquality(t, c8.Mem.Read(0x005), 0xff)
	test.ExpectEquality(t, c8.Mem.Read(0x009), 0xff)
	test.ExpectEquality(t, c8.Mem.Read(0x00a), 0xf0)
}

func TestDisplay(t *testing.T) {
	c8 := newChip8(t, nil)
	c8.LoadProgramHex("A000 D005")

	delay, sound, err := c8.Start()
	test.DemandSuccess(t, err)
	defer c8.Stop(delay, sound)

	test.DemandSuccess(t, c8.Step())
	test.DemandSuccess(t, c8.Step())

	f, dirty := c8.ReadDisplay()
	test.ExpectSuccess(t, dirty)
	test.ExpectSuccess(t, strings.HasPrefix(f.String(), "####...."))

	c8.Display.Flush()
	_, dirty = c8.ReadDisplay()
	test.ExpectFailure(t, dirty)
}

func TestFaults(t *testing.T) {
	c8 := newChip8(t, nil)
	c8.LoadProgramHex("00EE")

	delay, sound, err := c8.Start()
	test.DemandSuccess(t, err)
	defer c8.Stop(delay, sound)

	err = c8.Step()
	test.ExpectSuccess(t, errors.Is(err, faults.StackUnderflow))
	test.ExpectEquality(t, c8.CPU.Regs.PC.Address(), 0x200)

	err = c8.Step()
	test.ExpectSuccess(t, errors.Is(err, faults.StackUnderflow))
	test.ExpectEquality(t, c8.Faults.Len(), 1)

	w := &test.CompareWriter{}
	c8.Faults.WriteLog(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "(x2)"))
}

func TestSound(t *testing.T) {
	rec := &sound.Recorder{}
	c8 := newChip8(t, rec)
	test.DemandSuccess(t, c8.State.Sound.Set(3))

	delay, snd, err := c8.Start()
	test.DemandSuccess(t, err)

	waitFor(t, func() bool {
		return len(rec.Events()) >= 5
	})
	c8.Stop(delay, snd)

	ev := rec.Events()
	test.ExpectEquality(t, ev[0], sound.Play)
	test.ExpectEquality(t, ev[1], sound.Play)
	test.ExpectEquality(t, ev[2], sound.Play)
	for _, e := range ev[3:] {
		test.ExpectEquality(t, e, sound.Pause)
	}

	v, err := c8.State.Sound.Get()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0)
}

func TestSoundOpcode(t *testing.T) {
	rec := &sound.Recorder{}
	c8 := newChip8(t, rec)
	c8.LoadProgramHex("6302 F318 1204")

	delay, snd, err := c8.Start()
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, c8.Step())
	test.DemandSuccess(t, c8.Step())

	waitFor(t, func() bool {
		v, _ := c8.State.Sound.Get()
		return v == 0
	})
	c8.Stop(delay, snd)

	var plays int
	for _, e := range rec.Events() {
		if e == sound.Play {
			plays++
		}
	}
	test.ExpectEquality(t, plays, 2)
}

// a sound device that fails
type brokenDevice struct{}

func (brokenDevice) Play()  { panic("no speaker") }
func (brokenDevice) Pause() {}

func TestBrokenSoundDevice(t *testing.T) {
	c8 := newChip8(t, brokenDevice{})
	c8.LoadProgramHex("6301 F318 F318")

	delay, snd, err := c8.Start()
	test.DemandSuccess(t, err)
	defer c8.Stop(delay, snd)

	test.DemandSuccess(t, c8.Step())
	test.DemandSuccess(t, c8.Step())

	// the sound timer ends once the device has panicked
	snd.Wait()
	test.ExpectSuccess(t, errors.Is(snd.Err(), faults.SoundTimerLocked))
	test.ExpectSuccess(t, c8.State.Sound.Poisoned())

	// and every later access to the sound counter fails
	err = c8.Step()
	test.ExpectSuccess(t, errors.Is(err, faults.SoundTimerLocked))

	// the delay timer and the machine are unaffected
	test.ExpectSuccess(t, c8.State.IsRunning())
}

func TestRun(t *testing.T) {
	c8 := newChip8(t, nil)
	c8.LoadProgramHex("7001 1200")

	delay, sound, err := c8.Start()
	test.DemandSuccess(t, err)
	defer c8.Stop(delay, sound)

	var count int
	err = c8.Run(func() (govern.State, error) {
		count++
		if count == 20 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c8.CPU.Regs.V(0), 10)

	// errors from Step() end the loop
	c8.LoadProgramHex("00EE")
	c8.CPU.Regs.PC.Load(0x200)
	err = c8.Run(nil)
	test.ExpectSuccess(t, errors.Is(err, faults.StackUnderflow))

	// unsupported state
	c8.LoadProgramHex("1200")
	err = c8.Run(func() (govern.State, error) {
		return govern.EmulatorStart, nil
	})
	test.ExpectFailure(t, err)
}

func TestRunForInstructionCount(t *testing.T) {
	c8 := newChip8(t, nil)
	c8.LoadProgramHex("7001 1200")

	delay, sound, err := c8.Start()
	test.DemandSuccess(t, err)
	defer c8.Stop(delay, sound)

	test.ExpectSuccess(t, c8.RunForInstructionCount(10, nil))
	test.ExpectEquality(t, c8.CPU.Regs.V(0), 5)
}

func TestPacing(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, env.Normalise())
	test.DemandSuccess(t, env.Prefs.Set("hardware.instructionPeriod", 2000))

	c8, err := hardware.NewChip8(env, nil)
	test.DemandSuccess(t, err)
	c8.LoadProgramHex("1200")

	delay, sound, err := c8.Start()
	test.DemandSuccess(t, err)
	defer c8.Stop(delay, sound)

	start := time.Now()
	test.DemandSuccess(t, c8.RunForInstructionCount(10, nil))
	test.ExpectSuccess(t, time.Since(start) >= 20*time.Millisecond)
}
