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

package hardware

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/hardware/fonts"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/sound"
	"github.com/jetsetilly/gopher8/hardware/state"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/logger"
)

// MaxProgramSize is the largest program that can be loaded
const MaxProgramSize = memory.Size - memory.Origin

// Chip8 is the root of the emulation
type Chip8 struct {
	Env *environment.Environment

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Keypad  *keypad.Keypad
	State   *state.State

	// sound is not part of the machine but is attached to it
	Sound sound.Device

	// every fault returned by Step()
	Faults *faults.Faults

	instructionPeriod time.Duration
	timerPeriod       time.Duration
}

// NewChip8 creates a new machine and everything associated with it. The
// preferences in the environment are read once, at this point. The sound
// device can be nil.
func NewChip8(env *environment.Environment, snd sound.Device) (*Chip8, error) {
	if env == nil {
		return nil, fmt.Errorf("chip8: an environment is required")
	}
	if snd == nil {
		snd = sound.Null{}
	}

	c8 := &Chip8{
		Env:               env,
		Mem:               memory.NewMemory(env.Prefs.StackDepth.Get().(int)),
		Display:           display.NewDisplay(),
		Keypad:            keypad.NewKeypad(),
		State:             state.NewState(),
		Sound:             snd,
		Faults:            faults.NewFaults(),
		instructionPeriod: env.Prefs.InstructionDuration(),
		timerPeriod:       env.Prefs.TimerDuration(),
	}

	c8.CPU = cpu.NewCPU(env, env.Prefs.Cosmic.Get().(bool), cpu.Connections{
		Mem:    c8.Mem,
		Dsp:    c8.Display,
		Keys:   c8.Keypad,
		Rnd:    env.Random,
		Delay:  c8.State.Delay,
		Sound:  c8.State.Sound,
		Origin: memory.Origin,
	})
	c8.CPU.Trace = env.Prefs.Trace.Get().(bool)

	c8.UseFont(fonts.Classic)

	return c8, nil
}

func (c8 *Chip8) String() string {
	return c8.CPU.String()
}

// UseFont replaces all sixteen glyphs of the font
func (c8 *Chip8) UseFont(font fonts.Font) {
	for i, g := range font {
		c8.SetGlyph(uint8(i), g)
	}
}

// SetGlyph replaces the glyph for a single digit. The glyph is a string of
// hexadecimal digits in the format accepted by memory.LoadHex(). Anything
// beyond the size of a glyph is ignored.
func (c8 *Chip8) SetGlyph(digit uint8, glyph string) {
	c8.Mem.LoadHexN(fonts.Address(digit), glyph, fonts.GlyphSize)
}

// LoadProgram copies the program into memory at the origin address
func (c8 *Chip8) LoadProgram(program []uint8) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("chip8: program is too large (%d bytes)", len(program))
	}
	c8.Mem.Load(memory.Origin, program)
	return nil
}

// LoadProgramHex loads a program written as a string of hexadecimal digits
// into memory at the origin address. Returns the number of bytes written.
func (c8 *Chip8) LoadProgramHex(hex string) int {
	return c8.Mem.LoadHexN(memory.Origin, hex, MaxProgramSize)
}

// ReadDisplay returns a copy of the display and whether it has changed since
// the last call to Display.Flush()
func (c8 *Chip8) ReadDisplay() (display.Frame, bool) {
	return c8.Display.Frame()
}

// Start switches the machine on. The program counter is set to the origin
// address and the two timers are started.
//
// Returns faults.ExecutionLocked if the machine is already running or if the
// run flag cannot be acquired.
func (c8 *Chip8) Start() (*timer.Handle, *timer.Handle, error) {
	var running bool
	err := c8.State.Running.Access(func(r *bool) {
		running = *r
		*r = true
	})
	if err != nil {
		return nil, nil, err
	}
	if running {
		return nil, nil, faults.ExecutionLocked
	}

	c8.CPU.Regs.PC.Load(memory.Origin)

	delay := timer.StartDelay(c8.Env, c8.State, c8.timerPeriod)
	sound := timer.StartSound(c8.Env, c8.State, c8.timerPeriod, c8.Sound)

	logger.Log(c8.Env, "chip8", "started")

	return delay, sound, nil
}

// Stop switches the machine off and waits for the timers to end. The handles
// are those returned by Start(). It is safe to call Stop() more than once and
// with nil handles.
func (c8 *Chip8) Stop(delay *timer.Handle, sound *timer.Handle) {
	for {
		err := c8.State.Running.Set(false)
		if err == nil || c8.State.Running.Poisoned() {
			break
		}
	}

	delay.Wait()
	sound.Wait()

	logger.Log(c8.Env, "chip8", "stopped")
}
