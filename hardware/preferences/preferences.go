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

package preferences

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/random"
)

// Default values for the hardware preferences
const (
	DefaultInstructionPeriod = 2000  // microseconds
	DefaultTimerPeriod       = 16700 // microseconds
	DefaultStackDepth        = 16
)

// Preferences defines and collates all the preference values used by the
// hardware package.
type Preferences struct {
	col *prefs.Collection

	// the legacy quirks mode. changes the behaviour of the shift instructions,
	// the jump with offset instruction, the I register addition instruction
	// and the register store/load instructions. read once when the machine is
	// created
	Cosmic prefs.Bool

	// the minimum time between the start of one instruction and the start of
	// the next. a value of zero means no pacing at all
	InstructionPeriod prefs.Int

	// the time between ticks of the delay and sound timers
	TimerPeriod prefs.Int

	// seed for the random number generator used by CXNN
	RandomSeed prefs.Int

	// maximum depth of the call stack
	StackDepth prefs.Int

	// log the disassembly of every instruction executed
	Trace prefs.Bool
}

func (p *Preferences) String() string {
	return p.col.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values in the current command line group override the defaults.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		col: prefs.NewCollection(),
	}

	p.StackDepth.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("stack depth must be at least one")
		}
		return nil
	})

	nonNegative := func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("period cannot be negative")
		}
		return nil
	}
	p.InstructionPeriod.SetHookPre(nonNegative)
	p.TimerPeriod.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("timer period must be positive")
		}
		return nil
	})

	for _, e := range []struct {
		key string
		p   prefs.Pref
		v   prefs.Value
	}{
		{key: "hardware.cosmic", p: &p.Cosmic, v: false},
		{key: "hardware.instructionPeriod", p: &p.InstructionPeriod, v: DefaultInstructionPeriod},
		{key: "hardware.timerPeriod", p: &p.TimerPeriod, v: DefaultTimerPeriod},
		{key: "hardware.randomSeed", p: &p.RandomSeed, v: random.DefaultSeed},
		{key: "hardware.stackDepth", p: &p.StackDepth, v: DefaultStackDepth},
		{key: "hardware.trace", p: &p.Trace, v: false},
	} {
		if err := p.col.Add(e.key, e.p, e.v); err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	if err := p.col.ApplyCommandLine(); err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() error {
	return p.col.Reset()
}

// Set the preference named by key. Used by the command line.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.col.Set(key, v)
}

// InstructionDuration is the InstructionPeriod preference as a time.Duration
func (p *Preferences) InstructionDuration() time.Duration {
	return time.Duration(p.InstructionPeriod.Get().(int)) * time.Microsecond
}

// TimerDuration is the TimerPeriod preference as a time.Duration
func (p *Preferences) TimerDuration() time.Duration {
	return time.Duration(p.TimerPeriod.Get().(int)) * time.Microsecond
}
