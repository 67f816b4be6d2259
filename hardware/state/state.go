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

// Package state holds the execution state that is shared between the CPU and
// the two timer tasks: whether the machine is running and the values of the
// delay and sound counters.
//
// Each field has its own lock. There is no single lock for the whole state
// and no operation ever holds more than one lock at a time.
package state

import (
	"github.com/jetsetilly/gopher8/hardware/faults"
)

// State is the shared execution state of the machine
type State struct {
	Running *Value[bool]
	Delay   *Value[uint8]
	Sound   *Value[uint8]
}

// NewState is the preferred method of initialisation for the State type. The
// machine is not running and both counters are zero.
func NewState() *State {
	return &State{
		Running: NewValue(false, faults.ExecutionLocked),
		Delay:   NewValue[uint8](0, faults.DelayTimerLocked),
		Sound:   NewValue[uint8](0, faults.SoundTimerLocked),
	}
}

// IsRunning returns the value of the run flag. A run flag that cannot be read
// is treated as not running
func (st *State) IsRunning() bool {
	r, err := st.Running.Get()
	return err == nil && r
}

// Decrement a counter by one if it is not already zero. Returns the value of
// the counter before the decrement.
func Decrement(value *uint8) uint8 {
	v := *value
	if v > 0 {
		*value = v - 1
	}
	return v
}
