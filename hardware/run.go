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

	"github.com/jetsetilly/gopher8/govern"
)

// PerformanceBrake is the number of instructions a continueCheck() can let
// pass between the more expensive parts of its work, such as reading the
// clock. The headless mode checks its deadline at this interval.
const PerformanceBrake = 100

// how long Run() waits before calling continueCheck() again when paused
const pausedWait = 10 * time.Millisecond

// Run steps the emulation until continueCheck() returns govern.Ending or until
// Step() returns an error. The machine must have been started with Start().
//
// continueCheck() is called after every instruction. A nil continueCheck
// runs the emulation until an error occurs.
func (c8 *Chip8) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			err := c8.Step()
			if err != nil {
				return err
			}
		case govern.Paused:
			time.Sleep(pausedWait)
		default:
			return fmt.Errorf("chip8: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForInstructionCount steps the emulation for the specified number of
// instructions. Useful for performance measurement and for tests.
func (c8 *Chip8) RunForInstructionCount(n int, continueCheck func(count int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(int) (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for count := 0; count < n && state != govern.Ending; count++ {
		err = c8.Step()
		if err != nil {
			return err
		}

		state, err = continueCheck(count + 1)
		if err != nil {
			return err
		}
	}

	return nil
}
