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
	"errors"
	"time"

	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/logger"
)

// Step the emulation by a single instruction. Returns faults.ExecutionLocked
// if the machine has not been started.
//
// After the instruction has executed, Step() sleeps for whatever remains of
// the instruction period. The period is measured from the moment Step() is
// called.
//
// Step() must not be called concurrently with itself.
func (c8 *Chip8) Step() error {
	start := time.Now()

	running, err := c8.State.Running.Get()
	if err != nil {
		return err
	}
	if !running {
		return faults.ExecutionLocked
	}

	err = c8.CPU.ExecuteInstruction()
	if err != nil {
		var f *faults.Fault
		if errors.As(err, &f) {
			c8.Faults.NewEntry(*f)
			logger.Log(c8.Env, "chip8", f)
		}
		return err
	}

	if remaining := c8.instructionPeriod - time.Since(start); remaining > 0 {
		time.Sleep(remaining)
	}

	return nil
}
