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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Chip8 type is the root of the emulation and contains references to all
// the sub-systems. A program is loaded with LoadProgram() or
// LoadProgramHex() and the machine is switched on with Start().
//
// Start() launches the delay and sound timers, each on its own goroutine, and
// returns a handle for each. The machine is then driven by calling Step()
// repeatedly, either directly or through the Run() function. Stop() switches
// the machine off and waits for the timers to end.
//
//	delay, sound, err := c8.Start()
//	if err != nil {
//		return err
//	}
//	defer c8.Stop(delay, sound)
//
//	for {
//		if err := c8.Step(); err != nil {
//			return err
//		}
//	}
//
// Errors returned by Step() do not change the state of the machine. Errors
// for which faults.Category.Locked() is true can be retried. For all other
// errors the caller will probably want to stop the machine.
package hardware
