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

package registers

import "fmt"

// InstructionSize is the number of bytes in every instruction
const InstructionSize = 2

// ProgramCounter is the twelve bit register that points to the next
// instruction
type ProgramCounter struct {
	value uint16
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%03x", pc.value)
}

// Address returns the current value of the program counter
func (pc *ProgramCounter) Address() uint16 {
	return pc.value
}

// Load a new value into the program counter
func (pc *ProgramCounter) Load(address uint16) {
	pc.value = address & Mask
}

// Add n to the program counter. The result wraps at the twelve bit boundary
func (pc *ProgramCounter) Add(n uint16) {
	pc.value = (pc.value + n) & Mask
}

// Advance the program counter to the next instruction
func (pc *ProgramCounter) Advance() {
	pc.Add(InstructionSize)
}

// Rewind the program counter to the previous instruction
func (pc *ProgramCounter) Rewind() {
	pc.value = (pc.value - InstructionSize) & Mask
}
