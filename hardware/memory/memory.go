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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/faults"
)

// Size of the address space
const Size = 0x1000

// Mask is applied to every address before it is used
const Mask = Size - 1

// Origin is the address at which programs are loaded
const Origin = 0x200

// Memory is the addressable memory and the call stack. Every address is
// masked so no access can ever be out of range.
type Memory struct {
	ram [Size]uint8

	stack      []uint16
	stackDepth int
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// stackDepth argument is the maximum number of return addresses the call stack
// can hold.
func NewMemory(stackDepth int) *Memory {
	return &Memory{
		stack:      make([]uint16, 0, stackDepth),
		stackDepth: stackDepth,
	}
}

func (mem *Memory) String() string {
	s := &strings.Builder{}
	mem.Dump(s, 0, Mask)
	return s.String()
}

// Reset clears memory and empties the call stack
func (mem *Memory) Reset() {
	clear(mem.ram[:])
	mem.stack = mem.stack[:0]
}

// Read the byte at address
func (mem *Memory) Read(address uint16) uint8 {
	return mem.ram[address&Mask]
}

// Write the byte to address
func (mem *Memory) Write(address uint16, data uint8) {
	mem.ram[address&Mask] = data
}

// Word returns the big-endian 16 bit value at address. The second byte wraps
// to the start of memory if address is the last byte of memory.
func (mem *Memory) Word(address uint16) uint16 {
	return uint16(mem.Read(address))<<8 | uint16(mem.Read(address+1))
}

// Load copies data into memory starting at base. Addresses wrap at the end of
// memory.
func (mem *Memory) Load(base uint16, data []uint8) {
	for i, d := range data {
		mem.Write(base+uint16(i), d)
	}
}

// Push a return address onto the call stack
func (mem *Memory) Push(address uint16) error {
	if len(mem.stack) >= mem.stackDepth {
		return faults.StackOverflow
	}
	mem.stack = append(mem.stack, address)
	return nil
}

// Pop the most recent return address from the call stack
func (mem *Memory) Pop() (uint16, error) {
	if len(mem.stack) == 0 {
		return 0, faults.StackUnderflow
	}
	address := mem.stack[len(mem.stack)-1]
	mem.stack = mem.stack[:len(mem.stack)-1]
	return address, nil
}

// StackSize returns the number of return addresses on the call stack
func (mem *Memory) StackSize() int {
	return len(mem.stack)
}

// Dump writes the memory between the two addresses (inclusive) as a hex
// listing, sixteen bytes per line. Lines that are entirely zero are skipped.
func (mem *Memory) Dump(w io.Writer, from uint16, to uint16) {
	from &= Mask
	to &= Mask

	for line := from &^ 0x0f; line <= to; line += 0x10 {
		var zero = true
		var b strings.Builder
		for a := line; a < line+0x10; a++ {
			if a < from || a > to {
				b.WriteString("   ")
				continue
			}
			d := mem.ram[a]
			if d != 0 {
				zero = false
			}
			b.WriteString(fmt.Sprintf(" %02x", d))
		}
		if !zero {
			fmt.Fprintf(w, "%03x:%s\n", line, b.String())
		}
	}
}
