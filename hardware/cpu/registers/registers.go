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

// Package registers implements the register file of the CPU: the sixteen
// general purpose registers, the index register and the program counter.
//
// The index register and the program counter are both twelve bits wide.
// Every write to either is masked so wraparound at the twelve bit boundary is
// the expected behaviour.
package registers

import (
	"fmt"
	"strings"
)

// Mask for the index register and program counter
const Mask = 0x0fff

// VF is the register used as the flag register by the arithmetic, shift and
// draw instructions
const VF = 0x0f

// Memory defines the memory operations required by LoadFrom() and StoreTo()
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Registers is the register file of the CPU
type Registers struct {
	v  [16]uint8
	i  uint16
	PC ProgramCounter
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. The program counter starts at the origin address.
func NewRegisters(origin uint16) *Registers {
	r := &Registers{}
	r.PC.Load(origin)
	return r
}

func (r *Registers) String() string {
	s := &strings.Builder{}
	for x, v := range r.v {
		fmt.Fprintf(s, "V%X=%02x ", x, v)
	}
	fmt.Fprintf(s, "I=%03x PC=%s", r.i, r.PC.String())
	return s.String()
}

// Reset clears every register and sets the program counter to origin
func (r *Registers) Reset(origin uint16) {
	clear(r.v[:])
	r.i = 0
	r.PC.Load(origin)
}

// V returns the value of register X. Only the low four bits of x are used
func (r *Registers) V(x uint8) uint8 {
	return r.v[x&0x0f]
}

// SetV sets the value of register X. Only the low four bits of x are used
func (r *Registers) SetV(x uint8, v uint8) {
	r.v[x&0x0f] = v
}

// SetFlag sets VF to 1 if the flag is true and to 0 otherwise
func (r *Registers) SetFlag(flag bool) {
	if flag {
		r.v[VF] = 1
	} else {
		r.v[VF] = 0
	}
}

// I returns the value of the index register
func (r *Registers) I() uint16 {
	return r.i
}

// SetI sets the value of the index register. The value is masked to twelve
// bits
func (r *Registers) SetI(v uint16) {
	r.i = v & Mask
}

// StoreTo writes registers V0 to Vn (inclusive) to memory, starting at the
// address in the index register. If advance is true the index register is
// incremented by n+1 afterwards
func (r *Registers) StoreTo(mem Memory, n uint8, advance bool) {
	n &= 0x0f
	for x := uint16(0); x <= uint16(n); x++ {
		mem.Write(r.i+x, r.v[x])
	}
	if advance {
		r.SetI(r.i + uint16(n) + 1)
	}
}

// LoadFrom reads registers V0 to Vn (inclusive) from memory, starting at the
// address in the index register. If advance is true the index register is
// incremented by n+1 afterwards
func (r *Registers) LoadFrom(mem Memory, n uint8, advance bool) {
	n &= 0x0f
	for x := uint16(0); x <= uint16(n); x++ {
		r.v[x] = mem.Read(r.i + x)
	}
	if advance {
		r.SetI(r.i + uint16(n) + 1)
	}
}
