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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestProgramCounter(t *testing.T) {
	r := registers.NewRegisters(0x200)
	test.ExpectEquality(t, r.PC.Address(), 0x200)

	r.PC.Advance()
	test.ExpectEquality(t, r.PC.Address(), 0x202)
	r.PC.Rewind()
	test.ExpectEquality(t, r.PC.Address(), 0x200)

	// wraparound at the twelve bit boundary in both directions
	r.PC.Load(0x0ffe)
	r.PC.Advance()
	test.ExpectEquality(t, r.PC.Address(), 0x000)
	r.PC.Rewind()
	test.ExpectEquality(t, r.PC.Address(), 0xffe)

	r.PC.Load(0x1234)
	test.ExpectEquality(t, r.PC.Address(), 0x234)
	r.PC.Add(0x0fff)
	test.ExpectEquality(t, r.PC.Address(), 0x233)
	test.ExpectEquality(t, r.PC.String(), "233")
}

func TestIndex(t *testing.T) {
	r := registers.NewRegisters(0x200)
	r.SetI(0xffff)
	test.ExpectEquality(t, r.I(), 0xfff)
	r.SetI(0x1001)
	test.ExpectEquality(t, r.I(), 0x001)
}

func TestV(t *testing.T) {
	r := registers.NewRegisters(0x200)
	r.SetV(0x3, 0x42)
	test.ExpectEquality(t, r.V(0x3), 0x42)

	// only the low nibble selects the register
	r.SetV(0x13, 0x43)
	test.ExpectEquality(t, r.V(0x3), 0x43)

	r.SetFlag(true)
	test.ExpectEquality(t, r.V(registers.VF), 1)
	r.SetFlag(false)
	test.ExpectEquality(t, r.V(registers.VF), 0)

	r.Reset(0x300)
	test.ExpectEquality(t, r.V(0x3), 0)
	test.ExpectEquality(t, r.PC.Address(), 0x300)
}

func TestStoreAndLoad(t *testing.T) {
	mem := memory.NewMemory(16)
	r := registers.NewRegisters(0x200)

	for x := uint8(0); x < 16; x++ {
		r.SetV(x, x*0x11)
	}

	r.SetI(0x300)
	r.StoreTo(mem, 3, false)
	test.ExpectEquality(t, r.I(), 0x300)
	test.ExpectEquality(t, mem.Read(0x300), 0x00)
	test.ExpectEquality(t, mem.Read(0x303), 0x33)
	test.ExpectEquality(t, mem.Read(0x304), 0x00)

	// clear registers and load them back, advancing the index register
	r.Reset(0x200)
	r.SetI(0x300)
	r.LoadFrom(mem, 3, true)
	test.ExpectEquality(t, r.V(0x3), 0x33)
	test.ExpectEquality(t, r.V(0x4), 0x00)
	test.ExpectEquality(t, r.I(), 0x304)

	// store wraps at the end of memory
	r.SetI(0xfff)
	r.SetV(0, 0xaa)
	r.SetV(1, 0xbb)
	r.StoreTo(mem, 1, true)
	test.ExpectEquality(t, mem.Read(0xfff), 0xaa)
	test.ExpectEquality(t, mem.Read(0x000), 0xbb)
	test.ExpectEquality(t, r.I(), 0x001)
}
